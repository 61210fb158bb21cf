package contractextract

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// TextSource supplies the plain text for a document reference. A source
// failure aborts the whole run; no partial ContractData is produced.
type TextSource interface {
	FetchText(ctx context.Context, docRef string) (string, error)
}

// ProgressSink receives checkpoint notifications. It is purely observational:
// delivery failures are logged and swallowed, never affecting the result.
type ProgressSink interface {
	ReportProgress(docRef string, status Status, progress int, errMessage string) error
}

type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

type PipelineResult struct {
	DocRef   string           `json:"doc_ref"`
	Data     ContractData     `json:"contract_data"`
	Metadata PipelineMetadata `json:"pipeline_metadata"`
}

// Pipeline runs one extraction per invocation. It holds no per-run state;
// each Run threads an immutable text context through the stages and writes
// into a fresh result builder, so one Pipeline is safe to reuse across
// documents.
type Pipeline struct {
	source     TextSource
	sink       ProgressSink
	recognizer EntityRecognizer
	similarity NameSimilarity
}

type Option func(*Pipeline)

func WithProgressSink(sink ProgressSink) Option {
	return func(p *Pipeline) { p.sink = sink }
}

// WithEntityRecognizer attaches the optional NER capability. Without it the
// engine runs pattern-only party extraction.
func WithEntityRecognizer(r EntityRecognizer) Option {
	return func(p *Pipeline) { p.recognizer = r }
}

func WithNameSimilarity(sim NameSimilarity) Option {
	return func(p *Pipeline) { p.similarity = sim }
}

func NewPipeline(source TextSource, opts ...Option) *Pipeline {
	p := &Pipeline{source: source, similarity: LevenshteinSimilarity{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the full extraction for one document. Identical text yields an
// identical ContractData; all scoring is deterministic heuristic arithmetic
// over pattern matches.
func (p *Pipeline) Run(ctx context.Context, docRef string) (PipelineResult, error) {
	res := PipelineResult{
		DocRef:   docRef,
		Metadata: PipelineMetadata{StartedAt: time.Now()},
	}

	p.report(&res, StatusProcessing, 10, "")

	raw, err := p.source.FetchText(ctx, docRef)
	if err != nil {
		p.report(&res, StatusFailed, 0, err.Error())
		return res, &StageError{Stage: "fetch_text", Err: err}
	}
	res.Metadata.TextLength = len(raw)
	p.report(&res, StatusProcessing, 20, "")

	lower := strings.ToLower(raw)
	res.Data.ContractType = DetectContractType(lower)
	p.stageDone(&res, "classify")
	p.report(&res, StatusProcessing, 30, "")

	var spans []EntitySpan
	if p.recognizer != nil {
		res.Metadata.RecognizerUsed = true
		spans, err = p.recognizer.Recognize(ctx, raw)
		if err != nil {
			// Degrade to pattern-only extraction; the capability is optional.
			log.Printf("contract-extract: entity recognizer failed (doc=%s): %v", docRef, err)
			res.Metadata.RecognizerError = err.Error()
			spans = nil
		}
	}
	res.Data.Parties = extractParties(raw, res.Data.ContractType, spans, p.similarity)
	p.stageDone(&res, "parties")
	p.report(&res, StatusProcessing, 50, "")

	res.Data.AccountInfo = extractAccountInfo(raw)
	p.stageDone(&res, "account_info")
	p.report(&res, StatusProcessing, 60, "")

	res.Data.FinancialDetails = extractFinancialDetails(raw, res.Data.ContractType)
	p.stageDone(&res, "financial_details")
	p.report(&res, StatusProcessing, 70, "")

	res.Data.PaymentTerms = extractPaymentTerms(raw, res.Data.ContractType)
	p.stageDone(&res, "payment_terms")
	p.report(&res, StatusProcessing, 80, "")

	res.Data.RevenueClassification = extractRevenueClassification(lower)
	p.stageDone(&res, "revenue_classification")
	p.report(&res, StatusProcessing, 85, "")

	res.Data.SLAInfo = extractSLAInfo(raw)
	p.stageDone(&res, "sla_info")
	p.report(&res, StatusProcessing, 90, "")

	// The aggregator and gap analyzer read the finished snapshot only.
	res.Data.OverallConfidenceScore = overallConfidenceScore(&res.Data)
	p.stageDone(&res, "aggregate")
	res.Data.GapAnalysis = analyzeGaps(&res.Data, lower)
	p.stageDone(&res, "gap_analysis")

	res.Metadata.CompletedAt = time.Now()
	p.report(&res, StatusCompleted, 100, "")
	return res, nil
}

func (p *Pipeline) stageDone(res *PipelineResult, stage string) {
	res.Metadata.StagesExecuted = append(res.Metadata.StagesExecuted, stage)
}

func (p *Pipeline) report(res *PipelineResult, status Status, progress int, errMessage string) {
	if p.sink == nil {
		return
	}
	if err := p.sink.ReportProgress(res.DocRef, status, progress, errMessage); err != nil {
		log.Printf("contract-extract: progress sink failed (doc=%s, progress=%d): %v", res.DocRef, progress, err)
		return
	}
	res.Metadata.ProgressDelivered = append(res.Metadata.ProgressDelivered, progress)
}
