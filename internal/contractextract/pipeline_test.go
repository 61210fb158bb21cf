package contractextract

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const serviceContractText = "SERVICE AGREEMENT between Acme Inc and Globex LLC. " +
	"Total Contract Value: $50,000. Payment Terms: Net 30. Uptime: 99.9% monthly availability."

type fakeSource struct {
	text string
	err  error
}

func (f *fakeSource) FetchText(context.Context, string) (string, error) {
	return f.text, f.err
}

type sinkEvent struct {
	status   Status
	progress int
	errMsg   string
}

type fakeSink struct {
	events []sinkEvent
	err    error
}

func (f *fakeSink) ReportProgress(docRef string, status Status, progress int, errMsg string) error {
	f.events = append(f.events, sinkEvent{status: status, progress: progress, errMsg: errMsg})
	return f.err
}

type fakeRecognizer struct {
	spans []EntitySpan
	err   error
}

func (f *fakeRecognizer) Recognize(context.Context, string) ([]EntitySpan, error) {
	return f.spans, f.err
}

func TestPipelineEndToEndServiceContract(t *testing.T) {
	sink := &fakeSink{}
	p := NewPipeline(&fakeSource{text: serviceContractText}, WithProgressSink(sink))

	res, err := p.Run(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	data := res.Data

	if data.ContractType != TypeService {
		t.Fatalf("expected service, got %s", data.ContractType)
	}
	names := map[string]bool{}
	for _, p := range data.Parties {
		names[p.Name] = true
	}
	if !names["Acme Inc"] || !names["Globex LLC"] {
		t.Fatalf("expected both parties, got %+v", data.Parties)
	}
	if data.FinancialDetails.TotalContractValue == nil || *data.FinancialDetails.TotalContractValue != 50000 {
		t.Fatalf("expected total 50000, got %+v", data.FinancialDetails.TotalContractValue)
	}
	if !strings.Contains(data.PaymentTerms.Terms, "Net 30") {
		t.Fatalf("expected Net 30 in terms, got %q", data.PaymentTerms.Terms)
	}
	foundUptime := false
	for _, m := range data.SLAInfo.PerformanceMetrics {
		if strings.Contains(strings.ToLower(m), "uptime") || strings.Contains(strings.ToLower(m), "availability") {
			foundUptime = true
		}
	}
	if !foundUptime {
		t.Fatalf("expected an uptime metric, got %v", data.SLAInfo.PerformanceMetrics)
	}
	if data.OverallConfidenceScore <= 0 || data.OverallConfidenceScore > 100 {
		t.Fatalf("score out of range: %v", data.OverallConfidenceScore)
	}

	wantCheckpoints := []int{10, 20, 30, 50, 60, 70, 80, 85, 90, 100}
	if len(sink.events) != len(wantCheckpoints) {
		t.Fatalf("expected %d progress events, got %d: %+v", len(wantCheckpoints), len(sink.events), sink.events)
	}
	for i, evt := range sink.events {
		if evt.progress != wantCheckpoints[i] {
			t.Fatalf("checkpoint %d: expected %d, got %d", i, wantCheckpoints[i], evt.progress)
		}
	}
	if last := sink.events[len(sink.events)-1]; last.status != StatusCompleted {
		t.Fatalf("final status must be completed, got %s", last.status)
	}
}

func TestPipelineDeterministicOutput(t *testing.T) {
	p := NewPipeline(&fakeSource{text: serviceContractText})

	first, err := p.Run(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := p.Run(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	a, _ := json.Marshal(first.Data)
	b, _ := json.Marshal(second.Data)
	if string(a) != string(b) {
		t.Fatalf("repeated runs differ:\n%s\n%s", a, b)
	}
}

func TestPipelineSourceFailureAbortsRun(t *testing.T) {
	sink := &fakeSink{}
	p := NewPipeline(&fakeSource{err: errors.New("bucket unavailable")}, WithProgressSink(sink))

	res, err := p.Run(context.Background(), "doc-2")
	if err == nil {
		t.Fatal("expected error on source failure")
	}
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != "fetch_text" {
		t.Fatalf("expected fetch_text stage error, got %v", err)
	}
	if res.Data.ContractType != "" || len(res.Data.Parties) != 0 {
		t.Fatalf("no partial extraction may survive a source failure: %+v", res.Data)
	}

	last := sink.events[len(sink.events)-1]
	if last.status != StatusFailed || last.errMsg == "" {
		t.Fatalf("expected failed status with message, got %+v", last)
	}
}

func TestPipelineRecognizerFailureDegradesToPatterns(t *testing.T) {
	p := NewPipeline(
		&fakeSource{text: serviceContractText},
		WithEntityRecognizer(&fakeRecognizer{err: errors.New("model unavailable")}),
	)

	res, err := p.Run(context.Background(), "doc-3")
	if err != nil {
		t.Fatalf("recognizer failure must not abort the run: %v", err)
	}
	if res.Metadata.RecognizerError == "" {
		t.Fatal("expected recognizer error recorded in metadata")
	}
	if len(res.Data.Parties) == 0 {
		t.Fatalf("pattern extraction must still find parties: %+v", res.Data.Parties)
	}
}

func TestPipelineRecognizerSpansMerged(t *testing.T) {
	text := "Employment Agreement. Jane Doe accepts the offer from Initech Corporation with an annual salary package."
	p := NewPipeline(
		&fakeSource{text: text},
		WithEntityRecognizer(&fakeRecognizer{spans: []EntitySpan{
			{Text: "Jane Doe", Label: LabelPerson},
		}}),
	)

	res, err := p.Run(context.Background(), "doc-4")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Data.ContractType != TypeEmployment {
		t.Fatalf("expected employment, got %s", res.Data.ContractType)
	}
	var jane *PartyInfo
	for i := range res.Data.Parties {
		if res.Data.Parties[i].Name == "Jane Doe" {
			jane = &res.Data.Parties[i]
		}
	}
	if jane == nil {
		t.Fatalf("expected recognizer span merged into parties: %+v", res.Data.Parties)
	}
	if jane.Role != RoleEmployee {
		t.Fatalf("expected employee role, got %s", jane.Role)
	}
}

func TestPipelineSinkFailureIsSwallowed(t *testing.T) {
	sink := &fakeSink{err: errors.New("webhook down")}
	p := NewPipeline(&fakeSource{text: serviceContractText}, WithProgressSink(sink))

	res, err := p.Run(context.Background(), "doc-5")
	if err != nil {
		t.Fatalf("sink failures must never affect the result: %v", err)
	}
	if len(res.Metadata.ProgressDelivered) != 0 {
		t.Fatalf("no checkpoint was delivered, got %v", res.Metadata.ProgressDelivered)
	}
	if res.Data.ContractType != TypeService {
		t.Fatalf("extraction must still complete, got %s", res.Data.ContractType)
	}
}

func TestPipelineNDASpecialCasing(t *testing.T) {
	text := "MUTUAL NON-DISCLOSURE AGREEMENT between Acme Technologies and John Smith. " +
		"The Disclosing Party shares confidential information; the Receiving Party shall not disclose it. " +
		"The confidentiality period is two years."
	p := NewPipeline(&fakeSource{text: text})

	res, err := p.Run(context.Background(), "doc-6")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	data := res.Data
	if data.ContractType != TypeNDA {
		t.Fatalf("expected nda, got %s", data.ContractType)
	}
	if data.FinancialDetails.Confidence != 1.0 || data.FinancialDetails.TotalContractValue != nil {
		t.Fatalf("expected confirmed-absence financials, got %+v", data.FinancialDetails)
	}
	if data.PaymentTerms.Confidence != 1.0 || data.PaymentTerms.Method != "Not applicable" {
		t.Fatalf("expected fixed NDA payment record, got %+v", data.PaymentTerms)
	}
	if data.RevenueClassification.PaymentType != "nda" {
		t.Fatalf("expected nda payment type, got %q", data.RevenueClassification.PaymentType)
	}
}
