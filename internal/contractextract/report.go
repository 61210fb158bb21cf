package contractextract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

func BuildResponse(result PipelineResult) ResponseEnvelope {
	env := ResponseEnvelope{
		DocRef:           result.DocRef,
		ContractType:     result.Data.ContractType,
		Data:             result.Data,
		PipelineMetadata: result.Metadata,
		Disclaimer:       Disclaimer,
	}
	env.ReportMarkdown = buildMarkdown(result)
	return env
}

// RebuildResponseFromEnvelope re-derives the markdown report from a saved
// envelope, so archived analyses can be re-rendered without re-running the
// extraction.
func RebuildResponseFromEnvelope(env ResponseEnvelope) (ResponseEnvelope, error) {
	if env.DocRef == "" {
		return env, errors.New("envelope missing doc_ref")
	}
	result := PipelineResult{
		DocRef:   env.DocRef,
		Data:     env.Data,
		Metadata: env.PipelineMetadata,
	}
	env.ContractType = env.Data.ContractType
	env.ReportMarkdown = buildMarkdown(result)
	env.Disclaimer = Disclaimer
	return env, nil
}

func buildMarkdown(result PipelineResult) string {
	data := result.Data
	var b strings.Builder

	fmt.Fprintf(&b, "# Contract Analysis Report\n\n")
	fmt.Fprintf(&b, "- Document: %s\n", result.DocRef)
	fmt.Fprintf(&b, "- Contract type: `%s`\n", data.ContractType)
	fmt.Fprintf(&b, "- Date: %s\n\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "%s\n\n", Disclaimer)

	fmt.Fprintf(&b, "## Executive Summary\n\n")
	fmt.Fprintf(&b, "Overall extraction confidence: **%.0f/100**.\n", data.OverallConfidenceScore)
	if n := len(data.GapAnalysis.CriticalGaps); n > 0 {
		fmt.Fprintf(&b, "Critical gaps found: **%d** — manual review recommended.\n", n)
	} else {
		fmt.Fprintf(&b, "No critical gaps identified.\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Parties\n\n")
	if len(data.Parties) == 0 {
		fmt.Fprintf(&b, "- None identified.\n")
	}
	for _, p := range data.Parties {
		fmt.Fprintf(&b, "- %s — `%s` (confidence %.2f)\n", sanitizeLine(p.Name), p.Role, p.Confidence)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Financial Details\n\n")
	if data.FinancialDetails.TotalContractValue != nil {
		fmt.Fprintf(&b, "- Total contract value: %s%.2f\n", data.FinancialDetails.Currency, *data.FinancialDetails.TotalContractValue)
	} else if data.ContractType == TypeNDA {
		fmt.Fprintf(&b, "- Not applicable (NDA — confirmed absence).\n")
	} else {
		fmt.Fprintf(&b, "- Total contract value: not found\n")
	}
	for _, li := range data.FinancialDetails.LineItems {
		fmt.Fprintf(&b, "- Line item: %s @ %.2f\n", sanitizeLine(li.Description), li.UnitPrice)
	}
	fmt.Fprintf(&b, "- Section confidence: %.2f\n\n", data.FinancialDetails.Confidence)

	fmt.Fprintf(&b, "## Payment Terms\n\n")
	fmt.Fprintf(&b, "- Terms: %s\n", orNotFound(data.PaymentTerms.Terms))
	fmt.Fprintf(&b, "- Method: %s\n\n", orNotFound(data.PaymentTerms.Method))

	fmt.Fprintf(&b, "## Revenue Classification\n\n")
	fmt.Fprintf(&b, "- Payment type: `%s`\n", data.RevenueClassification.PaymentType)
	if data.RevenueClassification.BillingCycle != "" {
		fmt.Fprintf(&b, "- Billing cycle: `%s`\n", data.RevenueClassification.BillingCycle)
	}
	fmt.Fprintf(&b, "- Auto-renewal: %t\n", data.RevenueClassification.AutoRenewal)
	if data.RevenueClassification.ContractDuration != "" {
		fmt.Fprintf(&b, "- Duration: %s\n", data.RevenueClassification.ContractDuration)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Service Levels\n\n")
	if len(data.SLAInfo.PerformanceMetrics) == 0 {
		fmt.Fprintf(&b, "- No performance metrics found.\n")
	}
	for _, m := range data.SLAInfo.PerformanceMetrics {
		fmt.Fprintf(&b, "- Metric: %s\n", sanitizeLine(m))
	}
	if data.SLAInfo.SupportTerms != "" {
		fmt.Fprintf(&b, "- Support: %s\n", sanitizeLine(data.SLAInfo.SupportTerms))
	}
	if data.SLAInfo.MaintenanceTerms != "" {
		fmt.Fprintf(&b, "- Maintenance: %s\n", sanitizeLine(data.SLAInfo.MaintenanceTerms))
	}
	for _, c := range data.SLAInfo.PenaltyClauses {
		fmt.Fprintf(&b, "- Penalty: %s\n", sanitizeLine(c))
	}
	for _, r := range data.SLAInfo.Remedies {
		fmt.Fprintf(&b, "- Remedy: %s\n", sanitizeLine(r))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Gap Analysis\n\n")
	for _, g := range data.GapAnalysis.CriticalGaps {
		fmt.Fprintf(&b, "- **Critical:** %s\n", g)
	}
	for _, m := range data.GapAnalysis.MissingFields {
		fmt.Fprintf(&b, "- Missing: %s\n", m)
	}
	if len(data.GapAnalysis.CriticalGaps) == 0 && len(data.GapAnalysis.MissingFields) == 0 {
		fmt.Fprintf(&b, "- No gaps identified.\n")
	}
	b.WriteString("\n### Recommendations\n\n")
	for _, r := range data.GapAnalysis.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Appendix\n\n")
	fmt.Fprintf(&b, "### Extracted Data (JSON)\n\n```json\n%s\n```\n", prettyJSON(data))
	fmt.Fprintf(&b, "\n### Pipeline Metadata (JSON)\n\n```json\n%s\n```\n", prettyJSON(result.Metadata))

	return b.String()
}

func orNotFound(s string) string {
	if strings.TrimSpace(s) == "" {
		return "not found"
	}
	return sanitizeLine(s)
}

func sanitizeLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}

func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("marshal error: %v", err)
	}
	return string(b)
}
