package contractextract

// Overall confidence rubric. Five independent additive dimensions; the
// maxima sum to 100, so the result is bounded by construction.
const (
	scoreFinancialFull    = 30
	scoreFinancialPartial = 25
	scorePartiesMax       = 25
	scorePerParty         = 8
	scorePaymentTerms     = 20
	scoreSLA              = 15
	scoreAccount          = 10
)

// overallConfidenceScore recomputes the document score purely from the
// already-extracted snapshot; it never re-scans the raw text. An empty
// extraction scores exactly 0.
func overallConfidenceScore(data *ContractData) float64 {
	score := 0

	switch {
	case data.FinancialDetails.TotalContractValue != nil:
		score += scoreFinancialFull
	case len(data.FinancialDetails.LineItems) > 0:
		score += scoreFinancialPartial
	}

	if n := len(data.Parties); n > 0 {
		partyScore := n * scorePerParty
		if partyScore > scorePartiesMax {
			partyScore = scorePartiesMax
		}
		score += partyScore
	}

	if data.PaymentTerms.Terms != "" {
		score += scorePaymentTerms
	}

	if len(data.SLAInfo.PerformanceMetrics) > 0 || data.SLAInfo.SupportTerms != "" {
		score += scoreSLA
	}

	if data.AccountInfo.BillingContact != "" || data.AccountInfo.AccountNumber != "" {
		score += scoreAccount
	}

	return float64(score)
}
