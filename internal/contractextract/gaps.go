package contractextract

import "strings"

// Threshold above which the missing-field count earns a template
// recommendation.
const missingFieldThreshold = 3

// analyzeGaps evaluates the type-aware rule table against the finished
// snapshot plus the lower-cased raw text (for clause-presence checks).
// Critical gaps block downstream use; missing fields are advisory.
func analyzeGaps(data *ContractData, lower string) GapAnalysis {
	if data.ContractType == TypeNDA {
		return analyzeNDAGaps(data, lower)
	}
	return analyzeGeneralGaps(data)
}

func analyzeNDAGaps(data *ContractData, lower string) GapAnalysis {
	gaps := GapAnalysis{}

	if len(data.Parties) == 0 {
		gaps.CriticalGaps = append(gaps.CriticalGaps, "No disclosing or receiving party information found")
	} else {
		var hasDiscloser, hasRecipient bool
		for _, p := range data.Parties {
			switch p.Role {
			case RoleDisclosingParty:
				hasDiscloser = true
			case RoleReceivingParty:
				hasRecipient = true
			}
		}
		if !hasDiscloser {
			gaps.MissingFields = append(gaps.MissingFields, "Disclosing party not clearly identified")
		}
		if !hasRecipient {
			gaps.MissingFields = append(gaps.MissingFields, "Receiving party not clearly identified")
		}
	}

	if !containsAnyPhrase(lower, ndaPeriodPhrases) {
		gaps.MissingFields = append(gaps.MissingFields, "Confidentiality period not clearly defined")
	}
	if !containsAnyPhrase(lower, ndaDefinitionPhrases) {
		gaps.MissingFields = append(gaps.MissingFields, "Definition of confidential information not found")
	}
	if !containsAnyPhrase(lower, ndaObligationPhrases) {
		gaps.MissingFields = append(gaps.MissingFields, "Non-disclosure obligations not clearly stated")
	}

	// An NDA carrying financial terms is an anomaly worth surfacing, not a
	// critical defect.
	if data.FinancialDetails.TotalContractValue != nil || len(data.FinancialDetails.LineItems) > 0 {
		gaps.MissingFields = append(gaps.MissingFields, "Unexpected financial terms present in NDA")
	}

	if len(gaps.CriticalGaps) > 0 {
		gaps.Recommendations = append(gaps.Recommendations, "Manual review required for critical missing NDA elements")
	}
	gaps.Recommendations = append(gaps.Recommendations, "Consider using standard NDA template with all required clauses")

	return gaps
}

func analyzeGeneralGaps(data *ContractData) GapAnalysis {
	gaps := GapAnalysis{}

	if len(data.Parties) == 0 {
		gaps.CriticalGaps = append(gaps.CriticalGaps, "No party information found")
	}
	if data.FinancialDetails.TotalContractValue == nil {
		gaps.CriticalGaps = append(gaps.CriticalGaps, "No total contract value found")
	}
	if data.PaymentTerms.Terms == "" {
		gaps.CriticalGaps = append(gaps.CriticalGaps, "No payment terms found")
	}

	if data.AccountInfo.BillingContact == "" {
		gaps.MissingFields = append(gaps.MissingFields, "Billing contact information")
	}
	if len(data.SLAInfo.PerformanceMetrics) == 0 {
		gaps.MissingFields = append(gaps.MissingFields, "SLA performance metrics (uptime, response time, availability)")
	}
	if data.SLAInfo.SupportTerms == "" {
		gaps.MissingFields = append(gaps.MissingFields, "Support hours and terms")
	}
	if data.SLAInfo.MaintenanceTerms == "" {
		gaps.MissingFields = append(gaps.MissingFields, "Maintenance terms")
	}
	if len(data.SLAInfo.PenaltyClauses) == 0 {
		gaps.MissingFields = append(gaps.MissingFields, "Penalty clauses for SLA breaches")
	}
	if len(data.SLAInfo.Remedies) == 0 {
		gaps.MissingFields = append(gaps.MissingFields, "Remedies and escalation procedures")
	}

	if len(gaps.CriticalGaps) > 0 {
		gaps.Recommendations = append(gaps.Recommendations, "Manual review required for critical missing information")
	}
	if len(gaps.MissingFields) > missingFieldThreshold {
		gaps.Recommendations = append(gaps.Recommendations, "Consider template-based contract structure")
	}
	gaps.Recommendations = append(gaps.Recommendations, "Ensure all financial terms are clearly defined")
	if len(data.SLAInfo.PerformanceMetrics) == 0 {
		gaps.Recommendations = append(gaps.Recommendations, "Include comprehensive SLA metrics for service contracts")
	}

	return gaps
}

func containsAnyPhrase(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
