package contractextract

import "strings"

func extractAccountInfo(raw string) AccountInfo {
	ai := AccountInfo{}

	for _, re := range accountNumberPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			ai.AccountNumber = m[1]
			ai.Confidence = 0.8
			break
		}
	}

	for _, re := range billingContactPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			ai.BillingContact = strings.TrimSpace(m[1])
			ai.Confidence = 0.7
			break
		}
	}

	return ai
}

// extractPaymentTerms finds the first terms pattern and, independently, the
// first method pattern. NDAs get a fixed confirmed-absence record. Confidence
// depends on the terms only; a method match alone scores nothing.
func extractPaymentTerms(raw string, ctype ContractType) PaymentTerms {
	if ctype == TypeNDA {
		return PaymentTerms{
			Terms:      "No payment terms - NDA agreement",
			Method:     "Not applicable",
			Confidence: 1.0,
		}
	}

	pt := PaymentTerms{}
	for _, re := range paymentTermsPatterns {
		if m := re.FindString(raw); m != "" {
			pt.Terms = m
			pt.Confidence = 0.8
			break
		}
	}
	for _, re := range paymentMethodPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			pt.Method = strings.TrimSpace(m[1])
			break
		}
	}
	return pt
}

// extractRevenueClassification applies a fixed-priority keyword cascade to
// classify payment type and billing cycle. Confidence is a constant for this
// extractor; it is not computed from the matches.
func extractRevenueClassification(lower string) RevenueClassification {
	rc := RevenueClassification{Confidence: 0.7}

	switch {
	case containsAny(lower, revenueNDAWords...):
		rc.PaymentType = "nda"
		rc.BillingCycle = "one_time"
	case containsAny(lower, revenueEmploymentWords...):
		rc.PaymentType = "employment"
		rc.BillingCycle = "recurring"
	case containsAny(lower, revenueMonthlyWords...):
		rc.PaymentType = "recurring"
		rc.BillingCycle = "monthly"
	case containsAny(lower, revenueQuarterlyWords...):
		rc.PaymentType = "recurring"
		rc.BillingCycle = "quarterly"
	case containsAny(lower, revenueAnnualWords...):
		rc.PaymentType = "recurring"
		rc.BillingCycle = "annually"
	default:
		rc.PaymentType = "one_time"
	}

	if strings.Contains(lower, "auto-renewal") || strings.Contains(lower, "auto renewal") {
		rc.AutoRenewal = true
	}

	for _, re := range durationPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			rc.ContractDuration = strings.Join(strings.Fields(m[1]), " ")
			break
		}
	}

	return rc
}
