package contractextract

import "testing"

func f64(v float64) *float64 { return &v }

func TestOverallScoreEmptyExtractionIsZero(t *testing.T) {
	data := &ContractData{ContractType: TypeUnknown}
	if got := overallConfidenceScore(data); got != 0 {
		t.Fatalf("empty extraction must score exactly 0, got %v", got)
	}
}

func TestOverallScoreFullExtraction(t *testing.T) {
	data := &ContractData{
		ContractType: TypeService,
		Parties: []PartyInfo{
			{Name: "Acme Inc"}, {Name: "Globex LLC"}, {Name: "Initech Ltd"}, {Name: "Umbrella Corp"},
		},
		AccountInfo:      AccountInfo{BillingContact: "Jane Doe"},
		FinancialDetails: FinancialDetails{TotalContractValue: f64(50000)},
		PaymentTerms:     PaymentTerms{Terms: "Net 30"},
		SLAInfo:          SLAInfo{PerformanceMetrics: []string{"99.9% uptime"}},
	}
	if got := overallConfidenceScore(data); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestOverallScorePartyScalingBelowCap(t *testing.T) {
	data := &ContractData{Parties: []PartyInfo{{Name: "Acme Inc"}, {Name: "Globex LLC"}}}
	if got := overallConfidenceScore(data); got != 16 {
		t.Fatalf("expected 2*8=16, got %v", got)
	}
}

func TestOverallScoreLineItemsPartialCredit(t *testing.T) {
	data := &ContractData{
		FinancialDetails: FinancialDetails{LineItems: []LineItem{{Description: "hosting service", UnitPrice: 100}}},
	}
	if got := overallConfidenceScore(data); got != 25 {
		t.Fatalf("expected partial financial credit 25, got %v", got)
	}
}

func TestOverallScoreBounds(t *testing.T) {
	// Six parties would overshoot the party cap; the dimension maxima sum
	// to 100 so the total stays in range without clamping.
	var parties []PartyInfo
	for i := 0; i < 6; i++ {
		parties = append(parties, PartyInfo{Name: "P"})
	}
	data := &ContractData{
		Parties:          parties,
		AccountInfo:      AccountInfo{AccountNumber: "ACC-1"},
		FinancialDetails: FinancialDetails{TotalContractValue: f64(1)},
		PaymentTerms:     PaymentTerms{Terms: "Net 15"},
		SLAInfo:          SLAInfo{SupportTerms: "24/7 support"},
	}
	got := overallConfidenceScore(data)
	if got < 0 || got > 100 {
		t.Fatalf("score out of bounds: %v", got)
	}
	if got != 100 {
		t.Fatalf("expected exactly 100, got %v", got)
	}
}
