package contractextract

import (
	"math"
	"strings"
	"testing"
)

func TestSLAMetricsAccumulateAllDistinctMatches(t *testing.T) {
	raw := "Uptime: 99.9% guaranteed. Availability: 99.5% during business hours. Response time: 4 hours for critical issues."
	sla := extractSLAInfo(raw)
	if len(sla.PerformanceMetrics) < 3 {
		t.Fatalf("expected at least 3 metrics, got %d: %v", len(sla.PerformanceMetrics), sla.PerformanceMetrics)
	}
	seen := map[string]bool{}
	for _, m := range sla.PerformanceMetrics {
		if seen[m] {
			t.Fatalf("duplicate metric %q", m)
		}
		seen[m] = true
	}
	if math.Abs(sla.Confidence-slaWeightMetrics) > 1e-9 {
		t.Fatalf("expected confidence %v for metrics only, got %v", slaWeightMetrics, sla.Confidence)
	}
}

func TestSLASupportTermsJoined(t *testing.T) {
	raw := "We provide 24/7 support for P1 issues and 9/5 support otherwise."
	sla := extractSLAInfo(raw)
	if sla.SupportTerms == "" {
		t.Fatal("expected support terms")
	}
	if !strings.Contains(sla.SupportTerms, "24/7 support") {
		t.Fatalf("expected 24/7 support, got %q", sla.SupportTerms)
	}
	if !strings.Contains(sla.SupportTerms, "; ") {
		t.Fatalf("expected multiple matches joined with separator, got %q", sla.SupportTerms)
	}
}

func TestSLAConfidenceWeightsSumToOne(t *testing.T) {
	raw := "Uptime: 99.9% guaranteed. 24/7 support included. " +
		"Scheduled maintenance window every Sunday. " +
		"Penalties: 5% service credit for each breach. " +
		"The customer has the right to terminate after three failures."
	sla := extractSLAInfo(raw)
	if math.Abs(sla.Confidence-1.0) > 1e-9 {
		t.Fatalf("expected full confidence 1.0, got %v", sla.Confidence)
	}
	if len(sla.PenaltyClauses) == 0 {
		t.Fatalf("expected penalty clauses, got none")
	}
	if len(sla.Remedies) == 0 {
		t.Fatalf("expected remedies, got none")
	}
	if sla.MaintenanceTerms == "" {
		t.Fatal("expected maintenance terms")
	}
}

func TestSLAEmptyText(t *testing.T) {
	sla := extractSLAInfo("This agreement says nothing about service levels.")
	if sla.Confidence != 0 {
		t.Fatalf("expected 0 confidence, got %v", sla.Confidence)
	}
	if len(sla.PerformanceMetrics) != 0 || sla.SupportTerms != "" {
		t.Fatalf("expected empty SLA section, got %+v", sla)
	}
}
