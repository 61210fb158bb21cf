package contractextract

import (
	"regexp"
	"strings"
)

// SLA confidence is additive over sub-category presence. The weights sum to
// 1.0, so no clamp is needed.
const (
	slaWeightMetrics     = 0.35
	slaWeightSupport     = 0.25
	slaWeightMaintenance = 0.20
	slaWeightPenalties   = 0.10
	slaWeightRemedies    = 0.10
)

// extractSLAInfo accumulates every distinct match across the SLA pattern
// families, unlike the first-match extractors. Metrics form an ordered,
// deduplicated list; the text fields join multiple distinct matches with "; ".
func extractSLAInfo(raw string) SLAInfo {
	sla := SLAInfo{
		PerformanceMetrics: accumulateMatches(raw, slaUptimePatterns, slaResponseTimePatterns),
		PenaltyClauses:     accumulateMatches(raw, slaPenaltyPatterns),
		Remedies:           accumulateMatches(raw, slaRemedyPatterns),
	}
	sla.SupportTerms = strings.Join(accumulateMatches(raw, slaSupportPatterns), "; ")
	sla.MaintenanceTerms = strings.Join(accumulateMatches(raw, slaMaintenancePatterns), "; ")

	if len(sla.PerformanceMetrics) > 0 {
		sla.Confidence += slaWeightMetrics
	}
	if sla.SupportTerms != "" {
		sla.Confidence += slaWeightSupport
	}
	if sla.MaintenanceTerms != "" {
		sla.Confidence += slaWeightMaintenance
	}
	if len(sla.PenaltyClauses) > 0 {
		sla.Confidence += slaWeightPenalties
	}
	if len(sla.Remedies) > 0 {
		sla.Confidence += slaWeightRemedies
	}

	return sla
}

// accumulateMatches collects every distinct whole match across the given
// families, preserving first-seen order.
func accumulateMatches(raw string, families ...[]*regexp.Regexp) []string {
	var out []string
	seen := map[string]bool{}
	for _, family := range families {
		for _, re := range family {
			for _, m := range re.FindAllString(raw, -1) {
				m = strings.TrimSpace(m)
				if m == "" || seen[m] {
					continue
				}
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}
