package contractextract

import (
	"strings"

	"github.com/agext/levenshtein"
)

// NameSimilarity scores how alike two party names are, in [0,1]. Injectable
// so the dedup metric can be swapped without touching pipeline logic.
type NameSimilarity interface {
	Similarity(a, b string) float64
}

// LevenshteinSimilarity is the default metric: normalized edit distance.
type LevenshteinSimilarity struct{}

func (LevenshteinSimilarity) Similarity(a, b string) float64 {
	return levenshtein.Similarity(a, b, levenshtein.NewParams())
}

// extractParties merges recognizer spans (when the capability is present)
// with pattern-matched spans, assigns roles, and deduplicates. Recognizer
// candidates come first so they win ties during dedup.
func extractParties(raw string, ctype ContractType, spans []EntitySpan, sim NameSimilarity) []PartyInfo {
	var parties []PartyInfo

	for _, span := range spans {
		name := strings.TrimSpace(span.Text)
		if !validPartyName(name) {
			continue
		}
		idx := strings.Index(raw, name)
		if idx < 0 {
			// Span does not literally occur in the text; discard.
			continue
		}
		confidence := 0.8
		if span.Label == LabelOrganization {
			confidence = 0.9
		}
		parties = append(parties, PartyInfo{
			Name:       name,
			Role:       assignRole(raw, idx, name, ctype, span.Label, ""),
			Confidence: confidence,
		})
	}

	for _, cp := range companyPatterns {
		for _, m := range cp.Re.FindAllStringSubmatchIndex(raw, -1) {
			lo, hi := m[2], m[3]
			if lo < 0 {
				continue
			}
			name := strings.TrimSpace(raw[lo:hi])
			if !validPartyName(name) {
				continue
			}
			parties = append(parties, PartyInfo{
				Name:       name,
				Role:       assignRole(raw, lo, name, ctype, "", cp.RoleHint),
				Confidence: 0.8,
			})
		}
	}

	return dedupeParties(parties, sim)
}

func validPartyName(name string) bool {
	return len(name) > MinPartyNameChars && len(name) < MaxPartyNameChars
}

// assignRole resolves a party's role with fixed precedence: explicit adjacent
// role label, then the company-suffix heuristic, then the contract type's
// default.
func assignRole(raw string, idx int, name string, ctype ContractType, label EntityLabel, hint PartyRole) PartyRole {
	if hint != "" {
		return hint
	}
	if role, ok := adjacentRoleKeyword(raw, idx); ok {
		return role
	}

	nameLower := strings.ToLower(name)
	switch ctype {
	case TypeNDA:
		if hasCompanySuffix(nameLower) {
			return RoleDisclosingParty
		}
		return RoleReceivingParty
	case TypeEmployment:
		if label == LabelPerson {
			return RoleEmployee
		}
		return RoleEmployer
	}

	switch {
	case containsAny(nameLower, "customer", "client", "buyer"):
		return RoleCustomer
	case containsAny(nameLower, "vendor", "supplier", "seller", "provider"):
		return RoleVendor
	}
	return RoleThirdParty
}

// adjacentRoleKeyword scans the window immediately preceding a party span for
// an explicit role label. When several labels occur, the one nearest the span
// wins.
func adjacentRoleKeyword(raw string, idx int) (PartyRole, bool) {
	start := idx - roleKeywordWindow
	if start < 0 {
		start = 0
	}
	window := strings.ToLower(raw[start:idx])

	var role PartyRole
	nearest := -1
	for _, kw := range roleKeywords {
		if at := strings.LastIndex(window, kw.Word); at > nearest {
			nearest = at
			role = kw.Role
		}
	}
	return role, nearest >= 0
}

func hasCompanySuffix(nameLower string) bool {
	for _, suffix := range companySuffixWords {
		if strings.Contains(nameLower, suffix) {
			return true
		}
	}
	return false
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// dedupeParties runs a single left-to-right pass: a candidate is dropped when
// its lower-cased name is more than DuplicateNameSimilarity similar to an
// already-kept entry. First occurrence wins; discovery order is preserved;
// the result is capped at MaxParties.
func dedupeParties(parties []PartyInfo, sim NameSimilarity) []PartyInfo {
	var unique []PartyInfo
	for _, p := range parties {
		duplicate := false
		for _, kept := range unique {
			if sim.Similarity(strings.ToLower(p.Name), strings.ToLower(kept.Name)) > DuplicateNameSimilarity {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, p)
			if len(unique) == MaxParties {
				break
			}
		}
	}
	return unique
}
