package contractextract

import (
	"strings"
	"testing"
)

func TestExtractPartiesPatternOnly(t *testing.T) {
	raw := "SERVICE AGREEMENT between Acme Inc and Globex LLC."
	parties := extractParties(raw, TypeService, nil, LevenshteinSimilarity{})
	if len(parties) != 2 {
		t.Fatalf("expected 2 parties, got %d: %+v", len(parties), parties)
	}
	if parties[0].Name != "Acme Inc" || parties[1].Name != "Globex LLC" {
		t.Fatalf("unexpected party names: %+v", parties)
	}
	for _, p := range parties {
		if p.Role != RoleThirdParty {
			t.Fatalf("expected third_party role for %s, got %s", p.Name, p.Role)
		}
		if p.Confidence != 0.8 {
			t.Fatalf("expected pattern confidence 0.8, got %v", p.Confidence)
		}
	}
}

func TestExtractPartiesAdjacentRoleKeywordWins(t *testing.T) {
	raw := "Disclosing Party: Acme Technologies\nsigned below."
	parties := extractParties(raw, TypeNDA, nil, LevenshteinSimilarity{})
	if len(parties) == 0 {
		t.Fatal("expected at least one party")
	}
	if parties[0].Role != RoleDisclosingParty {
		t.Fatalf("expected disclosing_party from adjacent label, got %s", parties[0].Role)
	}
}

func TestExtractPartiesNDACompanySuffixHeuristic(t *testing.T) {
	// No adjacent role label; the Inc suffix marks the discloser.
	raw := "Between Initech Inc and the undersigned individual."
	parties := extractParties(raw, TypeNDA, nil, LevenshteinSimilarity{})
	if len(parties) != 1 {
		t.Fatalf("expected 1 party, got %d", len(parties))
	}
	if parties[0].Role != RoleDisclosingParty {
		t.Fatalf("expected disclosing_party via suffix heuristic, got %s", parties[0].Role)
	}
}

func TestExtractPartiesRecognizerSpans(t *testing.T) {
	raw := "Jane Doe will join Initech Corporation next month."
	spans := []EntitySpan{
		{Text: "Jane Doe", Label: LabelPerson},
		{Text: "Initech Corporation", Label: LabelOrganization},
		{Text: "Hallucinated Holdings", Label: LabelOrganization}, // not in text
		{Text: "Jo", Label: LabelPerson},                          // too short
	}
	parties := extractParties(raw, TypeEmployment, spans, LevenshteinSimilarity{})

	byName := map[string]PartyInfo{}
	for _, p := range parties {
		byName[p.Name] = p
	}
	jane, ok := byName["Jane Doe"]
	if !ok {
		t.Fatalf("expected Jane Doe among parties: %+v", parties)
	}
	if jane.Role != RoleEmployee || jane.Confidence != 0.8 {
		t.Fatalf("unexpected person party: %+v", jane)
	}
	corp, ok := byName["Initech Corporation"]
	if !ok {
		t.Fatalf("expected Initech Corporation among parties: %+v", parties)
	}
	if corp.Role != RoleEmployer || corp.Confidence != 0.9 {
		t.Fatalf("unexpected org party: %+v", corp)
	}
	if _, ok := byName["Hallucinated Holdings"]; ok {
		t.Fatal("span absent from text must be discarded")
	}
	if _, ok := byName["Jo"]; ok {
		t.Fatal("too-short span must be discarded")
	}
}

func TestExtractPartiesCustomerVendorCues(t *testing.T) {
	raw := "Customer: Northwind Traders LLC\nVendor: Contoso Services Ltd\n"
	parties := extractParties(raw, TypeService, nil, LevenshteinSimilarity{})

	roles := map[string]PartyRole{}
	for _, p := range parties {
		roles[p.Name] = p.Role
	}
	if roles["Northwind Traders LLC"] != RoleCustomer {
		t.Fatalf("expected customer role, got %+v", parties)
	}
	if roles["Contoso Services Ltd"] != RoleVendor {
		t.Fatalf("expected vendor role, got %+v", parties)
	}
}

func TestDedupeCollapsesNearDuplicates(t *testing.T) {
	parties := []PartyInfo{
		{Name: "Acme Corp", Role: RoleThirdParty, Confidence: 0.9},
		{Name: "ACME CORP.", Role: RoleThirdParty, Confidence: 0.8},
		{Name: "Globex LLC", Role: RoleThirdParty, Confidence: 0.8},
	}
	unique := dedupeParties(parties, LevenshteinSimilarity{})
	if len(unique) != 2 {
		t.Fatalf("expected 2 unique parties, got %d: %+v", len(unique), unique)
	}
	if unique[0].Name != "Acme Corp" {
		t.Fatalf("first occurrence must win, got %s", unique[0].Name)
	}
	if unique[1].Name != "Globex LLC" {
		t.Fatalf("distinct name must survive, got %s", unique[1].Name)
	}
}

func TestDedupeCapsAtMaxParties(t *testing.T) {
	var parties []PartyInfo
	for _, n := range []string{"Alpha Systems", "Bravo Systems", "Charlie Holdings", "Delta Partners", "Echo Group", "Foxtrot Labs", "Golf Industries"} {
		parties = append(parties, PartyInfo{Name: n, Role: RoleThirdParty, Confidence: 0.8})
	}
	unique := dedupeParties(parties, LevenshteinSimilarity{})
	if len(unique) != MaxParties {
		t.Fatalf("expected cap of %d, got %d", MaxParties, len(unique))
	}
	if unique[0].Name != "Alpha Systems" || unique[4].Name != "Echo Group" {
		t.Fatalf("discovery order not preserved: %+v", unique)
	}
}

func TestValidPartyNameBounds(t *testing.T) {
	if validPartyName("Ab") {
		t.Fatal("short name must be rejected")
	}
	if validPartyName(strings.Repeat("x", MaxPartyNameChars)) {
		t.Fatal("long name must be rejected")
	}
	if !validPartyName("Acme") {
		t.Fatal("four-character name must be accepted")
	}
}
