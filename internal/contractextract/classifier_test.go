package contractextract

import (
	"strings"
	"testing"
)

func TestDetectContractTypeNDA(t *testing.T) {
	text := strings.ToLower("This Non-Disclosure Agreement protects confidential information shared between the parties.")
	if got := DetectContractType(text); got != TypeNDA {
		t.Fatalf("expected nda, got %s", got)
	}
}

func TestDetectContractTypeService(t *testing.T) {
	text := strings.ToLower("SERVICE AGREEMENT between Acme Inc and Globex LLC. Total Contract Value: $50,000.")
	if got := DetectContractType(text); got != TypeService {
		t.Fatalf("expected service, got %s", got)
	}
}

func TestDetectContractTypeBelowThreshold(t *testing.T) {
	if got := DetectContractType("the quick brown fox jumps over the lazy dog"); got != TypeUnknown {
		t.Fatalf("expected unknown for signal-free text, got %s", got)
	}
}

func TestDetectContractTypeTieYieldsUnknown(t *testing.T) {
	// Purchase and lease score identically here: two signature hits each,
	// no context bonus for either.
	text := "the buyer met the seller. the lessor met the lessee."
	if got := DetectContractType(text); got != TypeUnknown {
		t.Fatalf("expected unknown on tie, got %s", got)
	}
}

func TestDetectContractTypeEmptyText(t *testing.T) {
	if got := DetectContractType("   "); got != TypeUnknown {
		t.Fatalf("expected unknown for empty text, got %s", got)
	}
}

func TestDetectContractTypeIsPure(t *testing.T) {
	text := strings.ToLower("Employment Agreement: the Employee accepts the position with an annual salary package.")
	first := DetectContractType(text)
	for i := 0; i < 5; i++ {
		if got := DetectContractType(text); got != first {
			t.Fatalf("classification changed between runs: %s then %s", first, got)
		}
	}
	if first != TypeEmployment {
		t.Fatalf("expected employment, got %s", first)
	}
}
