package contractextract

import "strings"

// DetectContractType scores lower-cased contract text against every type's
// signature set and returns the strictly best-scoring type. A tie for the top
// score, or a top score below MinClassifierScore, yields TypeUnknown. Pure
// function of the text.
func DetectContractType(lower string) ContractType {
	if strings.TrimSpace(lower) == "" {
		return TypeUnknown
	}

	best := TypeUnknown
	bestScore := -1
	tied := false
	for _, ct := range []ContractType{TypeNDA, TypeEmployment, TypeService, TypeLease, TypePurchase} {
		score := scoreContractType(lower, ct)
		switch {
		case score > bestScore:
			best, bestScore, tied = ct, score, false
		case score == bestScore:
			tied = true
		}
	}

	if tied || bestScore < MinClassifierScore {
		return TypeUnknown
	}
	return best
}

func scoreContractType(lower string, ct ContractType) int {
	score := 0
	for _, re := range classifierSignatures[ct] {
		score += len(re.FindAllStringIndex(lower, -1)) * 2
	}
	for _, word := range classifierBonusWords[ct] {
		if strings.Contains(lower, word) {
			score += 3
			break
		}
	}
	return score
}
