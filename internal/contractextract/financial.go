package contractextract

import (
	"strconv"
	"strings"
)

// extractFinancialDetails populates the financial section. NDAs carry no
// financial terms, so the section is a synthetic confirmed-absence record
// with full confidence and no value.
func extractFinancialDetails(raw string, ctype ContractType) FinancialDetails {
	if ctype == TypeNDA {
		return FinancialDetails{Confidence: 1.0}
	}

	fd := FinancialDetails{}
	for _, tmpl := range financialValueTemplates {
		m := tmpl.Re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[1])
		if err != nil || amount <= 0 {
			continue
		}
		fd.TotalContractValue = &amount
		fd.Confidence = tmpl.Confidence
		break
	}

	if m := currencySymbolRe.FindString(raw); m != "" {
		fd.Currency = m
	}

	fd.LineItems = extractLineItems(raw)
	return fd
}

func extractLineItems(raw string) []LineItem {
	var items []LineItem
	for _, tmpl := range lineItemTemplates {
		for _, m := range tmpl.Re.FindAllStringSubmatch(raw, -1) {
			desc := strings.TrimSpace(m[tmpl.DescGroup])
			if !validLineItemDescription(desc) {
				continue
			}
			price, err := parseAmount(m[tmpl.PriceGroup])
			if err != nil || price <= 0 {
				continue
			}
			items = append(items, LineItem{
				Description: desc,
				UnitPrice:   price,
				Confidence:  0.8,
			})
			if len(items) == MaxLineItems {
				return items
			}
		}
	}
	return items
}

// validLineItemDescription accepts a description only when it is at least
// five characters, not composed purely of stop-words, and carries at least
// one term from the business vocabulary.
func validLineItemDescription(desc string) bool {
	descLower := strings.ToLower(strings.TrimSpace(desc))
	if len(descLower) < 5 {
		return false
	}

	allStop := true
	for _, tok := range strings.Fields(descLower) {
		if !lineItemStopWords[strings.Trim(tok, ".,;:")] {
			allStop = false
			break
		}
	}
	if allStop {
		return false
	}

	for _, term := range lineItemVocabulary {
		if strings.Contains(descLower, term) {
			return true
		}
	}
	return false
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}
