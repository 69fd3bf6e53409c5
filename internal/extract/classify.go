package extract

import (
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

const headerRegionLen = 500

// Classify tags a document as one of the six issuer formats using
// header-anchored substring tests, applied in priority order. The first
// match wins; GENERIC_TEXT is the unconditional fallback.
func Classify(fullText string, hasTables bool) models.IssuerFormat {
	header := fullText
	if len(header) > headerRegionLen {
		header = header[:headerRegionLen]
	}
	body := fullText

	switch {
	case containsAny(header, []string{"sbi card", "sbi credit card", "state bank of india"}) &&
		containsAll(body, []string{"credit card", "statement"}):
		return models.IssuerSBICC
	case containsAny(header, []string{"hdfc bank", "hdfc credit card", "hdfc card"}) &&
		containsAll(body, []string{"credit card", "statement"}):
		return models.IssuerHDFCCC
	case containsAny(header, []string{"indusind", "indusind bank"}) &&
		containsAll(body, []string{"credit card", "statement"}):
		return models.IssuerIndusIndCC
	case containsIgnoreCase(body, "icici"):
		return models.IssuerICICICC
	case hasTables:
		return models.IssuerGenericTable
	default:
		return models.IssuerGenericText
	}
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if containsIgnoreCase(text, needle) {
			return true
		}
	}
	return false
}

func containsAll(text string, needles []string) bool {
	for _, needle := range needles {
		if !containsIgnoreCase(text, needle) {
			return false
		}
	}
	return true
}

func containsIgnoreCase(text, substr string) bool {
	return substr != "" && strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}
