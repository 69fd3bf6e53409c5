package extract

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/pdftext"
)

// hdfcCCPattern covers HDFC's single-line grammar: DD/MM/YYYY, a free-form
// description, and a trailing amount with an optional "Cr" marker for
// payments/refunds. Absence of the marker means a debit.
var hdfcCCPattern = regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(.+?)\s+(` + reAmount + `)\s*(Cr)?$`)

func extractHDFCCC(doc *pdftext.Document) []models.Transaction {
	var out []models.Transaction
	for _, page := range doc.Pages {
		for _, line := range strings.Split(page.PlainText, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || isSummaryLine(line) {
				continue
			}
			m := hdfcCCPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			txn, ok := buildHDFCCCTransaction(m, line)
			if !ok {
				continue
			}
			out = append(out, txn)
		}
	}
	return out
}

func buildHDFCCCTransaction(m []string, rawLine string) (models.Transaction, bool) {
	date, ok := normalizeDate(m[1])
	if !ok {
		return models.Transaction{}, false
	}
	desc := cleanHDFCCCDescription(m[2])
	amount, ok := normalizeAmount(m[3])
	if !ok {
		return models.Transaction{}, false
	}
	if strings.EqualFold(m[4], "Cr") {
		amount = amount.Abs()
	} else {
		amount = amount.Abs().Neg()
	}
	return models.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Type:        typeFor(amount),
		Mode:        models.ModeCreditCard,
		RawLine:     rawLine,
		Issuer:      models.IssuerHDFCCC,
	}, true
}

// cleanHDFCCCDescription runs the shared description cleanup plus the
// card-network/reference-number tail HDFC appends to most merchant lines.
var hdfcRefTailRe = regexp.MustCompile(`\s+\d{4,}\s*$`)

func cleanHDFCCCDescription(desc string) string {
	desc = cleanDescription(desc)
	desc = hdfcRefTailRe.ReplaceAllString(desc, "")
	return strings.TrimSpace(desc)
}
