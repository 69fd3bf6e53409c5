package extract

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/pdftext"
)

// indusindCCPattern requires the CR/DR suffix — IndusInd never omits it, so
// unlike ICICI_CC/SBI_CC there is no keyword-based sign fallback here.
var indusindCCPattern = regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(.+?)\s+(` + reAmount + `)\s+(` + reCrDr + `)$`)

func extractIndusIndCC(doc *pdftext.Document) []models.Transaction {
	var out []models.Transaction
	for _, page := range doc.Pages {
		for _, line := range strings.Split(page.PlainText, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || isSummaryLine(line) {
				continue
			}
			m := indusindCCPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			txn, ok := buildIndusIndCCTransaction(m, line)
			if !ok {
				continue
			}
			out = append(out, txn)
		}
	}
	return out
}

func buildIndusIndCCTransaction(m []string, rawLine string) (models.Transaction, bool) {
	date, ok := normalizeDate(m[1])
	if !ok {
		return models.Transaction{}, false
	}
	desc := cleanDescription(m[2])
	amount, ok := normalizeAmount(m[3])
	if !ok {
		return models.Transaction{}, false
	}
	if strings.EqualFold(m[4], "CR") {
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
		Issuer:      models.IssuerIndusIndCC,
	}, true
}
