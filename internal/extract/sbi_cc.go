package extract

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/pdftext"
	"github.com/shopspring/decimal"
)

// sbiCCHeadRe anchors the leading "DD MMM YY" date; sbiCCTailRe anchors the
// trailing amount with its optional single-letter C/D marker. Splitting the
// line into head/tail rather than one monolithic regex survives the
// irregular column spacing SBI's statement renderer produces.
var (
	sbiCCHeadRe = regexp.MustCompile(`(?i)^(` + reDateDDMonYY + `)\s+(.+)$`)
	sbiCCTailRe = regexp.MustCompile(`(?i)^(.*\S)\s+(` + reAmountOptFrac + `)\s*(` + reCOrD + `)?$`)
)

func extractSBICC(doc *pdftext.Document) []models.Transaction {
	var out []models.Transaction
	for _, page := range doc.Pages {
		for _, line := range strings.Split(page.PlainText, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || isSummaryLine(line) {
				continue
			}
			txn, ok := buildSBICCTransaction(line)
			if !ok {
				continue
			}
			out = append(out, txn)
		}
	}
	return out
}

func buildSBICCTransaction(line string) (models.Transaction, bool) {
	head := sbiCCHeadRe.FindStringSubmatch(line)
	if head == nil {
		return models.Transaction{}, false
	}
	date, ok := normalizeDate(head[1])
	if !ok {
		return models.Transaction{}, false
	}
	tail := sbiCCTailRe.FindStringSubmatch(head[2])
	if tail == nil {
		return models.Transaction{}, false
	}
	desc := cleanDescription(tail[1])
	amount, ok := normalizeAmount(tail[2])
	if !ok {
		return models.Transaction{}, false
	}
	amount = signSBICC(amount, tail[3], desc)
	return models.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Type:        typeFor(amount),
		Mode:        models.ModeCreditCard,
		RawLine:     line,
		Issuer:      models.IssuerSBICC,
	}, true
}

// signSBICC mirrors ICICI's three-way rule but against SBI's own marker
// letters (C/D rather than CR/DR) and its own keyword list.
func signSBICC(amount decimal.Decimal, marker, desc string) decimal.Decimal {
	abs := amount.Abs()
	switch strings.ToUpper(strings.TrimSpace(marker)) {
	case "C":
		return abs
	case "D":
		return abs.Neg()
	default:
		if hasAnyKeyword(desc, sbiSignKeywords) {
			return abs
		}
		return abs.Neg()
	}
}
