package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/pdftext"
	"github.com/shopspring/decimal"
)

// iciciCCTextPatterns are tried in priority order, first match wins per
// line. All six cover the 6-column layout
// [date, serial, details, reward points, intl amount, amount].
var iciciCCTextPatterns = []*regexp.Regexp{
	// 1. date serial desc amount CR|DR
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(\d+)\s+(.+?)\s+(` + reAmount + `)\s*(` + reCrDr + `)$`),
	// 2. date serial desc reward intl amount CR|DR
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(\d+)\s+(.+?)\s+(\d+)\s+([\d,]*\.?\d*)\s+(` + reAmount + `)\s*(` + reCrDr + `)$`),
	// 3. date serial desc amount (no suffix)
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(\d+)\s+(.+?)\s+(` + reAmount + `)$`),
	// 4. date serial desc reward amount (no suffix)
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(\d+)\s+(.+?)\s+(\d+)\s+(` + reAmount + `)$`),
	// 5. flexible: date serial desc... amount CR|DR?
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(\d+)\s+(.+?)\s+(` + reAmountOptFrac + `)\s*(` + reCrDr + `)?$`),
	// 6. loose: date serial ... last numeric token is the amount
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(\d+)\s+(.*\S)\s+(` + reAmountOptFrac + `)\s*(` + reCrDr + `)?\s*$`),
}

// extractICICICCText runs the priority-ordered text grammar over every
// page's line stream.
func extractICICICCText(doc *pdftext.Document) []models.Transaction {
	var out []models.Transaction
	for _, page := range doc.Pages {
		for _, line := range strings.Split(page.PlainText, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || isSummaryLine(line) {
				continue
			}
			pattern, groups := tryPatterns(line, iciciCCTextPatterns)
			if pattern == nil {
				continue
			}
			txn, ok := buildICICICCTransaction(pattern, groups, line)
			if !ok {
				continue
			}
			out = append(out, txn)
		}
	}
	return out
}

// extractICICICCTable converts a 1x6 ICICI CC data table into
// transactions: [date, serial, details, reward points, intl amount, amount].
func extractICICICCTable(tables []pdftext.Table) []models.Transaction {
	var out []models.Transaction
	for _, table := range tables {
		for _, row := range table {
			if len(row) != 6 {
				continue
			}
			if !looksLikeICICICCRow(row) {
				continue
			}
			date, ok := normalizeDate(strings.TrimSpace(row[0]))
			if !ok {
				continue
			}
			serial := strings.TrimSpace(row[1])
			desc := strings.TrimSpace(row[2])
			amountCell := strings.TrimSpace(row[5])
			suffix := ""
			if m := reCrDrSuffix.FindStringSubmatch(amountCell); m != nil {
				suffix = m[1]
				amountCell = strings.TrimSpace(amountCell[:len(amountCell)-len(m[1])])
			}
			amount, ok := normalizeAmount(amountCell)
			if !ok {
				continue
			}
			amount = signICICICC(amount, suffix, desc)
			cleaned := cleanDescription(desc)
			out = append(out, models.Transaction{
				Date:        date,
				Description: cleaned,
				Amount:      amount,
				Type:        typeFor(amount),
				Mode:        models.ModeCreditCard,
				Details:     fmt.Sprintf("SerNo: %s | %s", serial, cleaned),
				RawLine:     strings.Join(row, " | "),
				Issuer:      models.IssuerICICICC,
			})
		}
	}
	return out
}

var (
	reCrDrSuffix  = regexp.MustCompile(`(?i)(CR|DR)\s*$`)
	reDateAnchor  = regexp.MustCompile(`^` + reDateDDMMYYYY + `$`)
	reSerialStart = regexp.MustCompile(`^\d`)
)

func looksLikeICICICCRow(row []string) bool {
	return reDateAnchor.MatchString(strings.TrimSpace(row[0])) &&
		reSerialStart.MatchString(strings.TrimSpace(row[1])) &&
		len(strings.TrimSpace(row[2])) >= 2
}

func buildICICICCTransaction(pattern *regexp.Regexp, groups []string, rawLine string) (models.Transaction, bool) {
	dateRaw := groups[1]
	serial := groups[2]
	desc := strings.TrimSpace(groups[3])

	var amountRaw, suffix string
	switch pattern {
	case iciciCCTextPatterns[0]: // date serial desc amount CR|DR
		amountRaw, suffix = groups[4], groups[5]
	case iciciCCTextPatterns[1]: // date serial desc reward intl amount CR|DR
		amountRaw, suffix = groups[6], groups[7]
	case iciciCCTextPatterns[2]: // date serial desc amount
		amountRaw = groups[4]
	case iciciCCTextPatterns[3]: // date serial desc reward amount
		amountRaw = groups[5]
	case iciciCCTextPatterns[4], iciciCCTextPatterns[5]: // flexible / loose, optional suffix
		amountRaw, suffix = groups[4], groups[5]
	}

	date, ok := normalizeDate(dateRaw)
	if !ok {
		return models.Transaction{}, false
	}
	amount, ok := normalizeAmount(strings.TrimSpace(amountRaw))
	if !ok {
		return models.Transaction{}, false
	}

	amount = signICICICC(amount, suffix, desc)
	cleanedDesc := cleanDescription(desc)

	return models.Transaction{
		Date:        date,
		Description: cleanedDesc,
		Amount:      amount,
		Type:        typeFor(amount),
		Mode:        models.ModeCreditCard,
		Details:     fmt.Sprintf("SerNo: %s | %s", serial, cleanedDesc),
		RawLine:     rawLine,
		Issuer:      models.IssuerICICICC,
	}, true
}

// signICICICC applies §4.C.2's sign rule: CR positive, DR negative, no
// suffix positive only if the description carries a credit-ish keyword,
// otherwise negative.
func signICICICC(amount decimal.Decimal, suffix, desc string) decimal.Decimal {
	abs := amount.Abs()
	switch strings.ToUpper(strings.TrimSpace(suffix)) {
	case "CR":
		return abs
	case "DR":
		return abs.Neg()
	default:
		if hasAnyKeyword(desc, iciciSignKeywords) {
			return abs
		}
		return abs.Neg()
	}
}

func typeFor(amount decimal.Decimal) models.TransactionType {
	if amount.IsPositive() {
		return models.TypeIncome
	}
	return models.TypeExpense
}

// extractICICICC runs both the tabular and text paths and merges on the
// shared dedupe fingerprint, earlier (tabular) wins.
func extractICICICC(doc *pdftext.Document) []models.Transaction {
	var tables []pdftext.Table
	for _, page := range doc.Pages {
		tables = append(tables, page.Tables...)
	}

	var combined []models.Transaction
	combined = append(combined, extractICICICCTable(tables)...)
	combined = append(combined, extractICICICCText(doc)...)
	return dedupe(combined)
}
