package extract

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/pdftext"
	"github.com/shopspring/decimal"
)

// genericTextPatterns is tried in priority order per line. Each covers a
// variant savings-account statement layout seen across issuers that don't
// have their own dedicated extractor.
var genericTextPatterns = []*regexp.Regexp{
	// date  mid  amount  balance (dash dates)
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYYDash + `)\s+(.+?)\s+(` + reAmountOptFrac + `)\s+(` + reAmountOptFrac + `)$`),
	// date  mid  amount  balance (slash dates)
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(.+?)\s+(` + reAmountOptFrac + `)\s+(` + reAmountOptFrac + `)$`),
	// date  mid  debit  credit  balance (dash dates)
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYYDash + `)\s+(.+?)\s+(` + reAmountOptFrac + `)?\s+(` + reAmountOptFrac + `)?\s+(` + reAmountOptFrac + `)$`),
	// date  mid  amount (no balance)
	regexp.MustCompile(`(?i)^(` + reDateDDMMYYYY + `)\s+(.+?)\s+(` + reAmountOptFrac + `)$`),
}

var bfCfRe = regexp.MustCompile(`(?i)\b(B/F|C/F|BROUGHT FORWARD|CARRIED FORWARD)\b.*?(` + reAmountOptFrac + `)`)

var anyDateRe = regexp.MustCompile(reDateDDMMYYYY + `|` + reDateDDMMYYYYDash)
var anyAmountRe = regexp.MustCompile(reAmountOptFrac)

// genericTextState is the explicit per-call accumulator for the running
// previous-balance value. It is never package-level: each call to
// extractGenericText owns its own instance.
type genericTextState struct {
	previousBalance decimal.Decimal
	hasPrevBalance  bool
}

func extractGenericText(doc *pdftext.Document) []models.Transaction {
	var out []models.Transaction
	state := &genericTextState{}

	for _, page := range doc.Pages {
		lines := strings.Split(page.PlainText, "\n")
		for i, raw := range lines {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			if m := bfCfRe.FindStringSubmatch(line); m != nil {
				if bal, ok := normalizeAmount(m[2]); ok {
					state.previousBalance = bal
					state.hasPrevBalance = true
				}
				continue
			}
			if isSummaryLine(line) {
				continue
			}

			txn, ok := matchGenericTextLine(line, state)
			if !ok {
				continue
			}
			txn.Description = backScanDescription(lines, i, txn.Description)
			out = append(out, txn)

			if txn.Balance.Valid {
				state.previousBalance = txn.Balance.Decimal
				state.hasPrevBalance = true
			}
		}
	}
	return out
}

func matchGenericTextLine(line string, state *genericTextState) (models.Transaction, bool) {
	for idx, pattern := range genericTextPatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		date, ok := normalizeDate(m[1])
		if !ok {
			continue
		}
		switch idx {
		case 0, 1: // date mid amount balance
			return buildGenericTextTransaction(date, m[2], m[3], m[4], state)
		case 2: // date mid debit credit balance
			desc := strings.TrimSpace(m[2])
			balance, ok := normalizeAmount(m[5])
			if !ok {
				continue
			}
			var amount decimal.Decimal
			if m[3] != "" {
				if d, ok := normalizeAmount(m[3]); ok {
					amount = d.Abs().Neg()
				} else {
					continue
				}
			} else if m[4] != "" {
				if c, ok := normalizeAmount(m[4]); ok {
					amount = c.Abs()
				} else {
					continue
				}
			} else {
				continue
			}
			return finishGenericTextTransaction(date, desc, amount, balance, true, state)
		case 3: // date mid amount, no balance
			desc := strings.TrimSpace(m[2])
			amount, ok := normalizeAmount(m[3])
			if !ok {
				continue
			}
			amount = signGenericText(amount, desc, decimal.Decimal{}, decimal.Decimal{}, false)
			return finishGenericTextTransaction(date, desc, amount, decimal.Decimal{}, false, state)
		}
	}
	return flexibleGenericTextMatch(line, state)
}

func buildGenericTextTransaction(date, descRaw, amountRaw, balanceRaw string, state *genericTextState) (models.Transaction, bool) {
	desc := strings.TrimSpace(descRaw)
	amount, ok := normalizeAmount(amountRaw)
	if !ok {
		return models.Transaction{}, false
	}
	balance, ok := normalizeAmount(balanceRaw)
	if !ok {
		return models.Transaction{}, false
	}
	signed := signGenericText(amount, desc, state.previousBalance, balance, state.hasPrevBalance)
	return finishGenericTextTransaction(date, desc, signed, balance, true, state)
}

func finishGenericTextTransaction(date, desc string, amount, balance decimal.Decimal, hasBalance bool, state *genericTextState) (models.Transaction, bool) {
	t := models.Transaction{
		Date:        date,
		Description: cleanDescription(desc),
		Amount:      amount,
		Type:        typeFor(amount),
		Mode:        genericMode(desc),
		RawLine:     desc,
		Issuer:      models.IssuerGenericText,
	}
	if hasBalance {
		t.Balance = decimal.NewNullDecimal(balance)
	}
	return t, true
}

// signGenericText prefers balance arithmetic when a previous balance is
// known (choosing the sign that reconciles balance ≈ previous + amount),
// falling back to keyword classification otherwise.
func signGenericText(amount decimal.Decimal, desc string, prevBalance, balance decimal.Decimal, havePrev bool) decimal.Decimal {
	abs := amount.Abs()
	if havePrev {
		if balanceTolerance(prevBalance, balance, abs) {
			return abs
		}
		if balanceTolerance(prevBalance, balance, abs.Neg()) {
			return abs.Neg()
		}
	}
	if hasAnyKeywordLower(desc, incomeKeywords) {
		return abs
	}
	if hasAnyKeywordLower(desc, expenseKeywords) {
		return abs.Neg()
	}
	return abs.Neg()
}

func genericMode(desc string) models.Mode {
	upper := strings.ToUpper(desc)
	switch {
	case strings.Contains(upper, "UPI") || strings.Contains(upper, "MOBILE") || strings.Contains(upper, "ONL/"):
		return models.ModeMobileBanking
	case strings.Contains(upper, "ATM") || strings.Contains(upper, "CCWD"):
		return models.ModeATM
	case strings.Contains(upper, "NEFT") || strings.Contains(upper, "IMPS") || strings.Contains(upper, "RTGS"):
		return models.ModeOnline
	default:
		return ""
	}
}

// flexibleGenericTextMatch is the last-resort pattern: locate a date
// anywhere in the line, find at least two decimal amounts, treat the last
// as balance and the penultimate as the signed amount, and take the text
// between the date and the penultimate amount as the description.
func flexibleGenericTextMatch(line string, state *genericTextState) (models.Transaction, bool) {
	loc := anyDateRe.FindStringIndex(line)
	if loc == nil {
		return models.Transaction{}, false
	}
	dateRaw := line[loc[0]:loc[1]]
	date, ok := normalizeDate(dateRaw)
	if !ok {
		return models.Transaction{}, false
	}

	amounts := anyAmountRe.FindAllStringIndex(line, -1)
	if len(amounts) < 2 {
		return models.Transaction{}, false
	}
	lastLoc := amounts[len(amounts)-1]
	penultLoc := amounts[len(amounts)-2]

	balance, ok := normalizeAmount(line[lastLoc[0]:lastLoc[1]])
	if !ok {
		return models.Transaction{}, false
	}
	amount, ok := normalizeAmount(line[penultLoc[0]:penultLoc[1]])
	if !ok {
		return models.Transaction{}, false
	}

	descStart := loc[1]
	descEnd := penultLoc[0]
	if descEnd <= descStart {
		return models.Transaction{}, false
	}
	desc := strings.TrimSpace(line[descStart:descEnd])
	if desc == "" {
		return models.Transaction{}, false
	}

	signed := signGenericText(amount, desc, state.previousBalance, balance, state.hasPrevBalance)
	return finishGenericTextTransaction(date, desc, signed, balance, true, state)
}

// transactionIndicatorPrefixes flag a line as belonging to the current
// transaction cluster during the back-scan rather than an unrelated one.
var transactionIndicatorPrefixes = []string{"UPI-", "REV-", "NEFT-", "IMPS-", "ACH-", "CC"}

// backScanDescription walks up to 15 lines backward from idx, collecting
// lines that look like continuation text for the transaction's
// description, and prepends them (chronological order) to desc.
func backScanDescription(lines []string, idx int, desc string) string {
	var collected []string
	limit := idx - 15
	if limit < 0 {
		limit = 0
	}
	for i := idx - 1; i >= limit; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}
		if anyDateRe.MatchString(line) {
			break
		}
		if hasTransactionIndicator(line) || isLikelyContinuationText(line) {
			collected = append([]string{line}, collected...)
			continue
		}
		break
	}
	if len(collected) == 0 {
		return desc
	}
	collected = append(collected, desc)
	return strings.Join(collected, " | ")
}

func hasTransactionIndicator(line string) bool {
	upper := strings.ToUpper(line)
	for _, p := range transactionIndicatorPrefixes {
		if strings.HasPrefix(upper, p) {
			return true
		}
	}
	return false
}

func isLikelyContinuationText(line string) bool {
	return len(line) >= 10 && !anyAmountRe.MatchString(line)
}
