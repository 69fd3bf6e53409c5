package extract

import (
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/pdftext"
	"github.com/shopspring/decimal"
)

// columnRoles is the keyword-derived mapping from a table's header cells to
// the semantic columns the rest of the extractor needs. -1 means absent.
type columnRoles struct {
	date, desc, debit, credit, amount, balance int
}

var columnKeywords = []string{
	"date", "transaction", "particulars", "description", "amount",
	"balance", "debit", "credit", "withdrawal", "deposit", "remarks",
	"value date", "serno", "reward", "intl",
}

func countColumnKeywords(row []string) int {
	n := 0
	for _, cell := range row {
		lower := strings.ToLower(cell)
		for _, kw := range columnKeywords {
			if strings.Contains(lower, kw) {
				n++
				break
			}
		}
	}
	return n
}

func mapColumns(header []string) columnRoles {
	roles := columnRoles{-1, -1, -1, -1, -1, -1}
	for i, h := range header {
		lower := strings.ToLower(strings.TrimSpace(h))
		switch {
		case roles.date < 0 && containsAny(lower, []string{"date"}):
			roles.date = i
		case roles.desc < 0 && containsAny(lower, []string{"particulars", "description", "transaction", "narration", "remarks"}):
			roles.desc = i
		case roles.debit < 0 && containsAny(lower, []string{"debit", "withdrawal"}):
			roles.debit = i
		case roles.credit < 0 && containsAny(lower, []string{"credit", "deposit"}):
			roles.credit = i
		case roles.amount < 0 && containsAny(lower, []string{"amount"}):
			roles.amount = i
		case roles.balance < 0 && containsAny(lower, []string{"balance"}):
			roles.balance = i
		}
	}
	return roles
}

// extractGenericTable implements the generic tabular row handler, including
// the §4.C.1 multi-line row split, balance-arithmetic reattribution, and
// description-prefix grouping, with a dedicated shortcut for tables that
// carry ICICI_CC's exact 6-column layout.
func extractGenericTable(doc *pdftext.Document) []models.Transaction {
	var out []models.Transaction
	for _, page := range doc.Pages {
		for _, table := range page.Tables {
			headerIdx := -1
			for r, row := range table {
				if countColumnKeywords(row) >= 2 {
					headerIdx = r
					break
				}
			}
			if headerIdx < 0 || headerIdx == len(table)-1 {
				continue
			}
			header := table[headerIdx]
			if len(header) == 6 {
				iciciLayout := true
				for c, kw := range []string{"date", "serno", "transaction", "reward", "intl", "amount"} {
					if !strings.Contains(strings.ToLower(header[c]), kw) {
						iciciLayout = false
						break
					}
				}
				if iciciLayout {
					out = append(out, extractICICICCTable([]pdftext.Table{table[headerIdx:]})...)
					continue
				}
			}
			roles := mapColumns(header)
			for _, row := range table[headerIdx+1:] {
				out = append(out, extractGenericTableRow(row, roles)...)
			}
		}
	}
	return out
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// splitCount returns how many logical transactions a multi-line row
// encodes, preferring the date column's newline count, falling back to the
// balance column's.
func splitCount(row []string, roles columnRoles) int {
	if v := cell(row, roles.date); strings.Contains(v, "\n") {
		return len(strings.Split(v, "\n"))
	}
	if v := cell(row, roles.balance); strings.Contains(v, "\n") {
		return len(strings.Split(v, "\n"))
	}
	return 1
}

func splitCellLines(row []string, idx, n int) []string {
	raw := cell(row, idx)
	parts := strings.Split(raw, "\n")
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(parts) {
			out[i] = strings.TrimSpace(parts[i])
		}
	}
	return out
}

func extractGenericTableRow(row []string, roles columnRoles) []models.Transaction {
	n := splitCount(row, roles)

	dates := splitCellLines(row, roles.date, n)
	descLines := strings.Split(cell(row, roles.desc), "\n")
	debits := splitCellLines(row, roles.debit, n)
	credits := splitCellLines(row, roles.credit, n)
	amounts := splitCellLines(row, roles.amount, n)
	balanceLines := splitCellLines(row, roles.balance, n)

	balances := parseDecimalList(balanceLines)

	var resolvedAmounts []decimal.Decimal
	if roles.debit >= 0 && roles.credit >= 0 && n > 1 && len(balances) >= 2 {
		rawDebits := parseDecimalList(debits)
		rawCredits := parseDecimalList(credits)
		var firstDebit decimal.Decimal
		if len(rawDebits) > 0 {
			firstDebit = rawDebits[0].Abs().Neg()
		}
		resolvedAmounts = reattributeByBalance(balances, firstDebit, n, rawDebits, rawCredits)
	}

	descriptions := groupDescriptions(descLines, n)

	var out []models.Transaction
	for i := 0; i < n; i++ {
		date, ok := normalizeDate(dates[i])
		if !ok {
			continue
		}

		var amount decimal.Decimal
		if resolvedAmounts != nil && i < len(resolvedAmounts) {
			amount = resolvedAmounts[i]
		} else if d, ok := normalizeAmount(debits[i]); ok {
			amount = d.Abs().Neg()
		} else if c, ok := normalizeAmount(credits[i]); ok {
			amount = c.Abs()
		} else if a, ok := normalizeAmount(amounts[i]); ok {
			amount = a
		} else {
			continue
		}

		desc := ""
		if i < len(descriptions) {
			desc = descriptions[i]
		}

		t := models.Transaction{
			Date:        date,
			Description: cleanDescription(desc),
			Amount:      amount,
			Type:        typeFor(amount),
			Mode:        genericMode(desc),
			RawLine:     desc,
			Issuer:      models.IssuerGenericTable,
		}
		if i < len(balances) {
			t.Balance = decimal.NewNullDecimal(balances[i])
		}
		out = append(out, t)
	}
	return out
}

func parseDecimalList(raw []string) []decimal.Decimal {
	var out []decimal.Decimal
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		if d, ok := normalizeAmount(r); ok {
			out = append(out, d)
		}
	}
	return out
}

// reattributeByBalance recovers a per-row amount vector from a balance
// stream when the debit/credit columns were split across newline-joined
// cells and their per-cell order no longer lines up with the transaction
// count: A[0] is the first raw debit seen (caller passes it in already
// negative), A[i] = B[i] - B[i-1] for i>=1. The result is truncated or
// padded to n, padding drawing first from remaining raw debits (negated),
// then raw credits (kept positive).
func reattributeByBalance(balances []decimal.Decimal, firstDebit decimal.Decimal, n int, rawDebits, rawCredits []decimal.Decimal) []decimal.Decimal {
	if len(balances) == 0 || n <= 0 {
		return nil
	}

	amounts := make([]decimal.Decimal, 0, n)
	amounts = append(amounts, firstDebit)
	for i := 1; i < len(balances); i++ {
		amounts = append(amounts, balances[i].Sub(balances[i-1]))
	}

	if len(amounts) > n {
		return amounts[:n]
	}

	pool := make([]decimal.Decimal, 0, len(rawDebits)+len(rawCredits))
	if len(rawDebits) > 1 {
		for _, d := range rawDebits[1:] {
			pool = append(pool, d.Abs().Neg())
		}
	}
	for _, c := range rawCredits {
		pool = append(pool, c.Abs())
	}

	for len(amounts) < n && len(pool) > 0 {
		amounts = append(amounts, pool[0])
		pool = pool[1:]
	}
	for len(amounts) < n {
		amounts = append(amounts, decimal.Decimal{})
	}
	return amounts
}

// groupDescriptions clusters consecutive description lines on each
// recognized transaction-start prefix, joining a cluster's lines with
// " | ", and pads or truncates the result to exactly n entries.
func groupDescriptions(descLines []string, n int) []string {
	var clusters []string
	var current []string
	for _, raw := range descLines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if hasTransactionIndicator(line) && len(current) > 0 {
			clusters = append(clusters, strings.Join(current, " | "))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		clusters = append(clusters, strings.Join(current, " | "))
	}
	for len(clusters) < n {
		clusters = append(clusters, "")
	}
	if len(clusters) > n {
		clusters = clusters[:n]
	}
	return clusters
}
