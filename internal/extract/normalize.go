package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/shopspring/decimal"
)

// dateLayouts lists every accepted source date layout, tried in order,
// using Go's reference-time format. Two-digit years resolve through
// time.Parse's own century pivot (00-68 -> 2000s, 69-99 -> 1900s); that
// ambiguity is preserved rather than special-cased (see DESIGN.md).
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2006-01-02",
	"2006/01/02",
	"02-01-06",
	"02/01/06",
	"02 Jan 2006",
	"02 January 2006",
	"02-Jan-2006",
	"02-Jan-06",
	"02/Jan/2006",
	"02/Jan/06",
	"02 Jan 06",
	"02 January 06",
}

const canonicalDateLayout = "02-01-2006"

// normalizeDate parses raw under every accepted layout and returns the
// canonical DD-MM-YYYY form. Returns "", false on failure — the caller
// drops the record rather than guessing.
func normalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(canonicalDateLayout), true
		}
	}
	return "", false
}

var currencyMarks = []string{"₹", "Rs.", "Rs", "INR", ","}

// normalizeAmount strips currency marks and thousands separators and
// recognizes a trailing C/D/Cr/Dr/CR/DR suffix to assign sign. Empty, "-",
// or a bare "0.00" yield ok=false (no amount). When raw carries embedded
// newlines (a multi-line cell scanned as a single string), the lines are
// tried in order and the first parseable one is returned.
func normalizeAmount(raw string) (amount decimal.Decimal, ok bool) {
	if strings.Contains(raw, "\n") {
		for _, line := range strings.Split(raw, "\n") {
			if d, ok := normalizeAmount(line); ok {
				return d, true
			}
		}
		return decimal.Decimal{}, false
	}
	s := strings.TrimSpace(raw)
	for _, mark := range currencyMarks {
		s = strings.ReplaceAll(s, mark, "")
	}
	s = strings.TrimSpace(s)

	sign := decimal.NewFromInt(1)
	upper := strings.ToUpper(s)
	switch {
	case strings.HasSuffix(upper, "CR"):
		s = strings.TrimSpace(s[:len(s)-2])
	case strings.HasSuffix(upper, "DR"):
		s = strings.TrimSpace(s[:len(s)-2])
		sign = decimal.NewFromInt(-1)
	case strings.HasSuffix(upper, "C"):
		s = strings.TrimSpace(s[:len(s)-1])
	case strings.HasSuffix(upper, "D"):
		s = strings.TrimSpace(s[:len(s)-1])
		sign = decimal.NewFromInt(-1)
	}

	if s == "" || s == "-" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if d.IsZero() {
		return decimal.Decimal{}, false
	}
	return d.Mul(sign), true
}

// timestampPrefixRe strips a leading HH:MM:SS timestamp some card issuers
// print ahead of the merchant description.
var timestampPrefixRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\s+`)

// trailingCityDigitsRe matches a generic trailing "UPPERCASE token followed
// by a numeric code" tail, the replacement for an ever-growing closed city
// list (design note in SPEC_FULL §9). A trailing uppercase word with no
// digits after it is left alone.
var trailingCityDigitsRe = regexp.MustCompile(`\s+[A-Z]{3,}\s+\d+$`)

// knownCities is a short allowlist kept alongside the generic rule for
// cities where the generic uppercase-tail rule would otherwise miss a
// mixed-case or multi-word name.
var knownCities = []string{
	"Mumbai", "Bangalore", "Bengaluru", "Delhi", "Gurgaon", "Gurugram",
	"Pune", "Chennai", "Hyderabad", "Kolkata", "Noida", "Ahmedabad",
}

var businessSuffixes = []string{"LIMITED", "LTD", "PVT", "PRIVATE", "INDIA", "IN"}

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// cleanDescription applies the credit-card description cleaning pipeline:
// strip a leading timestamp, strip a trailing city/code tail, strip
// trailing business suffixes, collapse whitespace.
func cleanDescription(desc string) string {
	desc = timestampPrefixRe.ReplaceAllString(desc, "")

	for _, city := range knownCities {
		desc = strings.TrimSuffix(strings.TrimSpace(desc), city)
	}
	desc = trailingCityDigitsRe.ReplaceAllString(desc, "")

	fields := strings.Fields(desc)
	for len(fields) > 0 {
		last := strings.ToUpper(strings.TrimRight(fields[len(fields)-1], "."))
		trimmed := false
		for _, suf := range businessSuffixes {
			if last == suf {
				fields = fields[:len(fields)-1]
				trimmed = true
				break
			}
		}
		if !trimmed {
			break
		}
	}
	desc = strings.Join(fields, " ")

	desc = whitespaceRunRe.ReplaceAllString(desc, " ")
	return strings.TrimSpace(desc)
}

// balanceTolerance reports whether observed balance[i] is consistent with
// balance[i-1] + amount (the §3 invariant 4 / §8 testable property
// tolerance: 0.5% of the balance, or 0.01, whichever is larger).
func balanceTolerance(prevBalance, balance, amount decimal.Decimal) bool {
	expected := prevBalance.Add(amount)
	diff := balance.Sub(expected).Abs()
	tol := decimal.NewFromFloat(0.01)
	pct := balance.Abs().Mul(decimal.NewFromFloat(0.005))
	if pct.GreaterThan(tol) {
		tol = pct
	}
	return diff.LessThanOrEqual(tol)
}

// dedupe merges transactions sharing the §3 fingerprint, first occurrence
// wins, preserving the order of first appearance.
func dedupe(transactions []models.Transaction) []models.Transaction {
	seen := make(map[string]bool, len(transactions))
	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		fp := t.Fingerprint()
		if seen[fp] {
			continue
		}
		seen[fp] = true
		out = append(out, t)
	}
	return out
}
