package pdftext

import (
	"regexp"
	"strings"
)

// Table is a rectangular grid of cells. A cell may itself contain embedded
// newlines — a single PDF table cell often stacks several transactions.
type Table [][]string

// columnSplitRe splits a reconstructed text line into cells on runs of
// three or more spaces or a tab. extractByRow and extractByContent (pdf.go)
// both insert columnGapMarker, three spaces, whenever two words on the same
// row are more than columnGapThreshold points apart, so a genuine
// X-coordinate gap survives as a splittable column boundary even after the
// page has been flattened to plain text.
var columnSplitRe = regexp.MustCompile(`\t|\s{3,}`)

// headerIndicators are the column-name keywords that identify a header
// row, shared across the three discovery strategies below.
var headerIndicators = []string{
	"date", "transaction", "particulars", "amount", "balance", "remarks",
}

// discoverTables runs the three table-discovery strategies against one
// page's reconstructed plain text, in order, stopping at the first one
// that returns at least one table.
func discoverTables(pageText string) []Table {
	if t := discoverDefault(pageText); len(t) > 0 {
		return t
	}
	if t := discoverStrict(pageText); len(t) > 0 {
		return t
	}
	if t := discoverTextRuled(pageText); len(t) > 0 {
		return t
	}
	return nil
}

// discoverDefault treats any header-keyword line followed by ≥2 data lines
// as a table; the data lines may have differing cell counts.
func discoverDefault(pageText string) []Table {
	return synthesizeFromHeader(pageText, 2, false)
}

// discoverStrict additionally requires ≥3 consecutive data rows with the
// same column count, rejecting a single stray aligned line that is not
// really a ruled table.
func discoverStrict(pageText string) []Table {
	return synthesizeFromHeader(pageText, 3, true)
}

// discoverTextRuled is the last-resort synthesis: find a line that reads
// like a transaction-table header, then greedily collect following lines
// that contain both a date pattern and at least one amount pattern,
// splitting each on runs of ≥3 spaces/tabs.
func discoverTextRuled(pageText string) []Table {
	lines := strings.Split(pageText, "\n")
	var header []string
	headerIdx := -1
	for i, line := range lines {
		if countHeaderIndicators(line) >= 3 {
			header = columnSplitRe.Split(strings.TrimSpace(line), -1)
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	table := Table{header}
	for _, line := range lines[headerIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !looksLikeTransactionLine(line) {
			continue
		}
		table = append(table, columnSplitRe.Split(strings.TrimSpace(line), -1))
	}
	if len(table) < 2 {
		return nil
	}
	return []Table{table}
}

func countHeaderIndicators(line string) int {
	lower := strings.ToLower(line)
	n := 0
	for _, kw := range headerIndicators {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func looksLikeTransactionLine(line string) bool {
	return dateAnywhereRe.MatchString(line) && amountAnywhereRe.MatchString(line)
}

var (
	dateAnywhereRe   = regexp.MustCompile(`\b\d{1,2}[-/][A-Za-z0-9]{2,4}[-/]\d{2,4}\b`)
	amountAnywhereRe = regexp.MustCompile(`\b\d[\d,]*\.\d{2}\b`)
)

// synthesizeFromHeader locates the first line with ≥2 recognizable column
// keywords and at least minDataRows consistent-width data rows following
// it. strict requires all of those rows to share the same cell count;
// non-strict tolerates ragged rows (padding/truncating is left to the
// column-role mapper in the extractors).
func synthesizeFromHeader(pageText string, minDataRows int, strict bool) []Table {
	lines := strings.Split(pageText, "\n")
	wideHeaderWords := append(append([]string{}, headerIndicators...),
		"description", "debit", "credit", "withdrawal", "deposit",
		"value date", "serno", "reward", "intl")

	for i, line := range lines {
		lower := strings.ToLower(line)
		matches := 0
		for _, kw := range wideHeaderWords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		if matches < 2 {
			continue
		}
		headerCells := columnSplitRe.Split(strings.TrimSpace(line), -1)
		if len(headerCells) < 2 {
			continue
		}

		var rows [][]string
		for _, l := range lines[i+1:] {
			if strings.TrimSpace(l) == "" {
				break
			}
			cells := columnSplitRe.Split(strings.TrimSpace(l), -1)
			if strict && len(cells) != len(headerCells) {
				break
			}
			rows = append(rows, cells)
		}
		if len(rows) < minDataRows {
			continue
		}

		table := Table{headerCells}
		table = append(table, rows...)
		return []Table{table}
	}
	return nil
}
