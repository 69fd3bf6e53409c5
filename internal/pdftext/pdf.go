// Package pdftext opens a bank or card statement PDF and exposes, per
// page, both its plain text and any tables the page's layout encodes.
// It tries multiple extraction methods to handle different PDF encodings,
// falling back to raw stream parsing and finally an external pdftotext
// (poppler-utils) invocation when the structured library fails.
package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Page is one page of the opened document: its reconstructed plain text
// and any tables detected on it (see table.go).
type Page struct {
	PlainText string
	Tables    []Table
}

// Document is the result of Open: per-page text and tables, ready for the
// issuer classifier and extractors.
type Document struct {
	Pages []Page
}

// AllText concatenates every page's plain text, separated by blank lines.
func (d *Document) AllText() string {
	texts := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		texts = append(texts, p.PlainText)
	}
	return strings.Join(texts, "\n\n")
}

// Open reads pdfBytes and returns a Document. If the document is
// encrypted, password is tried via pdfcpu's decrypt pass (see password.go)
// before the ledongthuc/pdf extraction cascade runs. An encrypted document
// with no or wrong password returns ErrPasswordRequired.
//
// A PDF that opens fine but yields no readable text, which is the usual
// signature of a scanned or image-only statement, is not treated as an
// error here: Open returns an empty Document (zero pages) and lets the
// caller turn that into a warning instead of a failed conversion. OCR of
// scanned statements is out of scope.
func Open(pdfBytes []byte, password string) (*Document, error) {
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("pdftext: %w: empty input", ErrUnreadablePDF)
	}

	data := pdfBytes
	if encrypted(data) {
		decrypted, err := decrypt(data, password)
		if err != nil {
			return nil, err
		}
		data = decrypted
	}

	pages, err := extractText(data)
	if err != nil {
		return &Document{}, nil
	}

	doc := &Document{Pages: make([]Page, len(pages))}
	for i, text := range pages {
		doc.Pages[i] = Page{
			PlainText: text,
			Tables:    discoverTables(text),
		}
	}
	return doc, nil
}

// extractText runs the method cascade against an in-memory PDF and returns
// one string per page. It never returns garbage text: every candidate is
// checked against isReadableText before being accepted.
func extractText(data []byte) ([]string, error) {
	pages, libErr := extractWithLibrary(data)
	if libErr == nil && isReadableText(pages) {
		return pages, nil
	}

	rawPages, rawErr := extractTextRaw(data)
	if rawErr == nil && isReadableText(rawPages) {
		return rawPages, nil
	}

	popplerPages, popplerErr := extractWithPdftotext(data)
	if popplerErr == nil && isReadableText(popplerPages) {
		return popplerPages, nil
	}

	if libErr != nil {
		return nil, fmt.Errorf("PDF text extraction failed: %v. The PDF may use custom fonts or be image-based/scanned", libErr)
	}
	return nil, fmt.Errorf("no readable text could be extracted from PDF; it may be image-based/scanned or use an unsupported font encoding")
}

// commonWords that appear in virtually all Indian bank and card statements.
// If the extracted text contains none of these, it's likely garbage.
var commonWords = []string{
	"bank", "account", "balance", "date", "payment", "statement",
	"total", "amount", "credit", "debit", "transaction", "card",
	"upi", "neft", "imps", "rtgs", "opening", "closing", "transfer",
	"number", "page", "period",
}

func textQuality(pages []string) float64 {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				r == '.' || r == ',' || r == '-' || r == '/' || r == ':' ||
				r == ';' || r == '(' || r == ')' || r == '\'' || r == '"' ||
				r == '₹' || r == '$' || r == '€' || r == '%' || r == '&' ||
				r == '@' || r == '#' || r == '!' || r == '?' || r == '+' ||
				r == '=' || r == '*' || r == '\t' {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

func containsCommonWords(pages []string) bool {
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range commonWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// isReadableText requires >50 chars, >60% readable ASCII characters, and
// at least one word common to Indian bank/card statements.
func isReadableText(pages []string) bool {
	if totalTextLen(pages) <= 50 {
		return false
	}
	if textQuality(pages) <= 0.6 {
		return false
	}
	return containsCommonWords(pages)
}

func totalTextLen(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}

// extractWithPdftotext uses the external pdftotext command from
// poppler-utils as a last-resort fallback, buffering the in-memory PDF to
// a temp file since pdftotext only accepts a path.
func extractWithPdftotext(data []byte) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %v", err)
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to buffer PDF: %v", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()
	if _, err := tmp.Write(data); err != nil {
		return nil, fmt.Errorf("failed to buffer PDF: %v", err)
	}
	tmp.Close()
	filePath := tmp.Name()

	numPages := pdfPageCount(filePath)
	if numPages == 0 {
		numPages = 1
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		pageStr := strconv.Itoa(i)
		out, err := exec.Command("pdftotext", "-layout", "-f", pageStr, "-l", pageStr, filePath, "-").Output()
		if err != nil {
			continue
		}
		text := strings.TrimSpace(string(out))
		if text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
		if err != nil {
			return nil, fmt.Errorf("pdftotext failed: %v", err)
		}
		text := strings.TrimSpace(string(out))
		if text != "" {
			return []string{text}, nil
		}
		return nil, fmt.Errorf("pdftotext produced no output")
	}

	return pages, nil
}

// extractWithLibrary uses the ledongthuc/pdf library with multiple methods,
// reading directly from the in-memory byte slice via an io.ReaderAt.
func extractWithLibrary(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	r, openErr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if openErr != nil {
		return nil, openErr
	}

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	pages = extractByRow(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	pages = extractByContent(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	pages = extractByPagePlainText(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	plainText := extractByReaderPlainText(r)
	if isReadableText([]string{plainText}) {
		return []string{plainText}, nil
	}

	return pages, nil
}

// columnGapThreshold is the X-coordinate gap, in PDF points, past which two
// adjacent words on the same row are treated as belonging to different
// table columns rather than the same run of text.
const columnGapThreshold = 15.0

// columnGapMarker is what a wide column gap is rendered as once text is
// flattened to a single string. It must stay in sync with columnSplitRe in
// table.go, which is what turns it back into a column boundary.
const columnGapMarker = "   "

func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			var prevX float64
			for j, word := range row.Content {
				if j > 0 && word.X-prevX > columnGapThreshold {
					parts = append(parts, columnGapMarker)
				} else if j > 0 {
					parts = append(parts, " ")
				}
				parts = append(parts, word.S)
				prevX = word.X
			}
			line := strings.TrimSpace(strings.Join(parts, ""))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// textItem is a positioned glyph run used by extractByContent.
type textItem struct {
	x float64
	s string
}

// rowsByY groups a page's Content().Text items into Y-ordered rows,
// sorted left-to-right within each row, for extractByContent.
func rowsByY(content pdf.Content) [][]textItem {
	rowMap := make(map[int][]textItem)
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		yKey := int(math.Round(t.Y))
		rowMap[yKey] = append(rowMap[yKey], textItem{x: t.X, s: t.S})
	}

	yKeys := make([]int, 0, len(rowMap))
	for y := range rowMap {
		yKeys = append(yKeys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

	rows := make([][]textItem, 0, len(yKeys))
	for _, y := range yKeys {
		items := rowMap[y]
		sort.Slice(items, func(a, b int) bool { return items[a].x < items[b].x })
		rows = append(rows, items)
	}
	return rows
}

func extractByContent(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		var lines []string
		for _, items := range rowsByY(content) {
			var parts []string
			var prevX float64
			for j, item := range items {
				if j > 0 && item.x-prevX > columnGapThreshold {
					parts = append(parts, columnGapMarker)
				}
				parts = append(parts, item.s)
				prevX = item.x
			}
			line := strings.TrimSpace(strings.Join(parts, ""))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

func extractByPagePlainText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fontNames := page.Fonts()
		fonts := make(map[string]*pdf.Font)
		for _, name := range fontNames {
			f := page.Font(name)
			fonts[name] = &f
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

func extractByReaderPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
