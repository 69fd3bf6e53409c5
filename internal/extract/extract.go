// Package extract turns an opened PDF document into normalized
// transactions: issuer classification, per-issuer grammar extraction,
// cross-extractor deduplication, and summary aggregation.
package extract

import (
	"context"
	"fmt"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/pdftext"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type extractorFunc func(doc *pdftext.Document) []models.Transaction

// extractorFor dispatches by issuer tag to exactly one extractor, removing
// the fallthrough risk of re-running several parsers against one document.
var extractorFor = map[models.IssuerFormat]extractorFunc{
	models.IssuerSBICC:        extractSBICC,
	models.IssuerHDFCCC:       extractHDFCCC,
	models.IssuerIndusIndCC:   extractIndusIndCC,
	models.IssuerICICICC:      extractICICICC,
	models.IssuerGenericTable: extractGenericTable,
	models.IssuerGenericText:  extractGenericText,
}

// Extract opens pdfBytes (optionally password-protected), classifies its
// issuer, runs the matching extractor, and returns the deduplicated,
// summarized result. It is a pure function of its inputs: no state
// persists between calls.
func Extract(ctx context.Context, pdfBytes []byte, password string, log *logrus.Logger) (*models.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := pdftext.Open(pdfBytes, password)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	var pageTexts []string
	hasTables := false
	for _, page := range doc.Pages {
		pageTexts = append(pageTexts, page.PlainText)
		if len(page.Tables) > 0 {
			hasTables = true
		}
	}
	if pdftext.LooksImageOnly(pageTexts) {
		if log != nil {
			log.Warn("pdf looks image-only or carries no readable text layer; yielding no transactions")
		}
		summary := summarize(nil, models.IssuerFormat(""))
		summary.Warnings = append(summary.Warnings, "PDF appears to be scanned or image-based; no readable text layer was found, so no transactions could be extracted")
		return &models.Result{Transactions: []models.Transaction{}, Summary: summary}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullText := doc.AllText()
	issuer := Classify(fullText, hasTables)
	if log != nil {
		log.WithField("issuer", issuer).Debug("classified statement")
	}

	fn, ok := extractorFor[issuer]
	if !ok {
		return nil, fmt.Errorf("extract: no extractor registered for issuer %q", issuer)
	}

	transactions := dedupe(fn(doc))
	result := &models.Result{
		Transactions: transactions,
		Summary:      summarize(transactions, issuer),
	}
	return result, nil
}

func summarize(transactions []models.Transaction, issuer models.IssuerFormat) models.Summary {
	s := models.Summary{
		Issuer:            issuer,
		TotalDebitAmount:  decimal.Zero,
		TotalCreditAmount: decimal.Zero,
	}
	for _, t := range transactions {
		s.Total++
		if t.Amount.IsNegative() {
			s.Debits++
			s.TotalDebitAmount = s.TotalDebitAmount.Add(t.Amount.Abs())
		} else {
			s.Credits++
			s.TotalCreditAmount = s.TotalCreditAmount.Add(t.Amount)
		}
	}
	if s.Total == 0 {
		s.Warnings = append(s.Warnings, "no transactions recognized for this statement")
	}
	return s
}
