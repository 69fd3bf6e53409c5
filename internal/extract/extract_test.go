package extract

import (
	"context"
	"testing"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/shopspring/decimal"
)

func TestExtractorForCoversEveryIssuer(t *testing.T) {
	all := []models.IssuerFormat{
		models.IssuerSBICC, models.IssuerHDFCCC, models.IssuerIndusIndCC,
		models.IssuerICICICC, models.IssuerGenericTable, models.IssuerGenericText,
	}
	for _, issuer := range all {
		if _, ok := extractorFor[issuer]; !ok {
			t.Errorf("no extractor registered for issuer %q", issuer)
		}
	}
}

func TestSummarize(t *testing.T) {
	txns := []models.Transaction{
		{Date: "15-01-2024", Amount: decimal.RequireFromString("-450.00")},
		{Date: "16-01-2024", Amount: decimal.RequireFromString("2000.00")},
	}
	s := summarize(txns, models.IssuerGenericText)

	if s.Total != 2 || s.Debits != 1 || s.Credits != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if !s.TotalDebitAmount.Equal(decimal.RequireFromString("450.00")) {
		t.Errorf("expected total debit 450.00, got %s", s.TotalDebitAmount)
	}
	if !s.TotalCreditAmount.Equal(decimal.RequireFromString("2000.00")) {
		t.Errorf("expected total credit 2000.00, got %s", s.TotalCreditAmount)
	}
	if len(s.Warnings) != 0 {
		t.Errorf("expected no warnings when transactions are present, got %v", s.Warnings)
	}
}

func TestSummarizeEmptyWarns(t *testing.T) {
	s := summarize(nil, models.IssuerGenericText)
	if len(s.Warnings) == 0 {
		t.Error("expected a warning when no transactions were found")
	}
}

// TestExtractUnreadablePDFIsNotFatal covers the non-fatal contract for an
// image-only or otherwise unparseable PDF: the pipeline still returns a
// result, with an empty transaction list and a warning, rather than an
// error.
func TestExtractUnreadablePDFIsNotFatal(t *testing.T) {
	garbage := []byte("this is not a pdf, just plain garbage bytes")

	result, err := Extract(context.Background(), garbage, "", nil)
	if err != nil {
		t.Fatalf("expected no error for an unreadable PDF, got: %v", err)
	}
	if len(result.Transactions) != 0 {
		t.Errorf("expected no transactions, got %d", len(result.Transactions))
	}
	if len(result.Summary.Warnings) == 0 {
		t.Error("expected a warning explaining why no transactions were found")
	}
}
