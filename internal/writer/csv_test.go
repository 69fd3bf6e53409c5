package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/shopspring/decimal"
)

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleResult() *models.Result {
	txns := []models.Transaction{
		{Date: "15-01-2024", Description: "UPI-SWIGGY", Amount: amt("-25.99"), Type: models.TypeExpense, Mode: models.ModeMobileBanking, Balance: decimal.NewNullDecimal(amt("1234.56"))},
		{Date: "16-01-2024", Description: "SALARY", Amount: amt("2500.00"), Type: models.TypeIncome, Balance: decimal.NewNullDecimal(amt("3734.56"))},
	}
	return &models.Result{
		Transactions: txns,
		Summary: models.Summary{
			Total: 2, Debits: 1, Credits: 1,
			TotalDebitAmount:  amt("25.99"),
			TotalCreditAmount: amt("2500.00"),
			Issuer:            models.IssuerGenericText,
		},
	}
}

func TestCSVWriter_Write(t *testing.T) {
	result := sampleResult()

	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}
	if err := w.Write(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "# Issuer") {
		t.Error("expected issuer metadata header")
	}
	if !strings.Contains(output, "Date,Description,Type,Mode,Amount,Balance,Details") {
		t.Error("expected column headers")
	}
	if !strings.Contains(output, "15-01-2024") {
		t.Error("expected first transaction date")
	}
	if !strings.Contains(output, "UPI-SWIGGY") {
		t.Error("expected first transaction description")
	}
	if !strings.Contains(output, "25.99") {
		t.Error("expected first transaction amount")
	}
}

func TestCSVWriter_WriteNoHeader(t *testing.T) {
	result := sampleResult()

	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: false}
	if err := w.Write(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	if strings.Contains(output, "# Issuer") {
		t.Error("should not have summary metadata when header=false")
	}
	if !strings.Contains(output, "Date,Description,Type,Mode,Amount,Balance,Details") {
		t.Error("expected column headers even without metadata")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input    decimal.Decimal
		expected string
	}{
		{amt("25.99"), "25.99"},
		{amt("1234.56"), "1234.56"},
		{decimal.Zero, ""},
		{amt("2500.00"), "2500.00"},
		{amt("-25.99"), "-25.99"},
	}

	for _, tt := range tests {
		got := formatAmount(tt.input)
		if got != tt.expected {
			t.Errorf("formatAmount(%s): got %q, want %q", tt.input.String(), got, tt.expected)
		}
	}
}
