// Package writer renders an extraction Result to the output formats the
// CLI and HTTP API expose: CSV and JSON.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/shopspring/decimal"
)

// CSVWriter writes a Result to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes a Result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, result *models.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write renders result's transactions as CSV to out. With IncludeHeader
// set, a block of "# key,value" summary rows precedes the column header.
func (w *CSVWriter) Write(out io.Writer, result *models.Result) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		s := result.Summary
		writer.Write([]string{"# Issuer", string(s.Issuer)})
		writer.Write([]string{"# Total", fmt.Sprintf("%d", s.Total)})
		writer.Write([]string{"# Debits", fmt.Sprintf("%d", s.Debits)})
		writer.Write([]string{"# Credits", fmt.Sprintf("%d", s.Credits)})
		writer.Write([]string{"# Total Debit Amount", formatAmount(s.TotalDebitAmount)})
		writer.Write([]string{"# Total Credit Amount", formatAmount(s.TotalCreditAmount)})
		for _, warning := range s.Warnings {
			writer.Write([]string{"# Warning", warning})
		}
	}

	header := []string{"Date", "Description", "Type", "Mode", "Amount", "Balance", "Details"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range result.Transactions {
		balance := ""
		if txn.Balance.Valid {
			balance = formatAmount(txn.Balance.Decimal)
		}
		row := []string{
			txn.Date,
			txn.Description,
			string(txn.Type),
			string(txn.Mode),
			formatAmount(txn.Amount),
			balance,
			txn.Details,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func formatAmount(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}
	return amount.StringFixed(2)
}
