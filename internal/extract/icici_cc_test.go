package extract

import (
	"testing"

	"github.com/insightdelivered/statement-extractor/internal/pdftext"
)

func doc(text string) *pdftext.Document {
	return &pdftext.Document{Pages: []pdftext.Page{{PlainText: text}}}
}

func TestExtractICICICCText(t *testing.T) {
	text := "15/01/2024 1001 AMAZON PAY INDIA 1234.56 DR\n" +
		"16/01/2024 1002 PAYMENT RECEIVED THANK YOU 5000.00 CR\n"

	txns := extractICICICCText(doc(text))
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if !txns[0].Amount.IsNegative() {
		t.Errorf("expected first transaction negative (DR), got %s", txns[0].Amount)
	}
	if !txns[1].Amount.IsPositive() {
		t.Errorf("expected second transaction positive (CR), got %s", txns[1].Amount)
	}
}

func TestExtractICICICCTextNoSuffixKeyword(t *testing.T) {
	text := "17/01/2024 1003 CASHBACK CREDITED FOR JAN 250.00\n"
	txns := extractICICICCText(doc(text))
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if !txns[0].Amount.IsPositive() {
		t.Errorf("expected keyword-driven positive sign, got %s", txns[0].Amount)
	}
}

func TestExtractICICICCTable(t *testing.T) {
	table := pdftext.Table{
		{"Date", "SerNo", "Transaction Details", "Reward Points", "Intl.Amount", "Amount"},
		{"18/01/2024", "1004", "FLIPKART ORDER", "0", "", "899.00 DR"},
	}
	txns := extractICICICCTable([]pdftext.Table{table})
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if !txns[0].Amount.IsNegative() {
		t.Errorf("expected DR to be negative, got %s", txns[0].Amount)
	}
}

func TestExtractICICICCMergesTabularAndTextDedup(t *testing.T) {
	page := pdftext.Page{
		PlainText: "18/01/2024 1004 FLIPKART ORDER 899.00 DR\n",
		Tables: []pdftext.Table{
			{
				{"Date", "SerNo", "Transaction Details", "Reward Points", "Intl.Amount", "Amount"},
				{"18/01/2024", "1004", "FLIPKART ORDER", "0", "", "899.00 DR"},
			},
		},
	}
	result := extractICICICC(&pdftext.Document{Pages: []pdftext.Page{page}})
	if len(result) != 1 {
		t.Fatalf("expected duplicate tabular/text entries to merge to 1, got %d", len(result))
	}
}
