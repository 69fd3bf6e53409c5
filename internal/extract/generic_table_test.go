package extract

import (
	"testing"

	"github.com/insightdelivered/statement-extractor/internal/pdftext"
	"github.com/shopspring/decimal"
)

func TestExtractGenericTableSimple(t *testing.T) {
	table := pdftext.Table{
		{"Date", "Particulars", "Debit", "Credit", "Balance"},
		{"15-01-2024", "UPI-SWIGGY-ORDER", "450.00", "", "9550.00"},
		{"16-01-2024", "NEFT-SALARY-CREDIT", "", "2000.00", "11550.00"},
	}
	d := &pdftext.Document{Pages: []pdftext.Page{{Tables: []pdftext.Table{table}}}}

	txns := extractGenericTable(d)
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if !txns[0].Amount.IsNegative() {
		t.Errorf("expected debit negative, got %s", txns[0].Amount)
	}
	if !txns[1].Amount.IsPositive() {
		t.Errorf("expected credit positive, got %s", txns[1].Amount)
	}
}

func TestExtractGenericTableSixColumnDelegatesToICICI(t *testing.T) {
	table := pdftext.Table{
		{"Date", "SerNo", "Transaction Details", "Reward Points", "Intl.Amount", "Amount"},
		{"18/01/2024", "1004", "FLIPKART ORDER", "0", "", "899.00 DR"},
	}
	d := &pdftext.Document{Pages: []pdftext.Page{{Tables: []pdftext.Table{table}}}}

	txns := extractGenericTable(d)
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction via ICICI-CC row handler, got %d", len(txns))
	}
}

func TestReattributeByBalance(t *testing.T) {
	balances := []decimal.Decimal{
		decimal.RequireFromString("9550.00"),
		decimal.RequireFromString("9450.00"),
		decimal.RequireFromString("11450.00"),
	}
	firstDebit := decimal.RequireFromString("-450.00")

	got := reattributeByBalance(balances, firstDebit, 3, nil, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 amounts, got %d", len(got))
	}
	if !got[0].Equal(firstDebit) {
		t.Errorf("A[0] should be the first raw debit, got %s", got[0])
	}
	want1 := decimal.RequireFromString("-100.00")
	if !got[1].Equal(want1) {
		t.Errorf("A[1] = B[1]-B[0] = %s, want %s", got[1], want1)
	}
	want2 := decimal.RequireFromString("2000.00")
	if !got[2].Equal(want2) {
		t.Errorf("A[2] = B[2]-B[1] = %s, want %s", got[2], want2)
	}
}

// TestExtractGenericTableRow_MultilineDebitsSign covers the §8 boundary case:
// a multi-line row with 5 debits and 1 credit, where the debit/credit cells
// split unevenly across lines and the transaction-level amounts must come
// from balance arithmetic. The first of the 5 debits must still come out
// negative (expense), not positive.
func TestExtractGenericTableRow_MultilineDebitsSign(t *testing.T) {
	roles := columnRoles{date: 0, desc: 1, debit: 2, credit: 3, amount: -1, balance: 4}
	row := []string{
		"01-01-2024\n02-01-2024\n03-01-2024\n04-01-2024\n05-01-2024\n06-01-2024",
		"UPI-A\nUPI-B\nUPI-C\nUPI-D\nUPI-E\nNEFT-F",
		"100.00\n100.00\n100.00\n100.00\n100.00\n",
		"\n\n\n\n\n2000.00",
		"9900.00\n9800.00\n9700.00\n9600.00\n9500.00\n11500.00",
	}

	txns := extractGenericTableRow(row, roles)
	if len(txns) != 6 {
		t.Fatalf("expected 6 transactions, got %d", len(txns))
	}
	for i := 0; i < 5; i++ {
		if !txns[i].Amount.IsNegative() {
			t.Errorf("txn %d: expected debit negative, got %s", i, txns[i].Amount)
		}
	}
	if !txns[5].Amount.IsPositive() {
		t.Errorf("txn 5: expected credit positive, got %s", txns[5].Amount)
	}
}

func TestGroupDescriptions(t *testing.T) {
	lines := []string{"UPI-SWIGGY-ORDER", "REF12345", "NEFT-SALARY-CREDIT"}
	got := groupDescriptions(lines, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 grouped descriptions, got %d", len(got))
	}
	if got[0] != "UPI-SWIGGY-ORDER | REF12345" {
		t.Errorf("expected continuation line joined to first cluster, got %q", got[0])
	}
	if got[1] != "NEFT-SALARY-CREDIT" {
		t.Errorf("expected second prefix to start a new cluster, got %q", got[1])
	}
}
