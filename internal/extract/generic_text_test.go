package extract

import "testing"

func TestExtractGenericTextBalanceSign(t *testing.T) {
	text := "B/F 10000.00\n" +
		"15-01-2024 UPI-SWIGGY-ORDER 450.00 9550.00\n" +
		"16-01-2024 NEFT-SALARY-CREDIT 2000.00 11550.00\n"

	txns := extractGenericText(doc(text))
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if !txns[0].Amount.IsNegative() {
		t.Errorf("expected balance-drop to infer a debit, got %s", txns[0].Amount)
	}
	if !txns[1].Amount.IsPositive() {
		t.Errorf("expected balance-rise to infer a credit, got %s", txns[1].Amount)
	}
}

func TestExtractGenericTextKeywordFallback(t *testing.T) {
	text := "15/01/2024 ATM WITHDRAWAL CCWD 500.00\n"
	txns := extractGenericText(doc(text))
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if !txns[0].Amount.IsNegative() {
		t.Errorf("expected keyword-driven expense classification, got %s", txns[0].Amount)
	}
}

func TestBackScanDescription(t *testing.T) {
	lines := []string{
		"UPI-SWIGGY-ORDER",
		"REFERENCE NUMBER CONTINUATION LINE",
		"15-01-2024 UPI-SWIGGY-ORDER 450.00 9550.00",
	}
	got := backScanDescription(lines, 2, "UPI-SWIGGY-ORDER 450.00 9550.00")
	if got == "UPI-SWIGGY-ORDER 450.00 9550.00" {
		t.Error("expected back-scan to prepend continuation lines")
	}
}
