package extract

import "testing"

func TestExtractHDFCCC(t *testing.T) {
	text := "05/02/2024 AMAZON.IN MUMBAI 1999.00\n" +
		"06/02/2024 PAYMENT RECEIVED 5000.00 Cr\n" +
		"Minimum Amount Due Rs. 500.00\n"

	txns := extractHDFCCC(doc(text))
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions (summary line skipped), got %d", len(txns))
	}
	if !txns[0].Amount.IsNegative() {
		t.Errorf("expected first transaction (no Cr) negative, got %s", txns[0].Amount)
	}
	if !txns[1].Amount.IsPositive() {
		t.Errorf("expected second transaction (Cr) positive, got %s", txns[1].Amount)
	}
}
