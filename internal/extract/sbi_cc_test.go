package extract

import "testing"

func TestExtractSBICC(t *testing.T) {
	text := "12 Jan 24 SWIGGY BANGALORE 450.00 D\n" +
		"13 Jan 24 PAYMENT RECEIVED 2000.00 C\n" +
		"14 Jan 24 CASHBACK OFFER 50.00\n"

	txns := extractSBICC(doc(text))
	if len(txns) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txns))
	}
	if !txns[0].Amount.IsNegative() {
		t.Errorf("expected D marker negative, got %s", txns[0].Amount)
	}
	if !txns[1].Amount.IsPositive() {
		t.Errorf("expected C marker positive, got %s", txns[1].Amount)
	}
	if !txns[2].Amount.IsPositive() {
		t.Errorf("expected keyword-driven positive sign for CASHBACK, got %s", txns[2].Amount)
	}
}
