package extract

import "testing"

func TestExtractIndusIndCC(t *testing.T) {
	text := "20/01/2024 ZOMATO ONLINE ORDER 650.00 DR\n" +
		"21/01/2024 BILL PAYMENT RECEIVED 3000.00 CR\n" +
		"22/01/2024 MISSING SUFFIX LINE 100.00\n"

	txns := extractIndusIndCC(doc(text))
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions (suffix-less line dropped), got %d", len(txns))
	}
	if !txns[0].Amount.IsNegative() {
		t.Errorf("expected DR negative, got %s", txns[0].Amount)
	}
	if !txns[1].Amount.IsPositive() {
		t.Errorf("expected CR positive, got %s", txns[1].Amount)
	}
}
