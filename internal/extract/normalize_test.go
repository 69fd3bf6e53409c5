package extract

import (
	"testing"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/shopspring/decimal"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"15-01-2024", "15-01-2024"},
		{"15/01/2024", "15-01-2024"},
		{"2024-01-15", "15-01-2024"},
		{"15 Jan 2024", "15-01-2024"},
		{"15-Jan-24", "15-01-2024"},
		{"not a date", ""},
	}

	for _, tt := range tests {
		got, ok := normalizeDate(tt.raw)
		if tt.want == "" {
			if ok {
				t.Errorf("normalizeDate(%q): expected failure, got %q", tt.raw, got)
			}
			continue
		}
		if !ok || got != tt.want {
			t.Errorf("normalizeDate(%q) = %q, %v; want %q, true", tt.raw, got, ok, tt.want)
		}
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantOK  bool
	}{
		{"1,234.56", "1234.56", true},
		{"₹1,234.56", "1234.56", true},
		{"1234.56 CR", "1234.56", true},
		{"1234.56 DR", "-1234.56", true},
		{"1234.56D", "-1234.56", true},
		{"", "", false},
		{"-", "", false},
		{"0.00", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeAmount(tt.raw)
		if ok != tt.wantOK {
			t.Errorf("normalizeAmount(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		want, _ := decimal.NewFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("normalizeAmount(%q) = %s, want %s", tt.raw, got.String(), want.String())
		}
	}
}

func TestCleanDescription(t *testing.T) {
	got := cleanDescription("10:15:00 SWIGGY BANGALORE 1234")
	if got != "SWIGGY" {
		t.Errorf("cleanDescription timestamp/city strip: got %q", got)
	}

	got = cleanDescription("AMAZON RETAIL INDIA LIMITED")
	if got != "AMAZON RETAIL" {
		t.Errorf("cleanDescription business suffix strip: got %q", got)
	}

	got = cleanDescription("UPI-SWIGGY   ORDER")
	if got != "UPI-SWIGGY ORDER" {
		t.Errorf("cleanDescription whitespace collapse: got %q", got)
	}
}

func TestBalanceTolerance(t *testing.T) {
	prev := decimal.RequireFromString("10000.00")
	balance := decimal.RequireFromString("9550.00")
	amount := decimal.RequireFromString("-450.00")

	if !balanceTolerance(prev, balance, amount) {
		t.Error("expected exact reconciliation to satisfy tolerance")
	}

	offBalance := decimal.RequireFromString("9000.00")
	if balanceTolerance(prev, offBalance, amount) {
		t.Error("expected large mismatch to fail tolerance")
	}
}

func TestDedupe(t *testing.T) {
	a := models.Transaction{Date: "15-01-2024", Description: "SWIGGY ORDER NUMBER", Amount: decimal.RequireFromString("-100.00")}
	b := a
	b.RawLine = "duplicate from a different page"
	c := models.Transaction{Date: "16-01-2024", Description: "SALARY CREDIT", Amount: decimal.RequireFromString("2500.00")}

	out := dedupe([]models.Transaction{a, b, c})
	if len(out) != 2 {
		t.Fatalf("expected 2 deduplicated transactions, got %d", len(out))
	}
	if out[0].Date != a.Date || out[1].Date != c.Date {
		t.Error("dedupe did not preserve first-occurrence order")
	}
}
