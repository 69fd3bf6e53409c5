package pdftext

import "testing"

func TestDiscoverTablesDefault(t *testing.T) {
	text := "Statement of account\n" +
		"Date       Particulars        Amount     Balance\n" +
		"15-01-2024 UPI-SWIGGY-ORDER   450.00     9550.00\n" +
		"16-01-2024 NEFT-SALARY-CREDIT 2000.00    11550.00\n"

	tables := discoverTables(text)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	table := tables[0]
	if len(table) != 3 {
		t.Fatalf("expected header + 2 data rows, got %d rows", len(table))
	}
	if len(table[0]) < 2 {
		t.Errorf("expected header to split into multiple columns, got %v", table[0])
	}
}

func TestDiscoverTablesNone(t *testing.T) {
	text := "This statement has no tabular layout at all, just prose."
	if tables := discoverTables(text); tables != nil {
		t.Errorf("expected no tables, got %v", tables)
	}
}

// TestColumnGapMarkerRoundTripsThroughDiscovery reproduces what
// extractByRow/extractByContent actually emit for a wide X-coordinate gap
// (columnGapMarker) and checks discoverDefault can split it back into
// columns, closing the gap where columnSplitRe required three spaces but
// the extraction methods only ever produced one or two.
func TestColumnGapMarkerRoundTripsThroughDiscovery(t *testing.T) {
	gap := columnGapMarker
	text := "Statement of account\n" +
		"Date" + gap + "Particulars" + gap + "Amount" + gap + "Balance\n" +
		"15-01-2024" + gap + "UPI-SWIGGY-ORDER" + gap + "450.00" + gap + "9550.00\n" +
		"16-01-2024" + gap + "NEFT-SALARY-CREDIT" + gap + "2000.00" + gap + "11550.00\n"

	tables := discoverDefault(text)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if len(tables[0][0]) != 4 {
		t.Fatalf("expected 4 header columns, got %v", tables[0][0])
	}
}

func TestDiscoverTextRuled(t *testing.T) {
	text := "Account Summary\n" +
		"Date Transaction Particulars Amount\n" +
		"17-01-2024 UPI-ZOMATO-ORDER 300.00\n" +
		"18-01-2024 ATM-WITHDRAWAL 1000.00\n"

	tables := discoverTextRuled(text)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table from text-ruled discovery, got %d", len(tables))
	}
}
