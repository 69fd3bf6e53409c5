package extract

import (
	"testing"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		hasTables bool
		want      models.IssuerFormat
	}{
		{
			name: "sbi credit card",
			text: "SBI Card\nYour SBI Credit Card Statement\nCredit Card Statement for the period...",
			want: models.IssuerSBICC,
		},
		{
			name: "hdfc credit card",
			text: "HDFC Bank\nHDFC Credit Card Statement\nCredit Card Statement",
			want: models.IssuerHDFCCC,
		},
		{
			name: "indusind credit card",
			text: "IndusInd Bank Credit Card Statement\nCredit Card Statement of account",
			want: models.IssuerIndusIndCC,
		},
		{
			name: "icici mention anywhere",
			text: "Some header\nICICI Bank savings account summary",
			want: models.IssuerICICICC,
		},
		{
			name:      "generic table fallback",
			text:      "Some Savings Bank\nDate Particulars Amount Balance",
			hasTables: true,
			want:      models.IssuerGenericTable,
		},
		{
			name: "generic text fallback",
			text: "Some Savings Bank statement with no tables",
			want: models.IssuerGenericText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text, tt.hasTables)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
