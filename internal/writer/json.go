package writer

import (
	"encoding/json"
	"io"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// JSONWriter writes a Result as JSON, indented when Indent is set. The
// CLI's -json flag uses it; the HTTP API encodes its own ConvertResponse.
type JSONWriter struct {
	Indent bool
}

func (w *JSONWriter) Write(out io.Writer, result *models.Result) error {
	enc := json.NewEncoder(out)
	if w.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
