// Package extract implements the issuer classifier, the per-issuer
// extractors, and the normalizer that together turn a pdftext.Document
// into normalized models.Transaction records.
package extract

import "github.com/insightdelivered/statement-extractor/internal/pdftext"

// ErrPasswordRequired and ErrUnreadablePDF are re-exported from pdftext so
// callers of Extract never need to import the text-layer package directly
// to check error identity.
var (
	ErrPasswordRequired = pdftext.ErrPasswordRequired
	ErrUnreadablePDF    = pdftext.ErrUnreadablePDF
)
