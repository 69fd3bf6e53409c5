package pdftext

import (
	"os/exec"
	"strconv"
	"strings"
)

// LooksImageOnly reports whether pages almost certainly came from a
// scanned/image-based PDF rather than a genuine text layer. Open returns
// an empty Document rather than an error when no extraction method could
// produce readable text, so this is what a caller checks to tell that
// case apart from a statement that legitimately has nothing on it, and to
// log a clear warning instead of silently returning zero transactions.
// OCR of scanned statements is out of scope.
func LooksImageOnly(pages []string) bool {
	return !isReadableText(pages) && totalTextLen(pages) < 50
}

// pdfPageCount shells out to pdfinfo (poppler-utils) to report how many
// pages a buffered PDF has, used only for the pdftotext fallback's
// per-page extraction loop.
func pdfPageCount(filePath string) int {
	out, err := exec.Command("pdfinfo", filePath).Output()
	if err != nil {
		return 0
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "Pages:") {
			if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:"))); err == nil {
				return n
			}
		}
	}
	return 0
}
