package pdftext

import "testing"

func TestOpenUnreadableYieldsEmptyDocumentNotError(t *testing.T) {
	doc, err := Open([]byte("this is not a pdf, just plain garbage bytes"), "")
	if err != nil {
		t.Fatalf("expected a non-fatal empty Document, got error: %v", err)
	}
	if doc == nil {
		t.Fatal("expected a non-nil Document")
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected zero pages for unreadable input, got %d", len(doc.Pages))
	}
}

func TestOpenEmptyInputStillErrors(t *testing.T) {
	_, err := Open(nil, "")
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
}
