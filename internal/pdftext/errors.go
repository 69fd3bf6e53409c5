package pdftext

import "errors"

// ErrPasswordRequired is returned when the PDF is encrypted and no
// password, or the wrong password, was supplied.
var ErrPasswordRequired = errors.New("pdf is password protected")

// ErrUnreadablePDF is returned when Open is given no bytes at all. A PDF
// that opens but yields no readable text (scanned/image-only, or garbled)
// is not treated as an error; see Open and LooksImageOnly.
var ErrUnreadablePDF = errors.New("pdf could not be read")
