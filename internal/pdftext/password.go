package pdftext

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// encrypted reports whether the raw PDF bytes declare an /Encrypt
// dictionary. This is a cheap scan rather than a full parse — the
// ledongthuc/pdf cascade already handles the unencrypted case, so this
// only needs to gate whether the pdfcpu decrypt pass runs at all.
func encrypted(data []byte) bool {
	return bytes.Contains(data, []byte("/Encrypt"))
}

// decrypt removes the PDF's encryption using pdfcpu, trying password as
// both the user and owner password (Indian bank/card statement PDFs are
// typically protected with a single PAN/DOB-derived password, not a
// separate owner password). A wrong or missing password surfaces as
// ErrPasswordRequired.
func decrypt(data []byte, password string) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(data), &out, conf); err != nil {
		return nil, fmt.Errorf("pdftext: %w: %v", ErrPasswordRequired, err)
	}
	return out.Bytes(), nil
}
