// Package models holds the normalized record types shared across the
// PDF text layer, the extractors, and the writers.
package models

import (
	"github.com/shopspring/decimal"
)

// IssuerFormat tags the layout variant a statement was classified as.
type IssuerFormat string

const (
	IssuerSBICC        IssuerFormat = "SBI_CC"
	IssuerHDFCCC       IssuerFormat = "HDFC_CC"
	IssuerIndusIndCC   IssuerFormat = "INDUSIND_CC"
	IssuerICICICC      IssuerFormat = "ICICI_CC"
	IssuerGenericTable IssuerFormat = "GENERIC_TABLE"
	IssuerGenericText  IssuerFormat = "GENERIC_TEXT"
)

// TransactionType is the derived income/expense tag, redundant with the
// sign of Amount but kept for consumer convenience.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Mode is a coarse channel tag inferred from the description.
type Mode string

const (
	ModeMobileBanking Mode = "MOBILE_BANKING"
	ModeATM           Mode = "ATM"
	ModeOnline        Mode = "ONLINE"
	ModeCreditCard    Mode = "CREDIT_CARD"
)

// Transaction is the single normalized output record.
type Transaction struct {
	Date        string              `json:"date"`
	Description string              `json:"description"`
	Amount      decimal.Decimal     `json:"amount"`
	Balance     decimal.NullDecimal `json:"balance,omitempty"`
	Type        TransactionType     `json:"type"`
	Mode        Mode                `json:"mode,omitempty"`
	Details     string              `json:"details,omitempty"`
	RawLine     string              `json:"rawLine,omitempty"`
	Issuer      IssuerFormat        `json:"issuer,omitempty"`
}

// Fingerprint is the dedupe key: canonical date, amount rounded to 2
// decimals, and the first 20 characters of description.
func (t Transaction) Fingerprint() string {
	desc := t.Description
	if r := []rune(desc); len(r) > 20 {
		desc = string(r[:20])
	}
	return t.Date + "|" + t.Amount.Round(2).String() + "|" + desc
}

// Summary aggregates a Result's transactions.
type Summary struct {
	Total             int             `json:"total"`
	Debits            int             `json:"debits"`
	Credits           int             `json:"credits"`
	TotalDebitAmount  decimal.Decimal `json:"totalDebitAmount"`
	TotalCreditAmount decimal.Decimal `json:"totalCreditAmount"`
	Issuer            IssuerFormat    `json:"issuer,omitempty"`
	Warnings          []string        `json:"warnings,omitempty"`
}

// Result is the return value of the core Extract operation.
type Result struct {
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
}
