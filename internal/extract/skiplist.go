package extract

import "strings"

// summarySkipList is the credit-card statement boilerplate that must
// never be promoted to a transaction: minimum-due reminders, fee
// schedules, and reward/cashback program summaries.
var summarySkipList = []string{
	"minimum amount due", "minimum due", "payment due", "total amount due",
	"outstanding balance", "current balance", "previous balance",
	"credit limit", "available credit", "cash advance limit",
	"statement date", "due date", "payment due date",
	"total credits", "total debits", "finance charges",
	"late payment fee", "overlimit fee", "annual fee",
	"reward points summary", "cashback summary",
}

func isSummaryLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range summarySkipList {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// iciciSignKeywords are the description keywords that make a no-suffix
// ICICI_CC amount positive (income) rather than the expense default.
var iciciSignKeywords = []string{
	"PAYMENT", "BBPS", "CREDIT", "REFUND", "REVERSAL", "CASHBACK", "REWARD",
}

// sbiSignKeywords mirror iciciSignKeywords but are kept as an
// independently configurable list per DESIGN.md's Open Question
// resolution — SBI_CC's no-suffix fallback and ICICI_CC's happen to
// overlap today but are not forced to share one list.
var sbiSignKeywords = []string{
	"PAYMENT", "CREDIT", "CASHBACK", "REFUND", "REVERSAL",
}

func hasAnyKeyword(desc string, keywords []string) bool {
	upper := strings.ToUpper(desc)
	for _, kw := range keywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// incomeKeywords / expenseKeywords back the GENERIC_TEXT savings-account
// sign fallback when no previous balance is available to infer sign from
// balance arithmetic.
var incomeKeywords = []string{
	"fd clos", "credit", "salary", "interest", "dividend", "bonus",
	"refund", "reversal",
}

var expenseKeywords = []string{
	"payment", "transfer", "withdrawal", "charges", "tax", "tds", "gst",
	"bbps", "bpay", "ccwd", "bil/", "onl/", "top/",
}

func hasAnyKeywordLower(desc string, keywords []string) bool {
	lower := strings.ToLower(desc)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
