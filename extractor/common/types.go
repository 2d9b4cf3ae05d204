package common

import (
	"github.com/shopspring/decimal"
)

// Transaction direction values. Amount sign mirrors direction: debit
// amounts are negative, credit amounts positive.
const (
	DirectionDebit  = "debit"
	DirectionCredit = "credit"
)

// Payment methods inferred from the structured detail lines.
const (
	MethodCardPOS     = "card_pos"
	MethodTransferIn  = "transfer_in"
	MethodTransferOut = "transfer_out"
)

// Transaction is one categorized statement entry. Date is an ISO 8601
// calendar date. Amount is nil when no numeric value could be extracted.
type Transaction struct {
	Date      string           `json:"date"`
	Title     string           `json:"title"`
	Merchant  string           `json:"merchant"`
	Method    string           `json:"method,omitempty"`
	Amount    *decimal.Decimal `json:"amount"`
	Currency  string           `json:"currency"`
	Direction string           `json:"direction"`
	RawLines  []string         `json:"raw_lines"`
	Category  string           `json:"category,omitempty"`
}

// AmountKey renders the amount the way override keys expect: two decimal
// places, or empty string when no amount was extracted.
func (t Transaction) AmountKey() string {
	if t.Amount == nil {
		return ""
	}
	return t.Amount.StringFixed(2)
}

// StatementDetails holds the labeled header fields of a statement. Empty
// strings mean the field was not found.
type StatementDetails struct {
	AccountHolder   string `json:"account_holder"`
	AccountNumber   string `json:"account_number"`
	AccountType     string `json:"account_type"`
	StatementPeriod string `json:"statement_period"`
}

// Complete reports whether every detail field has been filled.
func (d StatementDetails) Complete() bool {
	return d.AccountHolder != "" && d.AccountNumber != "" && d.AccountType != "" && d.StatementPeriod != ""
}
