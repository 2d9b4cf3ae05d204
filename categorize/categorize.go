// Package categorize assigns a category to each parsed transaction using
// a layered resolution: exact transaction override, merchant+title
// override, savings-account flow rule, default rule table, then "Other".
package categorize

import (
	"strings"

	"github.com/radum/extrascont/extractor/common"
)

// PairKey is the merchant+title override key for a transaction.
func PairKey(tx common.Transaction) string {
	return strings.TrimSpace(tx.Merchant) + "||" + strings.TrimSpace(tx.Title)
}

// TransactionKey pins an override to one specific transaction: merchant,
// title, date and the amount formatted to two decimals (empty when the
// amount could not be extracted).
func TransactionKey(tx common.Transaction) string {
	return strings.Join([]string{
		strings.TrimSpace(tx.Merchant),
		strings.TrimSpace(tx.Title),
		strings.TrimSpace(tx.Date),
		tx.AmountKey(),
	}, "||")
}

// resolver is one categorization tier; first tier to return ok wins.
type resolver func(tx common.Transaction) (string, bool)

// Apply returns a new transaction list with categories assigned. Inputs
// are never mutated, so repeated application yields identical results.
func Apply(txs []common.Transaction, overrides map[string]string, savingsAccounts []string) []common.Transaction {
	accounts := make([]string, 0, len(savingsAccounts))
	for _, a := range savingsAccounts {
		if strings.TrimSpace(a) != "" {
			accounts = append(accounts, a)
		}
	}

	tiers := []resolver{
		func(tx common.Transaction) (string, bool) {
			cat, ok := overrides[TransactionKey(tx)]
			return cat, ok
		},
		func(tx common.Transaction) (string, bool) {
			cat, ok := overrides[PairKey(tx)]
			return cat, ok
		},
		func(tx common.Transaction) (string, bool) {
			return savingsCategory(tx, accounts)
		},
		func(tx common.Transaction) (string, bool) {
			blob := tx.Title + " " + tx.Merchant
			for _, r := range defaultRules {
				if r.pattern.MatchString(blob) {
					return r.category, true
				}
			}
			return "", false
		},
	}

	out := make([]common.Transaction, len(txs))
	for i, tx := range txs {
		tx.Category = "Other"
		for _, tier := range tiers {
			if cat, ok := tier(tx); ok {
				tx.Category = cat
				break
			}
		}
		out[i] = tx
	}
	return out
}

// savingsCategory applies the account-flow rule: money into a tracked
// savings account is "Savings", money out of it is "Loans". When the flow
// is ambiguous the transaction's own direction decides.
func savingsCategory(tx common.Transaction, accounts []string) (string, bool) {
	var matched string
	for _, account := range accounts {
		if MentionsAccount(tx, account) {
			matched = account
			break
		}
	}
	if matched == "" {
		return "", false
	}

	switch AccountFlow(tx, matched) {
	case flowIn:
		return "Savings", true
	case flowOut:
		return "Loans", true
	}
	switch tx.Direction {
	case common.DirectionCredit:
		return "Savings", true
	case common.DirectionDebit:
		return "Loans", true
	}
	return "", false
}
