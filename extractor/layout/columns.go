package layout

import (
	"sort"
	"strings"

	"github.com/radum/extrascont/extractor/common"
	"github.com/shopspring/decimal"
)

// Tokens more than this far left of the leftmost amount column are
// foreign-currency or rate annotations inside the description, not table
// amounts.
const detailAmountCutoff = 90.0

var balanceHeaders = map[string]bool{
	"balanta": true,
	"balanța": true,
	"sold":    true,
	"saldo":   true,
}

// Columns holds the horizontal centers of the statement's amount columns.
// BalanceX is negative when no balance column was found.
type Columns struct {
	DebitX   float64
	CreditX  float64
	BalanceX float64
	hasBal   bool
}

// FindColumnCenters locates the Debit/Credit (and optional balance)
// header words on a page and returns their midpoints. Returns nil when
// either the Debit or Credit header is missing; the caller must then fall
// back to text heuristics.
func FindColumnCenters(words []Word) *Columns {
	ordered := make([]Word, len(words))
	copy(ordered, words)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Top < ordered[j].Top })

	var debit, credit, balance *Word
	for i := range ordered {
		text := strings.ToLower(strings.TrimSpace(ordered[i].Text))
		switch {
		case text == "debit" && debit == nil:
			debit = &ordered[i]
		case text == "credit" && credit == nil:
			credit = &ordered[i]
		case balanceHeaders[text] && balance == nil:
			balance = &ordered[i]
		}
		if debit != nil && credit != nil && balance != nil {
			break
		}
	}
	if debit == nil || credit == nil {
		return nil
	}

	cols := &Columns{DebitX: debit.Center(), CreditX: credit.Center(), BalanceX: -1}
	if balance != nil {
		cols.BalanceX = balance.Center()
		cols.hasBal = true
	}
	return cols
}

// snapDistance scales with the table width to tolerate layout variation
// across statement versions.
func (c *Columns) snapDistance() float64 {
	d := abs(c.DebitX-c.CreditX) * 0.45
	if d < 45.0 {
		return 45.0
	}
	return d
}

// Amounts maps the line's amount tokens onto the Debit/Credit columns by
// horizontal distance. Tokens nearest the balance column are discarded;
// per column, the closest qualifying token wins.
func (c *Columns) Amounts(words []Word) (debit, credit *decimal.Decimal) {
	leftCol := c.DebitX
	if c.CreditX < leftCol {
		leftCol = c.CreditX
	}
	maxSnap := c.snapDistance()

	type candidate struct {
		dist  float64
		value string
	}
	var debitCand, creditCand *candidate

	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if !common.IsAmountToken(text) {
			continue
		}
		cx := w.Center()
		if cx < leftCol-detailAmountCutoff {
			continue
		}

		name, dist := "debit", abs(cx-c.DebitX)
		if d := abs(cx - c.CreditX); d < dist {
			name, dist = "credit", d
		}
		if c.hasBal {
			if d := abs(cx - c.BalanceX); d < dist {
				name, dist = "balance", d
			}
		}
		if dist > maxSnap || name == "balance" {
			continue
		}

		if name == "debit" {
			if debitCand == nil || dist < debitCand.dist {
				debitCand = &candidate{dist, text}
			}
		} else {
			if creditCand == nil || dist < creditCand.dist {
				creditCand = &candidate{dist, text}
			}
		}
	}

	if debitCand != nil {
		debit = common.ParseRONAmount(debitCand.value)
	}
	if creditCand != nil {
		credit = common.ParseRONAmount(creditCand.value)
	}
	return debit, credit
}

// Resolver maps a line's words to column amounts. A nil Resolver is the
// text-only path; implementations return nil values when geometry cannot
// decide.
type Resolver func(words []Word) (debit, credit *decimal.Decimal)

// ColumnResolver builds a Resolver for a page, or nil when the page has
// no recognizable Debit/Credit headers.
func ColumnResolver(pageWords []Word) Resolver {
	cols := FindColumnCenters(pageWords)
	if cols == nil {
		return nil
	}
	return cols.Amounts
}
