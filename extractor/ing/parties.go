package ing

import (
	"strings"

	"github.com/radum/extrascont/extractor/common"
	"github.com/shopspring/decimal"
)

// partyRule is one tier of the labeled-field scan. Tiers are tried in
// order over all block lines; the first tier that yields a value wins.
type partyRule struct {
	prefixes []string
	method   string
}

var partyRules = []partyRule{
	{prefixes: []string{"tranzactie la:", "platita la:"}, method: common.MethodCardPOS},
	{prefixes: []string{"terminal:"}, method: common.MethodCardPOS},
	{prefixes: []string{"beneficiar:"}, method: common.MethodTransferOut},
	{prefixes: []string{"ordonator:"}, method: common.MethodTransferIn},
}

// ExtractParty finds the best counterparty name and payment method in a
// transaction block. Falls back to the block title with no method when no
// labeled field matches.
func ExtractParty(title string, lines []string) (merchant, method string) {
	for _, rule := range partyRules {
		for _, ln := range lines {
			norm := strings.TrimSpace(common.NormalizeRO(ln))
			for _, prefix := range rule.prefixes {
				if !strings.HasPrefix(norm, prefix) {
					continue
				}
				if candidate := common.ValueAfterColon(ln); candidate != "" {
					return candidate, rule.method
				}
			}
		}
	}
	return common.CleanSpaces(title), ""
}

// directionRule is one tier of direction inference; first match wins.
type directionRule func(method string, lines []string) (string, bool)

var directionRules = []directionRule{
	// Method from structured lines is the strongest signal.
	func(method string, _ []string) (string, bool) {
		switch method {
		case common.MethodTransferIn:
			return common.DirectionCredit, true
		case common.MethodTransferOut, common.MethodCardPOS:
			return common.DirectionDebit, true
		}
		return "", false
	},
	// A named beneficiary means an outgoing transfer. Checked before
	// ordonator so mixed blocks resolve to debit.
	func(_ string, lines []string) (string, bool) {
		if anyLineHasPrefix(lines, "beneficiar:") {
			return common.DirectionDebit, true
		}
		return "", false
	},
	func(_ string, lines []string) (string, bool) {
		if anyLineHasPrefix(lines, "ordonator:") {
			return common.DirectionCredit, true
		}
		return "", false
	},
}

// InferDirection decides debit/credit from textual cues alone. Defaults
// to debit when no cue is present.
func InferDirection(method string, lines []string) string {
	for _, rule := range directionRules {
		if dir, ok := rule(method, lines); ok {
			return dir
		}
	}
	return common.DirectionDebit
}

func anyLineHasPrefix(lines []string, prefix string) bool {
	for _, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(common.NormalizeRO(ln)), prefix) {
			return true
		}
	}
	return false
}

// ExtractAmountText picks the block amount without column geometry:
// a standalone amount line wins, then an amount closing one of the first
// two lines, then the last amount anywhere in the block.
func ExtractAmountText(lines []string) *decimal.Decimal {
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); common.IsAmountToken(trimmed) {
			return common.ParseRONAmount(trimmed)
		}
	}

	head := lines
	if len(head) > 2 {
		head = head[:2]
	}
	for _, ln := range head {
		trimmed := strings.TrimSpace(ln)
		if ms := common.FindAmounts(trimmed); len(ms) > 0 && strings.HasSuffix(trimmed, ms[0].Value) {
			return common.ParseRONAmount(ms[0].Value)
		}
	}

	var last string
	for _, ln := range lines {
		for _, m := range common.FindAmounts(ln) {
			last = m.Value
		}
	}
	if last == "" {
		return nil
	}
	return common.ParseRONAmount(last)
}
