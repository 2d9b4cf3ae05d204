package common

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Statement amounts use Romanian formatting: "." groups thousands and ","
// starts the two decimal digits, e.g. "9.465,00" or "117,00".
var (
	amountRegex      = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*,\d{2}|\d+,\d{2}`)
	amountTokenRegex = regexp.MustCompile(`^(\d{1,3}(?:\.\d{3})*,\d{2}|\d+,\d{2})$`)
)

// IsAmountToken reports whether s is exactly one RON amount token.
func IsAmountToken(s string) bool {
	return amountTokenRegex.MatchString(s)
}

// ParseRONAmount converts a RON-formatted amount into a decimal. Returns
// nil on anything that does not parse; malformed tokens never raise.
func ParseRONAmount(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// AmountMatch is one amount occurrence inside a line.
type AmountMatch struct {
	Value string
	Start int
	End   int
}

// FindAmounts returns all amount tokens in s that are not embedded in a
// longer digit run. Digit boundaries are checked by hand since RE2 has no
// lookarounds.
func FindAmounts(s string) []AmountMatch {
	var out []AmountMatch
	for _, loc := range amountRegex.FindAllStringIndex(s, -1) {
		if loc[0] > 0 && isDigit(s[loc[0]-1]) {
			continue
		}
		if loc[1] < len(s) && isDigit(s[loc[1]]) {
			continue
		}
		out = append(out, AmountMatch{Value: s[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}
	return out
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
