package categorize

import (
	"regexp"
	"strings"

	"github.com/radum/extrascont/extractor/common"
)

// Account-relative flow values: money entering or leaving a tracked
// account, as opposed to the transaction's own debit/credit direction.
const (
	flowIn  = "in"
	flowOut = "out"
)

var (
	fromAccountRegex = regexp.MustCompile(`(^|\s)din contul(\s|:|$)`)
	intoAccountRegex = regexp.MustCompile(`(^|\s)in contul(\s|:|$)`)
)

var (
	inMarkers  = []string{"beneficiar", "destinatar", "catre", "cont beneficiar", "iban beneficiar"}
	outMarkers = []string{"ordonator", "platitor", "cont ordonator", "iban ordonator", "din cont"}
)

// MentionsAccount reports whether the transaction's text references the
// account identifier, compared IBAN-like (alphanumerics only, case
// folded).
func MentionsAccount(tx common.Transaction, accountID string) bool {
	target := common.NormalizeIBANLike(accountID)
	if target == "" {
		return false
	}
	pieces := []string{tx.Title, tx.Merchant}
	pieces = append(pieces, tx.RawLines...)
	return strings.Contains(common.NormalizeIBANLike(strings.Join(pieces, " ")), target)
}

// AccountFlow decides which way money moved relative to the tracked
// account. Explicit "din contul"/"in contul" markers near the account
// mention win; then a transfer party equal to the account reverses the
// method; then recipient-vs-payer markers are scored within one line of
// the mention and must strictly favor one side. Returns "" when no
// decision can be made.
func AccountFlow(tx common.Transaction, accountID string) string {
	target := common.NormalizeIBANLike(accountID)

	lines := tx.RawLines
	linesNorm := make([]string, len(lines))
	linesIBAN := make([]string, len(lines))
	for i, ln := range lines {
		linesNorm[i] = common.NormalizeRO(ln)
		linesIBAN[i] = common.NormalizeIBANLike(ln)
	}

	hasTarget := func(idx int) bool {
		if idx < 0 || idx >= len(linesIBAN) {
			return false
		}
		return strings.Contains(linesIBAN[idx], target)
	}
	hasTargetNear := func(idx int) bool {
		return hasTarget(idx) || hasTarget(idx+1) || hasTarget(idx-1)
	}

	// Explicit account-flow markers are the highest priority. "din
	// contul" is checked first; "in contul" would match it as a
	// substring.
	for i, lnorm := range linesNorm {
		if !hasTargetNear(i) {
			continue
		}
		if fromAccountRegex.MatchString(lnorm) {
			return flowOut
		}
		if intoAccountRegex.MatchString(lnorm) {
			return flowIn
		}
	}

	// A transfer whose extracted party IS the tracked account: the flow
	// is the reverse of the primary account's method.
	if common.NormalizeIBANLike(tx.Merchant) == target {
		switch tx.Method {
		case common.MethodTransferOut:
			return flowIn
		case common.MethodTransferIn:
			return flowOut
		}
	}

	inScore, outScore := 0, 0
	for i, lnorm := range linesNorm {
		if hasTarget(i) {
			if containsAny(lnorm, inMarkers) {
				inScore += 2
			}
			if containsAny(lnorm, outMarkers) {
				outScore += 2
			}
		}
		// Key and value can land on neighboring lines.
		if containsAny(lnorm, inMarkers) && hasTargetNear(i) {
			inScore++
		}
		if containsAny(lnorm, outMarkers) && hasTargetNear(i) {
			outScore++
		}
	}

	if inScore > outScore && inScore > 0 {
		return flowIn
	}
	if outScore > inScore && outScore > 0 {
		return flowOut
	}
	return ""
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
