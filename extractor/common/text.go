package common

import (
	"regexp"
	"strings"
)

var spaceRegex = regexp.MustCompile(`\s+`)

// CleanSpaces collapses runs of whitespace into single spaces and trims.
func CleanSpaces(s string) string {
	return strings.TrimSpace(spaceRegex.ReplaceAllString(s, " "))
}

var diacriticReplacer = strings.NewReplacer(
	"ă", "a",
	"â", "a",
	"î", "i",
	"ș", "s",
	"ş", "s",
	"ț", "t",
	"ţ", "t",
)

// NormalizeRO lower-cases and folds Romanian diacritics so prefix and
// marker matching works across statement encodings.
func NormalizeRO(s string) string {
	return diacriticReplacer.Replace(strings.ToLower(s))
}

// ValueAfterColon returns the cleaned text after the first colon, or "".
func ValueAfterColon(s string) string {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return ""
	}
	return CleanSpaces(s[idx+1:])
}

var nonAlphanumericRegex = regexp.MustCompile(`[^A-Z0-9]`)

// NormalizeIBANLike strips everything but letters and digits and
// upper-cases, so account identifiers compare regardless of spacing.
func NormalizeIBANLike(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(strings.ToUpper(s), "")
}
