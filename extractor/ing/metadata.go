package ing

import (
	"regexp"
	"strings"

	"github.com/radum/extrascont/extractor/common"
	"github.com/radum/extrascont/extractor/layout"
)

// Labels that bound each other's values on a statement header line.
var labelBoundaryRegex = regexp.MustCompile(`(?i)(titular cont|numar cont|tip cont|moneda|pentru perioada|cif)\s*:`)

var detailLabelRegexes = map[string]*regexp.Regexp{
	"holder": regexp.MustCompile(`(?i)titular cont\s*:`),
	"number": regexp.MustCompile(`(?i)numar cont\s*:`),
	"type":   regexp.MustCompile(`(?i)tip cont\s*:`),
	"period": regexp.MustCompile(`(?i)pentru perioada\s*:`),
}

// labeledValue captures the text after "<label>:" up to the next known
// label or end of line.
func labeledValue(line string, label *regexp.Regexp) string {
	loc := label.FindStringIndex(line)
	if loc == nil {
		return ""
	}
	value := line[loc[1]:]
	if next := labelBoundaryRegex.FindStringIndex(value); next != nil {
		value = value[:next[0]]
	}
	return common.CleanSpaces(value)
}

// ExtractDetailsFromLines pulls the labeled statement fields out of
// header lines. First non-empty value per field wins; the period is
// normalized to the canonical slash form.
func ExtractDetailsFromLines(lines []string) common.StatementDetails {
	var details common.StatementDetails
	for _, raw := range lines {
		line := common.CleanSpaces(raw)
		if line == "" {
			continue
		}
		if details.AccountHolder == "" {
			details.AccountHolder = labeledValue(line, detailLabelRegexes["holder"])
		}
		if details.AccountNumber == "" {
			details.AccountNumber = labeledValue(line, detailLabelRegexes["number"])
		}
		if details.AccountType == "" {
			details.AccountType = labeledValue(line, detailLabelRegexes["type"])
		}
		if details.StatementPeriod == "" {
			if period := labeledValue(line, detailLabelRegexes["period"]); period != "" {
				details.StatementPeriod = common.NormalizeStatementPeriod(period)
			}
		}
	}
	return details
}

// ExtractDetails scans page headers (or the first 40 lines when no header
// section is detected) for the statement metadata, stopping once every
// field is filled.
func ExtractDetails(pages [][]layout.Word, yTol float64) common.StatementDetails {
	var details common.StatementDetails
	for _, words := range pages {
		if len(words) == 0 {
			continue
		}
		lines := layout.GroupWords(words, yTol)
		sections := layout.SplitSections(lines, IsHeaderRow, IsFooterMarker)
		source := sections.Header
		if len(source) == 0 {
			source = lines
			if len(source) > 40 {
				source = source[:40]
			}
		}

		texts := make([]string, 0, len(source))
		for _, ln := range source {
			texts = append(texts, ln.Text)
		}
		merge(&details, ExtractDetailsFromLines(texts))
		if details.Complete() {
			break
		}
	}
	return details
}

// ExtractDetailsText extracts the statement metadata from plain text.
func ExtractDetailsText(text string) common.StatementDetails {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if cleaned := common.CleanSpaces(raw); cleaned != "" {
			lines = append(lines, cleaned)
		}
	}
	return ExtractDetailsFromLines(lines)
}

func merge(dst *common.StatementDetails, src common.StatementDetails) {
	if dst.AccountHolder == "" {
		dst.AccountHolder = src.AccountHolder
	}
	if dst.AccountNumber == "" {
		dst.AccountNumber = src.AccountNumber
	}
	if dst.AccountType == "" {
		dst.AccountType = src.AccountType
	}
	if dst.StatementPeriod == "" {
		dst.StatementPeriod = src.StatementPeriod
	}
}
