// Package ing parses ING Romania current-account statements. Two input
// channels share one block state machine: positioned PDF words (column
// geometry drives debit/credit) and plain extracted text (heuristics
// drive everything).
package ing

import (
	"regexp"
	"strings"

	"github.com/radum/extrascont/extractor/common"
	"github.com/radum/extrascont/extractor/layout"
)

var (
	pageFractionRegex = regexp.MustCompile(`^\d{1,3}\s*/\s*\d{1,3}$`)
	pageLabelRegex    = regexp.MustCompile(`^pagina\s+\d{1,3}(\s+din\s+\d{1,3})?$`)
)

// IsHeaderRow reports whether a line is the transaction table header
// (Data | Detalii tranzactie | Debit | Credit).
func IsHeaderRow(text string) bool {
	low := common.NormalizeRO(text)
	return strings.Contains(low, "data") &&
		strings.Contains(low, "detalii tranzactie") &&
		strings.Contains(low, "debit") &&
		strings.Contains(low, "credit")
}

var footerMarkers = []string{
	"www.ing.ro/dgs",
	"informatii despre schema",
	"ing bank n.v.",
	"sucursala bucuresti",
	"in locatiile bancii",
}

// IsFooterMarker reports whether a line starts the page footer region
// (site URL, legal boilerplate, bank/branch phrases, page numbers).
func IsFooterMarker(text string) bool {
	low := common.NormalizeRO(text)
	for _, marker := range footerMarkers {
		if strings.Contains(low, marker) {
			return true
		}
	}
	return pageFractionRegex.MatchString(low) || pageLabelRegex.MatchString(low)
}

// LooksLikeStatement reports whether any page carries the known table
// header row. Used by upstream handlers to reject non-statement uploads
// before parsing.
func LooksLikeStatement(pages [][]layout.Word, yTol float64) bool {
	for _, words := range pages {
		if len(words) == 0 {
			continue
		}
		lines := layout.GroupWords(words, yTol)
		sections := layout.SplitSections(lines, IsHeaderRow, IsFooterMarker)
		if len(sections.Header) > 0 {
			return true
		}
	}
	return false
}

// LooksLikeStatementText is the text-channel variant of the statement
// signature: either the table header phrase, or a statement marker phrase
// together with the period label.
func LooksLikeStatementText(text string) bool {
	low := common.NormalizeRO(text)
	hasTableHeader := strings.Contains(low, "detalii tranzactie") &&
		strings.Contains(low, "debit") &&
		strings.Contains(low, "credit")
	hasStatementMarker := strings.Contains(low, "extras de cont") ||
		strings.Contains(low, "titular cont:") ||
		strings.Contains(low, "numar cont:")
	return hasTableHeader || (hasStatementMarker && strings.Contains(low, "pentru perioada:"))
}
