package ing

import (
	"regexp"
	"strings"

	"github.com/radum/extrascont/extractor/common"
)

var noisePrefixes = []string{
	"titular cont:",
	"numar cont:",
	"tip cont:",
	"moneda:",
	"extras de cont",
	"pentru perioada:",
	"cif:",
}

var noisePhrases = []string{
	"informatii despre schema",
	"acest document",
	"sef serviciu",
	"ing bank n.v.",
	"sucursala bucuresti",
	"www.ing.ro/dgs",
	"in locatiile bancii",
}

var footerScheduleRegex = regexp.MustCompile(`^\d{1,2}/\d{2}\s+informatii despre schema`)

// IsNoiseLine filters headers, footers and legal/signature lines that are
// not transaction details.
func IsNoiseLine(text string) bool {
	cleaned := common.CleanSpaces(text)
	if cleaned == "" {
		return true
	}
	low := common.NormalizeRO(cleaned)

	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(low, prefix) {
			return true
		}
	}
	for _, phrase := range noisePhrases {
		if strings.Contains(low, phrase) {
			return true
		}
	}

	return pageFractionRegex.MatchString(low) ||
		pageLabelRegex.MatchString(low) ||
		footerScheduleRegex.MatchString(low)
}
