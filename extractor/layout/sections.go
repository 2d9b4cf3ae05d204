package layout

// Sections is a partition of a page's lines. Header ends at the detected
// column-header row (inclusive); Footer begins at the first footer marker
// after it; Table is everything between.
type Sections struct {
	Header []Line
	Table  []Line
	Footer []Line
}

// SplitSections partitions lines using the supplied predicates over line
// text. When no header row is found the whole page is treated as table
// content so unknown layouts still get scanned.
func SplitSections(lines []Line, isHeaderRow, isFooterMarker func(text string) bool) Sections {
	if len(lines) == 0 {
		return Sections{}
	}

	headerIdx := -1
	for i, ln := range lines {
		if isHeaderRow(ln.Text) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return Sections{Table: lines}
	}

	footerIdx := len(lines)
	for i := headerIdx + 1; i < len(lines); i++ {
		if isFooterMarker(lines[i].Text) {
			footerIdx = i
			break
		}
	}

	return Sections{
		Header: lines[:headerIdx+1],
		Table:  lines[headerIdx+1 : footerIdx],
		Footer: lines[footerIdx:],
	}
}
