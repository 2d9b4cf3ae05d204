// Package layout reconstructs visual structure from positioned words: it
// groups words into lines, partitions a page into header/table/footer and
// maps amount tokens onto the Debit/Credit table columns. PDF text
// extraction preserves no table cell boundaries, so all of this is
// inferred geometrically.
package layout

import (
	"sort"
	"strings"

	"github.com/radum/extrascont/extractor/common"
)

// DefaultYTolerance is the vertical distance, in page units, within which
// words are considered part of the same visual line.
const DefaultYTolerance = 2.0

// Word is a positioned text token on a page. Top grows downward.
type Word struct {
	Text string
	X0   float64
	X1   float64
	Top  float64
}

// Center returns the horizontal midpoint of the word.
func (w Word) Center() float64 {
	return (w.X0 + w.X1) / 2.0
}

// Line is one visual row. Words is nil on the text-only path.
type Line struct {
	Text  string
	Words []Word
}

// GroupWords groups positioned words into visual lines by Y proximity.
// Words are ordered by (Top, X0); a word joins the current line when its
// top is within yTol of the line's running-average top, which updates
// incrementally. Each line's words end up sorted by X0.
func GroupWords(words []Word, yTol float64) []Line {
	if len(words) == 0 {
		return nil
	}
	if yTol <= 0 {
		yTol = DefaultYTolerance
	}

	ordered := make([]Word, len(words))
	copy(ordered, words)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Top != ordered[j].Top {
			return ordered[i].Top < ordered[j].Top
		}
		return ordered[i].X0 < ordered[j].X0
	})

	var groups [][]Word
	var tops []float64
	for _, w := range ordered {
		last := len(groups) - 1
		if last < 0 || abs(w.Top-tops[last]) > yTol {
			groups = append(groups, []Word{w})
			tops = append(tops, w.Top)
		} else {
			groups[last] = append(groups[last], w)
			tops[last] = (tops[last] + w.Top) / 2.0
		}
	}

	lines := make([]Line, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool { return g[i].X0 < g[j].X0 })
		lines = append(lines, Line{Text: lineText(g), Words: g})
	}
	return lines
}

func lineText(words []Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.Text)
	}
	return common.CleanSpaces(strings.Join(parts, " "))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
