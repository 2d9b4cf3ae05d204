// Package pdfdoc is the document-layout provider. It reads a PDF once
// and exposes the two channels the parser consumes: positioned words per
// page and plain text rows for the whole document.
package pdfdoc

import (
	"bytes"
	"errors"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/radum/extrascont/extractor/layout"
)

// Page holds the positioned words of a single PDF page.
type Page struct {
	Words []layout.Word
}

// Document is an opened statement PDF.
type Document struct {
	Pages []Page
	rows  []string
}

// Open reads a whole PDF from r. The reader is drained into memory unless
// it already supports random access.
func Open(r io.Reader) (*Document, error) {
	rAt, size, err := readerAt(r)
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(rAt, size)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	numPages := reader.NumPage()
	for no := 1; no <= numPages; no++ {
		page := reader.Page(no)
		if page.V.IsNull() {
			continue
		}
		doc.Pages = append(doc.Pages, Page{Words: wordsFromContent(page.Content().Text)})
		doc.rows = append(doc.rows, rowsFromPage(page)...)
	}

	return doc, nil
}

// WordPages returns the positioned words of every page, in order.
func (d *Document) WordPages() [][]layout.Word {
	pages := make([][]layout.Word, 0, len(d.Pages))
	for _, p := range d.Pages {
		pages = append(pages, p.Words)
	}
	return pages
}

// Text returns the document's plain text, one extracted row per line.
func (d *Document) Text() string {
	return strings.Join(d.rows, "\n")
}

func readerAt(r io.Reader) (io.ReaderAt, int64, error) {
	if rAt, ok := r.(io.ReaderAt); ok {
		if seeker, ok := r.(io.Seeker); ok {
			cur, _ := seeker.Seek(0, io.SeekCurrent)
			end, err := seeker.Seek(0, io.SeekEnd)
			if err != nil {
				return nil, 0, err
			}
			if _, err := seeker.Seek(cur, io.SeekStart); err != nil {
				return nil, 0, err
			}
			return rAt, end, nil
		}
		return nil, 0, errors.New("reader is io.ReaderAt but not io.Seeker, cannot determine size")
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, 0, err
	}
	b := buf.Bytes()
	return bytes.NewReader(b), int64(len(b)), nil
}

func rowsFromPage(page pdf.Page) []string {
	rows, err := page.GetTextByRow()
	if err != nil {
		log.Printf("Warning: error getting text rows: %v", err)
		return nil
	}

	var out []string
	for _, row := range rows {
		var builder strings.Builder
		for i, text := range row.Content {
			builder.WriteString(text.S)
			if i < len(row.Content)-1 {
				builder.WriteByte(' ')
			}
		}
		if builder.Len() > 0 {
			out = append(out, builder.String())
		}
	}
	return out
}

// fragment is a non-space slice of one PDF text object, with horizontal
// extent estimated proportionally when the object spans several tokens.
type fragment struct {
	text     string
	x0, x1   float64
	top      float64
	fontSize float64
}

// wordsFromContent rebuilds whitespace-delimited words from raw PDF text
// objects. Objects arrive as arbitrary chunks (sometimes single glyphs),
// so same-baseline chunks closer than a space width are merged. PDF Y
// grows upward; Top is negated so it grows downward like line order.
func wordsFromContent(texts []pdf.Text) []layout.Word {
	var frags []fragment
	for _, t := range texts {
		frags = append(frags, explode(t)...)
	}
	if len(frags) == 0 {
		return nil
	}

	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].top != frags[j].top {
			return frags[i].top < frags[j].top
		}
		return frags[i].x0 < frags[j].x0
	})

	var words []layout.Word
	cur := frags[0]
	for _, f := range frags[1:] {
		if sameBaseline(cur, f) && f.x0-cur.x1 <= spaceWidth(cur.fontSize) {
			cur.text += f.text
			if f.x1 > cur.x1 {
				cur.x1 = f.x1
			}
			continue
		}
		words = append(words, cur.word())
		cur = f
	}
	words = append(words, cur.word())
	return words
}

func (f fragment) word() layout.Word {
	return layout.Word{Text: f.text, X0: f.x0, X1: f.x1, Top: f.top}
}

func sameBaseline(a, b fragment) bool {
	d := a.top - b.top
	return d > -0.5 && d < 0.5
}

// spaceWidth follows the usual 0.3×font-size space heuristic; gaps wider
// than a space separate words.
func spaceWidth(fontSize float64) float64 {
	if fontSize <= 0 {
		return 2.0
	}
	return fontSize * 0.3
}

// explode splits a text object on embedded spaces, spreading the object's
// width over its runes to estimate each token's extent.
func explode(t pdf.Text) []fragment {
	s := t.S
	if strings.TrimSpace(s) == "" {
		return nil
	}

	runes := []rune(s)
	perRune := t.W / float64(len(runes))
	var out []fragment
	start := -1
	for i := 0; i <= len(runes); i++ {
		atEnd := i == len(runes)
		isSpace := !atEnd && (runes[i] == ' ' || runes[i] == '\t')
		switch {
		case !atEnd && !isSpace && start < 0:
			start = i
		case (atEnd || isSpace) && start >= 0:
			out = append(out, fragment{
				text:     string(runes[start:i]),
				x0:       t.X + perRune*float64(start),
				x1:       t.X + perRune*float64(i),
				top:      -t.Y,
				fontSize: t.FontSize,
			})
			start = -1
		}
	}
	return out
}
