package ing

import (
	"regexp"
	"strings"
	"time"

	"github.com/radum/extrascont/extractor/common"
	"github.com/radum/extrascont/extractor/layout"
	"github.com/shopspring/decimal"
)

var (
	dateLineRegex        = regexp.MustCompile(`(?i)^(\d{2})\s+([a-zăâîșşțţ]+)\s+(\d{4})\s+(.+)$`)
	trailingAmountsRegex = regexp.MustCompile(`(\s+\d{1,3}(?:\.\d{3})*,\d{2}){1,2}\s*$`)
)

// titleFromDateLine strips the trailing Debit/Credit column amounts off a
// date line's remainder.
func titleFromDateLine(rest string) string {
	return common.CleanSpaces(trailingAmountsRegex.ReplaceAllString(rest, ""))
}

// titleFromWords builds the title from a date line's positioned words by
// dropping the three date-prefix words and any amount tokens.
func titleFromWords(words []layout.Word) string {
	if len(words) <= 3 {
		return ""
	}
	var parts []string
	for _, w := range words[3:] {
		text := strings.TrimSpace(w.Text)
		if text == "" || common.IsAmountToken(text) {
			continue
		}
		parts = append(parts, text)
	}
	return common.CleanSpaces(strings.Join(parts, " "))
}

type parserState int

const (
	stateIdle parserState = iota
	stateAccumulating
)

// blockParser accumulates date-prefixed transaction blocks. The same
// machine runs both input paths; column geometry arrives through an
// optional per-page resolver.
type blockParser struct {
	state  parserState
	date   time.Time
	title  string
	lines  []string
	debit  *decimal.Decimal
	credit *decimal.Decimal
	out    []common.Transaction
}

func (p *blockParser) feed(ln layout.Line, resolve layout.Resolver) {
	text := common.CleanSpaces(ln.Text)
	if IsNoiseLine(text) || IsHeaderRow(text) {
		return
	}

	if m := dateLineRegex.FindStringSubmatch(text); m != nil {
		if date, err := common.ParseDateRO(m[1], m[2], m[3]); err == nil {
			p.flush()
			p.state = stateAccumulating
			p.date = date
			p.title = titleFromWords(ln.Words)
			if p.title == "" {
				p.title = titleFromDateLine(m[4])
			}
			p.lines = []string{text}
			p.debit, p.credit = nil, nil
			if resolve != nil {
				p.debit, p.credit = resolve(ln.Words)
			}
			return
		}
		// Date-shaped line with an unknown month name: not a
		// transaction start, handled as a detail line below.
	}

	if p.state != stateAccumulating {
		return
	}
	p.lines = append(p.lines, text)
	if resolve != nil {
		d, c := resolve(ln.Words)
		if nonZero(d) {
			p.debit = d
		}
		if nonZero(c) {
			p.credit = c
		}
	}
}

// flush converts the open block into a Transaction and resets the
// machine. Direction/amount priority: a single column value wins; with
// both, the larger magnitude wins and ties favor credit; with neither,
// text heuristics decide.
func (p *blockParser) flush() {
	if p.state != stateAccumulating {
		return
	}

	merchant, method := ExtractParty(p.title, p.lines)

	var amount *decimal.Decimal
	var direction string
	debitVal := zeroToNil(p.debit)
	creditVal := zeroToNil(p.credit)

	switch {
	case debitVal != nil && creditVal == nil:
		direction = common.DirectionDebit
		amount = negAbs(debitVal)
	case creditVal != nil && debitVal == nil:
		direction = common.DirectionCredit
		amount = posAbs(creditVal)
	case debitVal != nil && creditVal != nil:
		if creditVal.Abs().GreaterThanOrEqual(debitVal.Abs()) {
			direction = common.DirectionCredit
			amount = posAbs(creditVal)
		} else {
			direction = common.DirectionDebit
			amount = negAbs(debitVal)
		}
	default:
		direction = InferDirection(method, p.lines)
		if extracted := ExtractAmountText(p.lines); extracted != nil {
			if direction == common.DirectionDebit {
				amount = negAbs(extracted)
			} else {
				amount = posAbs(extracted)
			}
		}
	}

	p.out = append(p.out, common.Transaction{
		Date:      p.date.Format("2006-01-02"),
		Title:     p.title,
		Merchant:  merchant,
		Method:    method,
		Amount:    amount,
		Currency:  "RON",
		Direction: direction,
		RawLines:  p.lines,
	})

	p.state = stateIdle
	p.title = ""
	p.lines = nil
	p.debit, p.credit = nil, nil
}

// ParsePages parses a statement from positioned words, page by page.
// Column centers are computed once per page; pages without recognizable
// Debit/Credit headers degrade to the text heuristics.
func ParsePages(pages [][]layout.Word, yTol float64) []common.Transaction {
	p := &blockParser{}
	for _, words := range pages {
		if len(words) == 0 {
			continue
		}
		resolver := layout.ColumnResolver(words)
		lines := layout.GroupWords(words, yTol)
		sections := layout.SplitSections(lines, IsHeaderRow, IsFooterMarker)
		active := sections.Table
		if len(active) == 0 {
			active = lines
		}
		for _, ln := range active {
			p.feed(ln, resolver)
		}
	}
	p.flush()
	return p.out
}

// ParseText parses a statement from plain extracted text, the fallback
// when no positioned words are available.
func ParseText(text string) []common.Transaction {
	p := &blockParser{}
	for _, raw := range strings.Split(text, "\n") {
		ln := strings.TrimSpace(raw)
		if ln == "" {
			continue
		}
		p.feed(layout.Line{Text: ln}, nil)
	}
	p.flush()
	return p.out
}

func nonZero(d *decimal.Decimal) bool {
	return d != nil && !d.IsZero()
}

func zeroToNil(d *decimal.Decimal) *decimal.Decimal {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

func negAbs(d *decimal.Decimal) *decimal.Decimal {
	v := d.Abs().Neg()
	return &v
}

func posAbs(d *decimal.Decimal) *decimal.Decimal {
	v := d.Abs()
	return &v
}
