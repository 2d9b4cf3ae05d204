// Package extractor wires the statement pipeline together: document
// layout in, detection, geometry parse with text fallback, metadata, and
// categorization config.
package extractor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/radum/extrascont/categorize"
	"github.com/radum/extrascont/extractor/common"
	"github.com/radum/extrascont/extractor/ing"
	"github.com/radum/extrascont/extractor/layout"
	"github.com/radum/extrascont/extractor/pdfdoc"
	"github.com/spf13/viper"
)

// ErrNotAStatement reports that neither the geometry nor the text path
// recognized the input as a bank statement with transactions. Callers
// surface it as a user-facing rejection, not a crash.
var ErrNotAStatement = errors.New("not a recognized bank statement")

// Result is the parsed output for one document.
type Result struct {
	Source       string                  `json:"source"`
	Statement    common.StatementDetails `json:"statement"`
	Transactions []common.Transaction    `json:"transactions"`
}

// YTolerance returns the configured line-grouping tolerance.
func YTolerance() float64 {
	if v := viper.GetFloat64("parser.y_tolerance"); v > 0 {
		return v
	}
	return layout.DefaultYTolerance
}

// Process parses a statement PDF from r. The geometry-aware path runs
// first; when it yields nothing the plain-text fallback runs over the
// same document.
func Process(r io.Reader, source string) (*Result, error) {
	doc, err := pdfdoc.Open(r)
	if err != nil {
		return nil, err
	}

	yTol := YTolerance()
	pages := doc.WordPages()
	text := doc.Text()

	if !ing.LooksLikeStatement(pages, yTol) && !ing.LooksLikeStatementText(text) {
		return nil, ErrNotAStatement
	}

	txs := ing.ParsePages(pages, yTol)
	if len(txs) == 0 {
		log.Printf("\t📄 geometry path found no transactions in %s, using text fallback", source)
		txs = ing.ParseText(text)
	}
	if len(txs) == 0 {
		return nil, ErrNotAStatement
	}

	details := ing.ExtractDetails(pages, yTol)
	if details == (common.StatementDetails{}) {
		details = ing.ExtractDetailsText(text)
	}

	return &Result{Source: source, Statement: details, Transactions: txs}, nil
}

// ProcessText runs the same pipeline over already-extracted text (OCR
// output or a caller-supplied dump).
func ProcessText(text, source string) (*Result, error) {
	if !ing.LooksLikeStatementText(text) {
		return nil, ErrNotAStatement
	}
	txs := ing.ParseText(text)
	if len(txs) == 0 {
		return nil, ErrNotAStatement
	}
	return &Result{
		Source:       source,
		Statement:    ing.ExtractDetailsText(text),
		Transactions: txs,
	}, nil
}

// CategorizeFromConfig applies the categorization engine with the
// collaborator inputs carried in the configuration.
func CategorizeFromConfig(txs []common.Transaction) []common.Transaction {
	return categorize.Apply(
		txs,
		viper.GetStringMapString("categorization.merchant_overrides"),
		viper.GetStringSlice("categorization.savings_accounts"),
	)
}

// ExecuteAgainstPath extracts a single statement or every PDF in a
// directory and prints the categorized results as JSON.
func ExecuteAgainstPath(path string) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		log.Println("📂 Scanning", path)
		entries, err := os.ReadDir(path)
		if err != nil {
			log.Fatal(err)
		}

		results := []Result{}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				continue
			}
			result := processFile(filepath.Join(path, e.Name()))
			if result != nil {
				results = append(results, *result)
			}
		}

		asJSON, _ := json.Marshal(results)
		fmt.Println(string(asJSON))
		return
	}

	log.Println("📄 Scanning", path)
	result := processFile(path)
	if result == nil {
		fmt.Println("{}")
		return
	}
	asJSON, _ := json.Marshal(result)
	fmt.Println(string(asJSON))
}

func processFile(path string) *Result {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("\t❌ %s: %v", path, err)
		return nil
	}
	defer file.Close()

	source := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	result, err := Process(file, source)
	if err != nil {
		log.Printf("\t❌ %s: %v", path, err)
		return nil
	}

	result.Transactions = CategorizeFromConfig(result.Transactions)
	log.Printf("\t✔️ extracted %d transactions from %s", len(result.Transactions), path)
	return result
}
