// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keyword builds the keyword index JSON from a card CSV. In the
// Chinese dataset variant the question text is the keyword: titles of
// passages sharing a question are grouped under that question.
package keyword

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/benchprep/pkg/types"
)

// previewEntries is the number of index entries echoed after generation.
const previewEntries = 5

// Index maps each question to the titles associated with it, preserving
// the first-seen order of titles per question.
type Index struct {
	titles map[string][]string
}

// NewIndex returns an empty keyword index.
func NewIndex() *Index {
	return &Index{titles: make(map[string][]string)}
}

// Add appends title to the list keyed by question, creating the list on
// first sight of the question.
func (x *Index) Add(question, title string) {
	x.titles[question] = append(x.titles[question], title)
}

// Len returns the number of distinct questions in the index.
func (x *Index) Len() int {
	return len(x.titles)
}

// Titles returns the titles recorded for question, in insertion order.
func (x *Index) Titles(question string) []string {
	return x.titles[question]
}

// Questions returns all questions in lexicographic order.
func (x *Index) Questions() []string {
	qs := make([]string, 0, len(x.titles))
	for q := range x.titles {
		qs = append(qs, q)
	}
	sort.Strings(qs)
	return qs
}

// Generate reads the card CSV at cfg.CardPath and writes the keyword
// index JSON to cfg.IndexPath. Rows whose title or question is empty
// after trimming are dropped. The output is indented two spaces and
// keeps non-ASCII characters literal. It returns the built index.
//
// A missing card file aborts before any output is created.
func Generate(cfg types.KeywordIndexConfig, w io.Writer) (*Index, error) {
	if _, err := os.Stat(cfg.CardPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("card file does not exist: %s", cfg.CardPath)
		}
		return nil, fmt.Errorf("checking card file: %w", err)
	}

	cards, err := ReadCards(cfg.CardPath)
	if err != nil {
		return nil, err
	}

	index := NewIndex()
	for _, c := range cards {
		title := strings.TrimSpace(c.Title)
		question := strings.TrimSpace(c.Question)
		if title == "" || question == "" {
			continue
		}
		index.Add(question, title)
	}

	if err := writeIndex(cfg.IndexPath, index); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "wrote %d keywords to %s\n", index.Len(), cfg.IndexPath)
	printPreview(w, index)

	return index, nil
}

// ReadCards parses a card CSV with header-driven column lookup, so the
// title and question columns may appear in any order.
func ReadCards(path string) ([]types.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening card file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing card file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	titleCol, questionCol := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case "title":
			titleCol = i
		case "question":
			questionCol = i
		}
	}
	if titleCol < 0 || questionCol < 0 {
		return nil, fmt.Errorf("card file %s: header must contain title and question columns", path)
	}

	var cards []types.Card
	for _, row := range rows[1:] {
		var c types.Card
		if titleCol < len(row) {
			c.Title = row[titleCol]
		}
		if questionCol < len(row) {
			c.Question = row[questionCol]
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// writeIndex marshals the index with two-space indentation and HTML
// escaping off, so CJK text and punctuation survive round-trips literally.
func writeIndex(path string, index *Index) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating index file %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index.titles); err != nil {
		return fmt.Errorf("writing index file %s: %w", path, err)
	}
	return nil
}

func printPreview(w io.Writer, index *Index) {
	qs := index.Questions()
	if len(qs) == 0 {
		return
	}
	fmt.Fprintln(w, "sample:")
	for i, q := range qs {
		if i >= previewEntries {
			break
		}
		fmt.Fprintf(w, "  %q -> %v\n", q, index.Titles(q))
	}
}
