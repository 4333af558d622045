// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package card generates the card CSV fixture from a keyword index.
// In the English dataset variant every benchmark question is its own
// keyword, so both CSV columns carry the keyword string.
package card

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pdiddy/benchprep/pkg/types"
)

// previewEntries is the number of index entries echoed after generation.
const previewEntries = 5

// Generate reads the keyword index JSON at cfg.IndexPath and writes the
// card CSV to cfg.CardPath: a header row followed by one row per keyword
// in lexicographic order, with the keyword in both columns. It returns
// the number of card rows written.
//
// A missing or malformed index aborts before any output is created.
func Generate(cfg types.CardConfig, w io.Writer) (int, error) {
	if _, err := os.Stat(cfg.IndexPath); err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("keyword index does not exist: %s", cfg.IndexPath)
		}
		return 0, fmt.Errorf("checking keyword index: %w", err)
	}

	data, err := os.ReadFile(cfg.IndexPath)
	if err != nil {
		return 0, fmt.Errorf("reading keyword index %s: %w", cfg.IndexPath, err)
	}

	var index map[string][]string
	if err := json.Unmarshal(data, &index); err != nil {
		return 0, fmt.Errorf("parsing keyword index %s: %w", cfg.IndexPath, err)
	}

	fmt.Fprintf(w, "read %d keywords from %s\n", len(index), cfg.IndexPath)

	keywords := make([]string, 0, len(index))
	for k := range index {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	out, err := os.Create(cfg.CardPath)
	if err != nil {
		return 0, fmt.Errorf("creating card file %s: %w", cfg.CardPath, err)
	}
	defer out.Close()

	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"keyword", "question"}); err != nil {
		return 0, fmt.Errorf("writing card header: %w", err)
	}
	for _, kw := range keywords {
		if err := cw.Write([]string{kw, kw}); err != nil {
			return 0, fmt.Errorf("writing card row for %q: %w", kw, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing card file: %w", err)
	}

	fmt.Fprintf(w, "wrote %d test cases to %s\n", len(keywords), cfg.CardPath)
	printPreview(w, keywords, index)

	return len(keywords), nil
}

// printPreview echoes the first few keyword-to-identifier mappings in
// sorted order so a run can be eyeballed without opening the output.
func printPreview(w io.Writer, keywords []string, index map[string][]string) {
	if len(keywords) == 0 {
		return
	}
	fmt.Fprintln(w, "sample:")
	for i, kw := range keywords {
		if i >= previewEntries {
			break
		}
		fmt.Fprintf(w, "  %q -> %v\n", kw, index[kw])
	}
}
