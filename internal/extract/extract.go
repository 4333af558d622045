// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls passages out of a nested corpus document. Each
// accepted paragraph becomes one text file named after its sanitized
// title, and the (title, question) pairs become the card CSV fixture.
package extract

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/benchprep/pkg/types"
)

const (
	// DefaultLimit is the hard cap on accepted paragraphs per run.
	DefaultLimit = 100

	// maxTitleRunes bounds the sanitized title used in filenames.
	maxTitleRunes = 200

	// progressRunes bounds the title preview in progress lines.
	progressRunes = 50
)

// Summary holds the outcome of an extraction run.
type Summary struct {
	// Accepted is the number of paragraphs extracted.
	Accepted int

	// Skipped is the number of paragraphs dropped for missing title or context.
	Skipped int
}

// Run reads the corpus document at cfg.CorpusPath, writes one passage
// file per accepted paragraph into cfg.OutputDir, and records the
// (title, question) pairs to cfg.CardPath in acceptance order. It stops
// accepting after DefaultLimit paragraphs. Paragraphs missing a title or
// context after trimming are skipped silently.
//
// On success a manifest.yaml describing the run is written next to the
// card file.
func Run(cfg types.ExtractConfig, w io.Writer) (Summary, error) {
	if _, err := os.Stat(cfg.CorpusPath); err != nil {
		if os.IsNotExist(err) {
			return Summary{}, fmt.Errorf("corpus does not exist: %s", cfg.CorpusPath)
		}
		return Summary{}, fmt.Errorf("checking corpus: %w", err)
	}

	data, err := os.ReadFile(cfg.CorpusPath)
	if err != nil {
		return Summary{}, fmt.Errorf("reading corpus %s: %w", cfg.CorpusPath, err)
	}

	var corpus types.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return Summary{}, fmt.Errorf("parsing corpus %s: %w", cfg.CorpusPath, err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	var (
		summary Summary
		cards   []types.Card
	)

	for _, entry := range corpus.Data {
		if summary.Accepted >= DefaultLimit {
			break
		}
		for _, para := range entry.Paragraphs {
			if summary.Accepted >= DefaultLimit {
				break
			}

			title := strings.TrimSpace(para.Title)
			context := strings.TrimSpace(para.Context)
			if title == "" || context == "" {
				summary.Skipped++
				continue
			}

			question := ""
			if len(para.QAs) > 0 {
				question = strings.TrimSpace(para.QAs[0].Question)
			}

			seq := summary.Accepted + 1
			name := fmt.Sprintf("%03d_%s.txt", seq, SanitizeFilename(title))
			path := filepath.Join(cfg.OutputDir, name)
			if err := os.WriteFile(path, []byte(context), 0o644); err != nil {
				return summary, fmt.Errorf("writing passage %s: %w", path, err)
			}

			cards = append(cards, types.Card{Title: title, Question: question})
			summary.Accepted = seq

			fmt.Fprintf(w, "extracted %d/%d: %s\n", seq, DefaultLimit, truncateRunes(title, progressRunes))
		}
	}

	if err := writeCards(cfg.CardPath, cards); err != nil {
		return summary, err
	}

	manifestPath := filepath.Join(filepath.Dir(cfg.CardPath), manifestFile)
	if err := writeManifest(manifestPath, cfg, summary); err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\ndone: %d passages extracted, %d skipped\n", summary.Accepted, summary.Skipped)
	fmt.Fprintf(w, "passage files: %s\n", cfg.OutputDir)
	fmt.Fprintf(w, "card file: %s\n", cfg.CardPath)

	return summary, nil
}

// writeCards writes the accepted (title, question) pairs as a CSV with a
// title,question header, one row per paragraph in acceptance order.
func writeCards(path string, cards []types.Card) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating card file %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"title", "question"}); err != nil {
		return fmt.Errorf("writing card header: %w", err)
	}
	for _, c := range cards {
		if err := cw.Write([]string{c.Title, c.Question}); err != nil {
			return fmt.Errorf("writing card row for %q: %w", c.Title, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing card file %s: %w", path, err)
	}
	return nil
}

// truncateRunes shortens s to at most n runes, appending an ellipsis
// when anything was cut. Rune-based so CJK titles truncate cleanly.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
