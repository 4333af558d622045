// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/benchprep/pkg/types"
)

// corpusWithParagraphs builds a corpus of n valid paragraphs spread over
// two data entries, the way the training dump nests them.
func corpusWithParagraphs(n int) types.Corpus {
	var paras []types.Paragraph
	for i := 1; i <= n; i++ {
		paras = append(paras, types.Paragraph{
			Title:   fmt.Sprintf("Passage %d", i),
			Context: fmt.Sprintf("Body of passage %d.", i),
			QAs:     []types.QA{{Question: fmt.Sprintf("Question %d?", i)}},
		})
	}
	half := len(paras) / 2
	return types.Corpus{Data: []types.CorpusEntry{
		{Paragraphs: paras[:half]},
		{Paragraphs: paras[half:]},
	}}
}

func writeCorpus(t *testing.T, dir string, corpus types.Corpus) string {
	t.Helper()
	data, err := json.Marshal(corpus)
	require.NoError(t, err)
	path := filepath.Join(dir, "train.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func testConfig(t *testing.T, corpus types.Corpus) types.ExtractConfig {
	t.Helper()
	dir := t.TempDir()
	return types.ExtractConfig{
		CorpusPath: writeCorpus(t, dir, corpus),
		OutputDir:  filepath.Join(dir, "extracted"),
		CardPath:   filepath.Join(dir, "card.csv"),
	}
}

func readCardRows(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func extractedNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestRun_CapsAtHundredParagraphs(t *testing.T) {
	cfg := testConfig(t, corpusWithParagraphs(150))

	var log bytes.Buffer
	summary, err := Run(cfg, &log)
	require.NoError(t, err)
	assert.Equal(t, 100, summary.Accepted)

	names := extractedNames(t, cfg.OutputDir)
	require.Len(t, names, 100)
	assert.Equal(t, "001_Passage 1.txt", names[0])
	assert.Equal(t, "100_Passage 100.txt", names[99])

	rows := readCardRows(t, cfg.CardPath)
	require.Len(t, rows, 101, "header plus 100 data rows")
	assert.Equal(t, []string{"title", "question"}, rows[0])
	assert.Equal(t, []string{"Passage 1", "Question 1?"}, rows[1])
	assert.Equal(t, []string{"Passage 100", "Question 100?"}, rows[100])
}

func TestRun_SkipsParagraphsMissingTitleOrContext(t *testing.T) {
	corpus := types.Corpus{Data: []types.CorpusEntry{{Paragraphs: []types.Paragraph{
		{Title: "Kept", Context: "Some body.", QAs: []types.QA{{Question: "Q1?"}}},
		{Title: "   ", Context: "Body without title."},
		{Title: "No body", Context: "  "},
		{Title: "Also kept", Context: "Another body.", QAs: []types.QA{{Question: "Q2?"}}},
	}}}}
	cfg := testConfig(t, corpus)

	var log bytes.Buffer
	summary, err := Run(cfg, &log)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Accepted)
	assert.Equal(t, 2, summary.Skipped)

	names := extractedNames(t, cfg.OutputDir)
	assert.Equal(t, []string{"001_Kept.txt", "002_Also kept.txt"}, names)
}

func TestRun_QuestionOptional(t *testing.T) {
	corpus := types.Corpus{Data: []types.CorpusEntry{{Paragraphs: []types.Paragraph{
		{Title: "No questions", Context: "Body."},
	}}}}
	cfg := testConfig(t, corpus)

	var log bytes.Buffer
	summary, err := Run(cfg, &log)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Accepted)

	rows := readCardRows(t, cfg.CardPath)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"No questions", ""}, rows[1])
}

func TestRun_WritesTrimmedContextVerbatim(t *testing.T) {
	corpus := types.Corpus{Data: []types.CorpusEntry{{Paragraphs: []types.Paragraph{
		{Title: "T", Context: "  line one\nline two  ", QAs: []types.QA{{Question: "Q?"}}},
	}}}}
	cfg := testConfig(t, corpus)

	var log bytes.Buffer
	_, err := Run(cfg, &log)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "001_T.txt"))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", string(data))
}

func TestRun_SanitizedFilenameKeepsOriginalTitleInCard(t *testing.T) {
	corpus := types.Corpus{Data: []types.CorpusEntry{{Paragraphs: []types.Paragraph{
		{Title: "A/B:C*D", Context: "Body.", QAs: []types.QA{{Question: "Q?"}}},
	}}}}
	cfg := testConfig(t, corpus)

	var log bytes.Buffer
	_, err := Run(cfg, &log)
	require.NoError(t, err)

	names := extractedNames(t, cfg.OutputDir)
	assert.Equal(t, []string{"001_ABCD.txt"}, names)

	rows := readCardRows(t, cfg.CardPath)
	assert.Equal(t, []string{"A/B:C*D", "Q?"}, rows[1])
}

func TestRun_MissingCorpus(t *testing.T) {
	dir := t.TempDir()
	cfg := types.ExtractConfig{
		CorpusPath: filepath.Join(dir, "does-not-exist.json"),
		OutputDir:  filepath.Join(dir, "extracted"),
		CardPath:   filepath.Join(dir, "card.csv"),
	}

	var log bytes.Buffer
	_, err := Run(cfg, &log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	_, statErr := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(statErr), "no output directory should be created")
}

func TestRun_WritesManifest(t *testing.T) {
	cfg := testConfig(t, corpusWithParagraphs(3))

	var log bytes.Buffer
	summary, err := Run(cfg, &log)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Accepted)

	data, err := os.ReadFile(filepath.Join(filepath.Dir(cfg.CardPath), manifestFile))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, cfg.CorpusPath, m.Corpus)
	assert.Equal(t, 3, m.Accepted)
	assert.Equal(t, DefaultLimit, m.Limit)
	assert.False(t, m.Timestamp.IsZero())
}

func TestRun_ProgressLines(t *testing.T) {
	cfg := testConfig(t, corpusWithParagraphs(2))

	var log bytes.Buffer
	_, err := Run(cfg, &log)
	require.NoError(t, err)

	assert.Contains(t, log.String(), "extracted 1/100: Passage 1")
	assert.Contains(t, log.String(), "extracted 2/100: Passage 2")
	assert.Contains(t, log.String(), "done: 2 passages extracted, 0 skipped")
}
