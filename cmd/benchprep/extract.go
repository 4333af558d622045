// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/benchprep/internal/extract"
	"github.com/pdiddy/benchprep/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract passages and cards from the training corpus",
	Long: `Extract reads the nested corpus JSON document, writes each accepted
paragraph's context to its own text file named after the sanitized title,
and records the (title, question) pairs to the card CSV. At most 100
paragraphs are accepted per run; paragraphs missing a title or context
are skipped.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := types.ExtractConfig{
		CorpusPath: setting(cmd, "corpus", "extract.corpus_path"),
		OutputDir:  setting(cmd, "output-dir", "extract.output_dir"),
		CardPath:   setting(cmd, "cards", "extract.card_path"),
	}

	_, err := extract.Run(cfg, os.Stdout)
	return err
}

func init() {
	extractCmd.Flags().String("corpus", defaultCorpusPath, "corpus JSON document to read")
	extractCmd.Flags().String("output-dir", defaultExtractedDir, "directory for extracted passage files")
	extractCmd.Flags().String("cards", defaultCardPath, "card CSV file to write")

	rootCmd.AddCommand(extractCmd)
}
