// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/benchprep/internal/keyword"
	"github.com/pdiddy/benchprep/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Generate the keyword index from a card CSV",
	Long: `Index reads a card CSV with title and question columns and writes the
keyword index JSON: each question maps to the titles that share it, in
first-seen order. Rows missing a title or question are dropped.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := types.KeywordIndexConfig{
		CardPath:  setting(cmd, "cards", "keyword_index.card_path"),
		IndexPath: setting(cmd, "output", "keyword_index.index_path"),
	}

	_, err := keyword.Generate(cfg, os.Stdout)
	return err
}

func init() {
	indexCmd.Flags().String("cards", defaultCardPath, "card CSV file to read")
	indexCmd.Flags().String("output", "keyword_index.json", "keyword index JSON file to write")

	rootCmd.AddCommand(indexCmd)
}
