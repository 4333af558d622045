// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/benchprep/internal/card"
	"github.com/pdiddy/benchprep/pkg/types"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Generate the card CSV from a keyword index",
	Long: `Card reads a keyword index JSON file and writes the card CSV fixture:
one row per keyword in sorted order, with the keyword in both the keyword
and question columns. In this dataset variant every question is its own
keyword.`,
	RunE: runCard,
}

func runCard(cmd *cobra.Command, args []string) error {
	cfg := types.CardConfig{
		IndexPath: setting(cmd, "index", "card.index_path"),
		CardPath:  setting(cmd, "output", "card.card_path"),
	}

	_, err := card.Generate(cfg, os.Stdout)
	return err
}

func init() {
	cardCmd.Flags().String("index", defaultIndexPath, "keyword index JSON file to read")
	cardCmd.Flags().String("output", defaultCardPath, "card CSV file to write")

	rootCmd.AddCommand(cardCmd)
}
