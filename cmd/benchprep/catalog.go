// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/benchprep/internal/catalog"
	"github.com/pdiddy/benchprep/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the fixture catalog (store, query)",
	Long: `Catalog maintains a local SQLite index over extracted passage files so
a fixture set can be searched by keyword. Use subcommands to index
passages or query them.`,
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Index extracted passages into the fixture catalog",
	Long: `Store reads passage files from the extracted directory, pairs them with
their cards, and ingests them into a SQLite database with FTS5 indexing.
Unchanged passages are skipped on subsequent runs.`,
	RunE: runCatalogStore,
}

func runCatalogStore(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d passage(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query [terms...]",
	Short: "Search the fixture catalog with full-text search",
	Long: `Query searches passage titles and contents with FTS5 full-text search.
Results are ranked by relevance and include a content snippet and the
passage file path.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	maxResults, _ := cmd.Flags().GetInt("max-results")

	results, err := store.Query(context.Background(), strings.Join(args, " "), maxResults)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []catalog.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %s\n", "Seq", "Title", "Snippet")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range results {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%03d   %-40s  %s\n", r.Seq, title, r.Snippet)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.CatalogConfig{
		ExtractedDir: setting(cmd, "extracted-dir", "catalog.extracted_dir"),
		CardPath:     setting(cmd, "cards", "catalog.card_path"),
		DBPath:       setting(cmd, "db", "catalog.db_path"),
		MaxResults:   maxResults,
	}
}

func init() {
	for _, c := range []*cobra.Command{catalogStoreCmd, catalogQueryCmd} {
		c.Flags().String("extracted-dir", defaultExtractedDir, "directory of extracted passage files")
		c.Flags().String("cards", defaultCardPath, "card CSV file pairing titles with questions")
		c.Flags().String("db", defaultCatalogDB, "catalog SQLite database file")
		c.Flags().Int("max-results", 20, "maximum number of query results")
	}
	catalogQueryCmd.Flags().Bool("json", false, "output results as JSON")

	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogQueryCmd)
	rootCmd.AddCommand(catalogCmd)
}
