// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the benchprep CLI, the offline
// fixture-preparation tool for the question-answering benchmark. Each
// batch transform is a subcommand: card, index, extract, and catalog.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// Default paths shared by the stage commands. These match the dataset
// layout the benchmark harness expects.
const (
	defaultIndexPath    = "processed/keyword_index.json"
	defaultCardPath     = "card.csv"
	defaultCorpusPath   = "docs/dataset/train.json"
	defaultExtractedDir = "docs/extracted"
	defaultCatalogDB    = "processed/catalog.db"
)

// rootCmd is the base command for the benchprep CLI.
var rootCmd = &cobra.Command{
	Use:   "benchprep",
	Short: "Prepare question-answering benchmark fixtures",
	Long: `benchprep converts between the dataset formats used by the QA benchmark.
Each transform is a standalone, single-pass batch job: card generates the
card CSV from a keyword index, index generates the keyword index from a
card CSV, extract pulls passages out of a training corpus, and catalog
indexes extracted passages for keyword lookup.

The transforms operate on disjoint files and are run manually, one at a
time, when preparing a fixture set.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./benchprep.yaml or ~/.config/benchprep/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("benchprep")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "benchprep"))
		}
	}

	viper.SetEnvPrefix("BENCHPREP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setting resolves a path setting: an explicit command-line flag wins,
// then the config file, then the flag default.
func setting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
