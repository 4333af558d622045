// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CardConfig holds settings for the card generation stage (keyword index
// to card CSV).
type CardConfig struct {
	// IndexPath is the keyword index JSON file to read.
	IndexPath string `json:"index_path" yaml:"index_path"`

	// CardPath is the card CSV file to write.
	CardPath string `json:"card_path" yaml:"card_path"`
}

// KeywordIndexConfig holds settings for the keyword index generation
// stage (card CSV to keyword index JSON).
type KeywordIndexConfig struct {
	// CardPath is the card CSV file to read.
	CardPath string `json:"card_path" yaml:"card_path"`

	// IndexPath is the keyword index JSON file to write.
	IndexPath string `json:"index_path" yaml:"index_path"`
}

// ExtractConfig holds settings for the corpus extraction stage.
type ExtractConfig struct {
	// CorpusPath is the nested corpus JSON document to read.
	CorpusPath string `json:"corpus_path" yaml:"corpus_path"`

	// OutputDir is the directory for extracted passage files. Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// CardPath is the card CSV file to write.
	CardPath string `json:"card_path" yaml:"card_path"`
}

// CatalogConfig holds settings for the fixture catalog stage.
type CatalogConfig struct {
	// ExtractedDir is the directory of extracted passage files to index.
	ExtractedDir string `json:"extracted_dir" yaml:"extracted_dir"`

	// CardPath is the card CSV file pairing passage titles with questions.
	CardPath string `json:"card_path" yaml:"card_path"`

	// DBPath is the SQLite database file for the catalog.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Card         CardConfig         `json:"card" yaml:"card"`
	KeywordIndex KeywordIndexConfig `json:"keyword_index" yaml:"keyword_index"`
	Extract      ExtractConfig      `json:"extract" yaml:"extract"`
	Catalog      CatalogConfig      `json:"catalog" yaml:"catalog"`
}
