// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/benchprep/pkg/types"
)

// manifestFile is written next to the card file after a successful run.
const manifestFile = "manifest.yaml"

// Manifest is the on-disk record of an extraction run. It captures the
// inputs and counts so a fixture set can be traced back to the corpus
// that produced it.
type Manifest struct {
	Corpus    string    `yaml:"corpus"`
	OutputDir string    `yaml:"output_dir"`
	CardFile  string    `yaml:"card_file"`
	Accepted  int       `yaml:"accepted"`
	Skipped   int       `yaml:"skipped"`
	Limit     int       `yaml:"limit"`
	Timestamp time.Time `yaml:"timestamp"`
}

// writeManifest saves the run record to path.
func writeManifest(path string, cfg types.ExtractConfig, s Summary) error {
	m := Manifest{
		Corpus:    cfg.CorpusPath,
		OutputDir: cfg.OutputDir,
		CardFile:  cfg.CardPath,
		Accepted:  s.Accepted,
		Skipped:   s.Skipped,
		Limit:     DefaultLimit,
		Timestamp: time.Now().UTC(),
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
