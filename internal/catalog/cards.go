// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"

	"github.com/pdiddy/benchprep/internal/keyword"
	"github.com/pdiddy/benchprep/pkg/types"
)

// loadCards reads the card CSV so passage rows can carry the original
// (unsanitized) title and question. A missing card file is tolerated;
// the caller falls back to filename-derived titles.
func loadCards(path string) ([]types.Card, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("card file does not exist: %s", path)
		}
		return nil, fmt.Errorf("checking card file: %w", err)
	}
	return keyword.ReadCards(path)
}
