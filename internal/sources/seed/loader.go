// Package seed loads the bundled songbook.yaml used to populate an empty
// catalog key on first start.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the songbook seed file.
type Loader struct {
	filePath string
}

// NewLoader creates a new seed loader.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the songbook yaml file.
func (l *Loader) Load() (*SongbookFile, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read songbook file: %w", err)
	}

	var file SongbookFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse songbook yaml: %w", err)
	}

	return &file, nil
}
