// Package presetfile implements the portable document format used to move a
// single preset between devices, as a file or behind a deep link.
package presetfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spiewnik/songbookd/internal/domain"
)

const (
	// FormatVersion is written into exported envelopes. Import accepts any
	// version as long as the marker and payload shape hold; the number is
	// informational.
	FormatVersion = 1

	// Extension is the file extension identifying preset files.
	Extension = ".sbpreset"
)

// ErrInvalidFormat means a document is not a preset file: not JSON, missing
// the marker, or missing a payload id.
var ErrInvalidFormat = errors.New("not a valid preset file")

// Meta is a denormalized copy of the preset's scalar fields, kept in the
// envelope so a file can be inspected without parsing the full payload.
type Meta struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Date  string `json:"date,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// File is the envelope around exactly one preset.
type File struct {
	IsPresetFile bool          `json:"is_preset_file"`
	Version      int           `json:"version"`
	ExportedAt   string        `json:"exported_at"`
	Meta         Meta          `json:"meta"`
	Payload      domain.Preset `json:"payload"`
}

// Export wraps a preset in the envelope. The payload is a deep copy, so
// mutating the original afterwards does not leak into the document.
func Export(p domain.Preset, now time.Time) File {
	return File{
		IsPresetFile: true,
		Version:      FormatVersion,
		ExportedAt:   now.UTC().Format(time.RFC3339),
		Meta: Meta{
			ID:    p.ID,
			Name:  p.Name,
			Date:  p.Date,
			Notes: p.Notes,
		},
		Payload: p.Clone(),
	}
}

// Decode parses an envelope from raw bytes. Validation is intentionally
// shallow: the marker must be true and the payload must carry an id; the
// version field and the slot/song contents are trusted.
func Decode(data []byte) (File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if !f.IsPresetFile {
		return File{}, fmt.Errorf("%w: missing is_preset_file marker", ErrInvalidFormat)
	}
	if f.Payload.ID == "" {
		return File{}, fmt.Errorf("%w: payload has no id", ErrInvalidFormat)
	}
	return f, nil
}
