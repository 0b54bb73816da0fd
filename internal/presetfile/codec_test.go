package presetfile

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/spiewnik/songbookd/internal/domain"
)

func TestExportDecodeRoundTrip(t *testing.T) {
	preset := domain.Preset{
		ID:    "1712000000000-ab12cd34",
		Name:  "Pasterka",
		Date:  "24.12",
		Notes: "po kolędzie",
		Songs: map[domain.MassSlot]int{
			domain.SlotEntrance:    12,
			domain.SlotCommunion:   40,
			domain.SlotRecessional: 7,
			domain.SlotExtra1:      99,
		},
	}

	f := Export(preset, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := decoded.Payload
	if got.ID != preset.ID || got.Name != preset.Name || got.Date != preset.Date || got.Notes != preset.Notes {
		t.Errorf("payload = %+v, want %+v", got, preset)
	}
	if len(got.Songs) != len(preset.Songs) {
		t.Fatalf("songs len = %d, want %d", len(got.Songs), len(preset.Songs))
	}
	for slot, id := range preset.Songs {
		if got.Songs[slot] != id {
			t.Errorf("songs[%s] = %d, want %d", slot, got.Songs[slot], id)
		}
	}
}

func TestExportEnvelopeFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := Export(domain.Preset{ID: "a", Name: "Mass"}, now)

	if !f.IsPresetFile {
		t.Error("IsPresetFile = false")
	}
	if f.Version != FormatVersion {
		t.Errorf("Version = %d, want %d", f.Version, FormatVersion)
	}
	if f.ExportedAt != "2025-06-01T12:00:00Z" {
		t.Errorf("ExportedAt = %q", f.ExportedAt)
	}
	if f.Meta.ID != "a" || f.Meta.Name != "Mass" {
		t.Errorf("Meta = %+v", f.Meta)
	}
}

func TestExportDeepCopiesPayload(t *testing.T) {
	preset := domain.Preset{
		ID:    "a",
		Songs: map[domain.MassSlot]int{domain.SlotEntrance: 1},
	}

	f := Export(preset, time.Now())

	// Mutating the original after export must not affect the document.
	preset.Songs[domain.SlotEntrance] = 999
	preset.Songs[domain.SlotOffertory] = 2

	if f.Payload.Songs[domain.SlotEntrance] != 1 {
		t.Errorf("payload entrance = %d, want 1", f.Payload.Songs[domain.SlotEntrance])
	}
	if _, ok := f.Payload.Songs[domain.SlotOffertory]; ok {
		t.Error("payload gained a slot added after export")
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "not json",
			data: "not a document",
		},
		{
			name: "marker absent",
			data: `{"version":1,"payload":{"id":"a","name":"x","songs":{}}}`,
		},
		{
			name: "marker false",
			data: `{"is_preset_file":false,"version":1,"payload":{"id":"a","name":"x","songs":{}}}`,
		},
		{
			name: "payload without id",
			data: `{"is_preset_file":true,"version":1,"payload":{"name":"x","songs":{}}}`,
		},
		{
			name: "empty object",
			data: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestDecodeAcceptsUnknownVersion(t *testing.T) {
	// Version is informational: a v2 file with the right shape still decodes.
	data := `{"is_preset_file":true,"version":2,"exported_at":"2030-01-01T00:00:00Z","meta":{"id":"a","name":"x"},"payload":{"id":"a","name":"x","songs":{"entrance":5}}}`

	f, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if f.Version != 2 {
		t.Errorf("Version = %d, want 2", f.Version)
	}
	if f.Payload.Songs[domain.SlotEntrance] != 5 {
		t.Errorf("payload entrance = %d, want 5", f.Payload.Songs[domain.SlotEntrance])
	}
}
