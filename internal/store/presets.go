package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/spiewnik/songbookd/internal/domain"
	"github.com/spiewnik/songbookd/internal/kv"
)

// Presets owns the preset collection. The collection is stored as one JSON
// snapshot under KeyPresets; every mutation is a full read-modify-write.
//
// All mutations are serialized through mu, so overlapping upserts or deletes
// cannot lose each other's writes.
type Presets struct {
	mu sync.Mutex
	kv kv.Store
}

// NewPresets creates a preset store over the given key-value backend.
func NewPresets(store kv.Store) *Presets {
	return &Presets{kv: store}
}

// GetPresets reads the full collection. A missing key yields an empty
// collection; unparseable stored bytes yield ErrStorageRead.
func (s *Presets) GetPresets(ctx context.Context) ([]domain.Preset, error) {
	raw, err := s.kv.Get(ctx, KeyPresets)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []domain.Preset{}, nil
		}
		return nil, fmt.Errorf("%w: read presets: %v", ErrStorage, err)
	}

	var list []domain.Preset
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%w: presets: %v", ErrStorageRead, err)
	}
	if list == nil {
		list = []domain.Preset{}
	}
	return list, nil
}

// SavePresets replaces the whole collection. There is no merge: callers are
// expected to read-modify-write the full list.
func (s *Presets) SavePresets(ctx context.Context, list []domain.Preset) error {
	if list == nil {
		list = []domain.Preset{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}
	if err := s.kv.Set(ctx, KeyPresets, string(data)); err != nil {
		return fmt.Errorf("%w: write presets: %v", ErrStorage, err)
	}
	return nil
}

// UpsertPreset replaces the entry whose id matches, or appends if none does.
func (s *Presets) UpsertPreset(ctx context.Context, preset domain.Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.GetPresets(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range list {
		if list[i].ID == preset.ID {
			list[i] = preset
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, preset)
	}

	return s.SavePresets(ctx, list)
}

// DeletePreset removes all entries matching id. Deleting an id that is not
// present is a silent no-op.
func (s *Presets) DeletePreset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.GetPresets(ctx)
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	return s.SavePresets(ctx, kept)
}
