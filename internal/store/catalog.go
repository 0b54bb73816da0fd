package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spiewnik/songbookd/internal/domain"
	"github.com/spiewnik/songbookd/internal/kv"
)

// Catalog holds the cached song catalog under KeyCatalog. The catalog is
// refreshed by an external source; this store only owns the cached shape.
type Catalog struct {
	kv kv.Store
}

// NewCatalog creates a catalog store over the given backend.
func NewCatalog(store kv.Store) *Catalog {
	return &Catalog{kv: store}
}

// GetCatalog reads the cached song list. Missing key yields an empty list.
func (s *Catalog) GetCatalog(ctx context.Context) ([]domain.Song, error) {
	raw, err := s.kv.Get(ctx, KeyCatalog)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []domain.Song{}, nil
		}
		return nil, fmt.Errorf("%w: read catalog: %v", ErrStorage, err)
	}

	var songs []domain.Song
	if err := json.Unmarshal([]byte(raw), &songs); err != nil {
		return nil, fmt.Errorf("%w: catalog: %v", ErrStorageRead, err)
	}
	if songs == nil {
		songs = []domain.Song{}
	}
	return songs, nil
}

// SaveCatalog replaces the cached song list.
func (s *Catalog) SaveCatalog(ctx context.Context, songs []domain.Song) error {
	if songs == nil {
		songs = []domain.Song{}
	}
	data, err := json.Marshal(songs)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := s.kv.Set(ctx, KeyCatalog, string(data)); err != nil {
		return fmt.Errorf("%w: write catalog: %v", ErrStorage, err)
	}
	return nil
}
