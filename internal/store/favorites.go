package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spiewnik/songbookd/internal/kv"
)

// Favorites holds the favorite song ids, one JSON array under KeyFavorites.
type Favorites struct {
	kv kv.Store
}

// NewFavorites creates a favorites store over the given backend.
func NewFavorites(store kv.Store) *Favorites {
	return &Favorites{kv: store}
}

// GetFavorites reads the favorite song ids. Missing key yields an empty list.
func (s *Favorites) GetFavorites(ctx context.Context) ([]int, error) {
	raw, err := s.kv.Get(ctx, KeyFavorites)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("%w: read favorites: %v", ErrStorage, err)
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("%w: favorites: %v", ErrStorageRead, err)
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}

// SaveFavorites replaces the favorite song ids.
func (s *Favorites) SaveFavorites(ctx context.Context, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}
	if err := s.kv.Set(ctx, KeyFavorites, string(data)); err != nil {
		return fmt.Errorf("%w: write favorites: %v", ErrStorage, err)
	}
	return nil
}
