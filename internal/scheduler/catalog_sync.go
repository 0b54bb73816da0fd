package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/spiewnik/songbookd/internal/domain"
	"github.com/spiewnik/songbookd/internal/index"
	"github.com/spiewnik/songbookd/internal/logger"
	"github.com/spiewnik/songbookd/internal/sources/seed"
	"github.com/spiewnik/songbookd/internal/store"
)

// CatalogSyncer keeps the in-memory song index in step with the persisted
// catalog. On first start, when the catalog key is empty and a seed file is
// configured, the seed is loaded into the store before the sync.
type CatalogSyncer struct {
	catalog       *store.Catalog
	index         *index.MemoryIndex
	logger        logger.Logger
	seedFile      string
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogSyncer creates a new catalog syncer.
func NewCatalogSyncer(
	catalog *store.Catalog,
	idx *index.MemoryIndex,
	log logger.Logger,
	seedFile string,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogSyncer {
	return &CatalogSyncer{
		catalog:       catalog,
		index:         idx,
		logger:        log,
		seedFile:      seedFile,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start syncs once immediately, then keeps syncing on the interval and on
// manual triggers until the context is cancelled or Stop is called.
func (cs *CatalogSyncer) Start(ctx context.Context) error {
	if err := cs.Sync(ctx); err != nil {
		return fmt.Errorf("initial catalog sync failed: %w", err)
	}

	ticker := time.NewTicker(cs.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cs.Sync(ctx); err != nil {
					cs.logger.Error("failed to sync catalog",
						logger.Error(err))
				}
			case <-cs.manualTrigger:
				cs.logger.Info("manual catalog sync triggered")
				if err := cs.Sync(ctx); err != nil {
					cs.logger.Error("failed to sync catalog",
						logger.Error(err))
				}
			case <-cs.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the syncer.
func (cs *CatalogSyncer) Stop() {
	close(cs.stopCh)
}

// Sync loads the catalog from the store into the memory index, seeding the
// store first when it is empty.
func (cs *CatalogSyncer) Sync(ctx context.Context) error {
	songs, err := cs.catalog.GetCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if len(songs) == 0 && cs.seedFile != "" {
		songs, err = cs.seedCatalog(ctx)
		if err != nil {
			return err
		}
	}

	cs.index.UpdateSongs(songs)
	cs.logger.Info("catalog synced to memory",
		logger.Int("count", len(songs)))
	return nil
}

// seedCatalog loads songbook.yaml and persists it as the initial catalog.
func (cs *CatalogSyncer) seedCatalog(ctx context.Context) ([]domain.Song, error) {
	cs.logger.Info("catalog empty, seeding from file",
		logger.String("file", cs.seedFile))

	file, err := seed.NewLoader(cs.seedFile).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file: %w", err)
	}

	songs, err := seed.NewMapper().MapSongs(file)
	if err != nil {
		return nil, fmt.Errorf("failed to map seed songs: %w", err)
	}

	if err := cs.catalog.SaveCatalog(ctx, songs); err != nil {
		return nil, fmt.Errorf("failed to persist seeded catalog: %w", err)
	}

	cs.logger.Info("catalog seeded",
		logger.Int("count", len(songs)))
	return songs, nil
}
