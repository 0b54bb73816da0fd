package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spiewnik/songbookd/internal/bus"
	"github.com/spiewnik/songbookd/internal/importer"
	"github.com/spiewnik/songbookd/internal/index"
	"github.com/spiewnik/songbookd/internal/logger"
	"github.com/spiewnik/songbookd/internal/store"
)

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time   // for testing, defaults to time.Now
	Presets         *store.Presets     // preset collection store
	Favorites       *store.Favorites   // favorite song ids store
	MemoryIndex     *index.MemoryIndex // in-memory song catalog
	Importer        *importer.Importer // preset import pipeline
	Bus             *bus.Bus           // presets-updated notifications
	RedisClient     *redis.Client      // nil when running on the memory backend
	ReloadTrigger   chan struct{}      // channel to trigger manual catalog sync
	ImportBurst     int                // rate-limit burst for import endpoints
	ImportPerMinute int                // rate-limit refill per client per minute
	TrustProxy      bool               // true if running behind a trusted reverse proxy
}
