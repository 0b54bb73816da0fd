package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/httpserver/handlers"
	"github.com/spiewnik/songbookd/internal/httpserver/mw"
)

func init() { Register(registerImport) }

// Import routes are rate limited per client: deep-link handling on mobile
// is known to fire the same URI twice in quick succession.
func registerImport(r chi.Router, d deps.Deps) {
	limited := r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:        d.ImportBurst,
		RefillPerMin: d.ImportPerMinute,
		IdleTTL:      15 * time.Minute,
		TrustProxy:   d.TrustProxy,
	}))
	limited.Post("/import", handlers.Import(d))
	limited.Post("/import/file", handlers.ImportFile(d))
}
