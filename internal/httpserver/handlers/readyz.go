package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/logger"
)

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// Readyz reports whether the process can serve traffic. On the redis
// backend that means the connection answers a ping; the memory backend
// is always ready.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.RedisClient == nil {
			writeJSON(w, http.StatusOK, readyzResponse{Ready: true})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := d.RedisClient.Ping(ctx).Err(); err != nil {
			d.Logger.Warn("readiness check failed", logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{
				Ready: false,
				Error: "storage unreachable",
			})
			return
		}

		writeJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}
