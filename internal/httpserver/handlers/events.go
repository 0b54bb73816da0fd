package handlers

import (
	"fmt"
	"net/http"

	"github.com/spiewnik/songbookd/internal/bus"
	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/logger"
)

// Events streams preset-change notifications over SSE. Clients use it to
// refresh their local preset view after an import lands.
func Events(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming unsupported")
			return
		}

		ch, cancel := d.Bus.Subscribe(bus.EventPresetsUpdated)
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		// Opening comment so clients know the stream is live.
		_, _ = fmt.Fprint(w, ": connected\n\n")
		flusher.Flush()

		d.Logger.Debug("sse client connected",
			logger.String("remote_ip", r.RemoteAddr))

		for {
			select {
			case <-r.Context().Done():
				d.Logger.Debug("sse client disconnected",
					logger.String("remote_ip", r.RemoteAddr))
				return
			case <-ch:
				if _, err := fmt.Fprint(w, "event: presets-updated\ndata: {}\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
