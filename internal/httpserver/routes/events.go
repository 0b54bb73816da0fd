package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/httpserver/handlers"
)

func init() { Register(registerEvents) }

func registerEvents(r chi.Router, d deps.Deps) {
	r.Get("/events", handlers.Events(d))
}
