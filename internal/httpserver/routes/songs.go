package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/httpserver/handlers"
)

func init() { Register(registerSongs) }

func registerSongs(r chi.Router, d deps.Deps) {
	r.Get("/songs", handlers.ListSongs(d))
	r.Get("/songs/{id}", handlers.GetSong(d))
}
