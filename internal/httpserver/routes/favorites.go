package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/httpserver/handlers"
)

func init() { Register(registerFavorites) }

func registerFavorites(r chi.Router, d deps.Deps) {
	r.Get("/favorites", handlers.GetFavorites(d))
	r.Put("/favorites", handlers.PutFavorites(d))
}
