package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/httpserver/handlers"
)

func init() { Register(registerPresets) }

func registerPresets(r chi.Router, d deps.Deps) {
	r.Get("/presets", handlers.ListPresets(d))
	r.Post("/presets", handlers.UpsertPreset(d))
	r.Delete("/presets/{id}", handlers.DeletePreset(d))
	r.Get("/presets/{id}/export", handlers.ExportPreset(d))
}
