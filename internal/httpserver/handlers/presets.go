package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spiewnik/songbookd/internal/bus"
	"github.com/spiewnik/songbookd/internal/domain"
	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/logger"
	"github.com/spiewnik/songbookd/internal/presetfile"
	"github.com/spiewnik/songbookd/internal/store"
)

// ListPresets returns the stored preset collection. Corrupt stored data is
// logged and reported as an empty collection so clients can keep working
// and rebuild their presets.
func ListPresets(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		presets, err := d.Presets.GetPresets(r.Context())
		if err != nil {
			if errors.Is(err, store.ErrStorageRead) {
				d.Logger.Error("stored presets are corrupt, serving empty collection",
					logger.Error(err))
				writeJSON(w, http.StatusOK, []domain.Preset{})
				return
			}
			d.Logger.Error("failed to load presets", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load presets")
			return
		}
		writeJSON(w, http.StatusOK, presets)
	}
}

// UpsertPreset creates or replaces a preset. A missing id means "create":
// the server assigns one before saving.
func UpsertPreset(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var preset domain.Preset
		if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
			writeError(w, http.StatusBadRequest, "invalid preset payload")
			return
		}

		if preset.Name == "" {
			writeError(w, http.StatusBadRequest, "preset name is required")
			return
		}

		created := false
		if preset.ID == "" {
			preset.ID = domain.NewPresetID()
			created = true
		}

		if err := preset.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := d.Presets.UpsertPreset(r.Context(), preset); err != nil {
			d.Logger.Error("failed to save preset",
				logger.String("id", preset.ID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save preset")
			return
		}

		d.Bus.Emit(bus.EventPresetsUpdated)
		d.Logger.Info("preset saved",
			logger.String("id", preset.ID),
			logger.String("name", preset.Name),
			logger.Bool("created", created))

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, preset)
	}
}

// DeletePreset removes a preset by id. Deleting an unknown id is a no-op
// and still answers 204.
func DeletePreset(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing preset id")
			return
		}

		if err := d.Presets.DeletePreset(r.Context(), id); err != nil {
			d.Logger.Error("failed to delete preset",
				logger.String("id", id),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to delete preset")
			return
		}

		d.Bus.Emit(bus.EventPresetsUpdated)
		d.Logger.Info("preset deleted", logger.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportPreset serves a single preset as a downloadable preset file.
func ExportPreset(d deps.Deps) http.HandlerFunc {
	now := d.TimeNow
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		presets, err := d.Presets.GetPresets(r.Context())
		if err != nil {
			d.Logger.Error("failed to load presets for export", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load presets")
			return
		}

		for _, p := range presets {
			if p.ID != id {
				continue
			}
			file := presetfile.Export(p, now())
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Content-Disposition",
				fmt.Sprintf("attachment; filename=%q", p.ID+presetfile.Extension))
			_ = json.NewEncoder(w).Encode(file)
			return
		}

		writeError(w, http.StatusNotFound, "preset not found")
	}
}
