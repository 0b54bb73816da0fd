package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/logger"
	"github.com/spiewnik/songbookd/internal/store"
)

// GetFavorites returns the favorite song id list.
func GetFavorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := d.Favorites.GetFavorites(r.Context())
		if err != nil {
			if errors.Is(err, store.ErrStorageRead) {
				d.Logger.Error("stored favorites are corrupt, serving empty list",
					logger.Error(err))
				writeJSON(w, http.StatusOK, []int{})
				return
			}
			d.Logger.Error("failed to load favorites", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load favorites")
			return
		}
		writeJSON(w, http.StatusOK, ids)
	}
}

// PutFavorites replaces the favorite song id list wholesale.
func PutFavorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ids []int
		if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
			writeError(w, http.StatusBadRequest, "body must be a list of song ids")
			return
		}

		if err := d.Favorites.SaveFavorites(r.Context(), ids); err != nil {
			d.Logger.Error("failed to save favorites", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save favorites")
			return
		}

		writeJSON(w, http.StatusOK, ids)
	}
}
