package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/spiewnik/songbookd/internal/chords"
	"github.com/spiewnik/songbookd/internal/domain"
	"github.com/spiewnik/songbookd/internal/httpserver/deps"
)

type songSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// ListSongs returns catalog summaries in catalog order.
func ListSongs(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		songs := d.MemoryIndex.GetAllSongs()
		out := make([]songSummary, 0, len(songs))
		for _, s := range songs {
			out = append(out, songSummary{ID: s.ID, Name: s.Name, Category: s.Category})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GetSong returns a full song. An optional transpose query parameter shifts
// every chord line by that many semitones; values are clamped to one octave
// in either direction.
func GetSong(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "song id must be a number")
			return
		}

		song, ok := d.MemoryIndex.GetSong(id)
		if !ok {
			writeError(w, http.StatusNotFound, "song not found")
			return
		}

		steps := 0
		if raw := r.URL.Query().Get("transpose"); raw != "" {
			steps, err = strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "transpose must be a number")
				return
			}
			if steps > 11 {
				steps = 11
			} else if steps < -11 {
				steps = -11
			}
		}

		if steps == 0 {
			writeJSON(w, http.StatusOK, song)
			return
		}

		writeJSON(w, http.StatusOK, transposeSong(*song, steps))
	}
}

func transposeSong(song domain.Song, steps int) domain.Song {
	verses := make([]domain.Verse, len(song.Content))
	for i, v := range song.Content {
		verses[i] = domain.Verse{
			Lyrics: v.Lyrics,
			Chords: chords.Transpose(v.Chords, steps),
		}
	}
	song.Content = verses
	return song
}
