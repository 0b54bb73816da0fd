package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/importer"
	"github.com/spiewnik/songbookd/internal/logger"
	"github.com/spiewnik/songbookd/internal/presetfile"
)

type importRequest struct {
	URI string `json:"uri"`
}

type importResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// maxImportBody bounds the raw body accepted by the file upload route.
const maxImportBody = 4 << 20

// Import resolves a URI (deep link, remote URL, content ref or file path)
// and stores the preset it points at.
func Import(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URI == "" {
			writeError(w, http.StatusBadRequest, "body must be {\"uri\": \"...\"}")
			return
		}

		id, err := d.Importer.Import(r.Context(), req.URI)
		if err != nil {
			writeImportError(w, d, req.URI, err)
			return
		}

		writeJSON(w, http.StatusOK, importResponse{ID: id, Message: "preset imported"})
	}
}

// ImportFile accepts a raw preset file body, for clients that already hold
// the bytes and have no URI to hand over.
func ImportFile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBody+1))
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read request body")
			return
		}
		if len(data) > maxImportBody {
			writeError(w, http.StatusRequestEntityTooLarge, "preset file too large")
			return
		}
		if len(data) == 0 {
			writeError(w, http.StatusBadRequest, "empty request body")
			return
		}

		id, err := d.Importer.ImportBytes(r.Context(), data)
		if err != nil {
			writeImportError(w, d, "(upload)", err)
			return
		}

		writeJSON(w, http.StatusOK, importResponse{ID: id, Message: "preset imported"})
	}
}

func writeImportError(w http.ResponseWriter, d deps.Deps, uri string, err error) {
	switch {
	case errors.Is(err, presetfile.ErrInvalidFormat):
		d.Logger.Warn("import rejected, invalid preset file",
			logger.String("uri", uri),
			logger.Error(err))
		writeError(w, http.StatusUnprocessableEntity, "not a valid preset file")
	case errors.Is(err, importer.ErrNetwork):
		d.Logger.Warn("import failed, remote fetch error",
			logger.String("uri", uri),
			logger.Error(err))
		writeError(w, http.StatusBadGateway, "failed to fetch preset file")
	case errors.Is(err, importer.ErrUnsupportedURI):
		d.Logger.Warn("import rejected, unsupported uri",
			logger.String("uri", uri))
		writeError(w, http.StatusBadRequest, "unsupported import uri")
	default:
		d.Logger.Error("import failed",
			logger.String("uri", uri),
			logger.Error(err))
		writeError(w, http.StatusInternalServerError, "import failed")
	}
}
