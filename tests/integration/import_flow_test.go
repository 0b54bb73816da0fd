package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spiewnik/songbookd/internal/bus"
	"github.com/spiewnik/songbookd/internal/domain"
	"github.com/spiewnik/songbookd/internal/httpserver/deps"
	"github.com/spiewnik/songbookd/internal/httpserver/routes"
	"github.com/spiewnik/songbookd/internal/importer"
	"github.com/spiewnik/songbookd/internal/index"
	"github.com/spiewnik/songbookd/internal/kv"
	"github.com/spiewnik/songbookd/internal/logger"
	"github.com/spiewnik/songbookd/internal/presetfile"
	"github.com/spiewnik/songbookd/internal/store"
)

// TestImportExportFlow drives the full share loop over the real routes:
// import a preset file, list it, export it, delete it, and import the
// exported document again.
func TestImportExportFlow(t *testing.T) {
	kvStore := kv.NewMemory()
	log := logger.New("error", false)
	presets := store.NewPresets(kvStore)
	eventBus := bus.New()

	d := deps.Deps{
		Logger:          log,
		StartTime:       time.Now(),
		TimeNow:         time.Now,
		Presets:         presets,
		Favorites:       store.NewFavorites(kvStore),
		MemoryIndex:     index.NewMemoryIndex(),
		Importer:        importer.New(presets, eventBus, log, importer.Options{TmpDir: t.TempDir()}),
		Bus:             eventBus,
		ReloadTrigger:   make(chan struct{}, 1),
		ImportBurst:     100,
		ImportPerMinute: 100,
	}

	r := chi.NewRouter()
	routes.RegisterAll(r, d)
	srv := httptest.NewServer(r)
	defer srv.Close()

	// Write a preset file to disk, the way a share recipient would have it.
	file := presetfile.Export(domain.Preset{
		ID:    "shared-1",
		Name:  "Msza Swieta",
		Date:  "2026-09-06",
		Songs: map[domain.MassSlot]int{domain.SlotEntrance: 12, domain.SlotCommunion: 4},
	}, time.Now())
	raw, err := json.Marshal(file)
	if err != nil {
		t.Fatalf("marshal preset file: %v", err)
	}
	path := filepath.Join(t.TempDir(), "msza"+presetfile.Extension)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write preset file: %v", err)
	}

	// Import by file URI.
	body, _ := json.Marshal(map[string]string{"uri": "file://" + path})
	resp, err := http.Post(srv.URL+"/import", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import status = %d, want 200", resp.StatusCode)
	}
	_ = resp.Body.Close()

	// The preset shows up in the collection.
	var list []domain.Preset
	getJSON(t, srv.URL+"/presets", &list)
	if len(list) != 1 || list[0].ID != "shared-1" {
		t.Fatalf("presets = %+v, want the imported preset", list)
	}
	if list[0].Songs[domain.SlotEntrance] != 12 {
		t.Errorf("entrance song = %d, want 12", list[0].Songs[domain.SlotEntrance])
	}

	// Export reproduces a valid preset file.
	var exported presetfile.File
	getJSON(t, srv.URL+"/presets/shared-1/export", &exported)
	if !exported.IsPresetFile || exported.Payload.ID != "shared-1" {
		t.Fatalf("exported = %+v, want valid envelope", exported)
	}

	// Delete, then re-import the exported document via raw upload.
	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/presets/shared-1", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", resp.StatusCode)
	}
	_ = resp.Body.Close()

	exportedRaw, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("marshal exported: %v", err)
	}
	resp, err = http.Post(srv.URL+"/import/file", "application/json", bytes.NewReader(exportedRaw))
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("re-import status = %d, want 200", resp.StatusCode)
	}
	_ = resp.Body.Close()

	list = nil
	getJSON(t, srv.URL+"/presets", &list)
	if len(list) != 1 || list[0].ID != "shared-1" {
		t.Fatalf("presets after round trip = %+v, want the preset back", list)
	}
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status = %d, want 200", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("GET %s: decode: %v", url, err)
	}
}
