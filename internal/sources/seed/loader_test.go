package seed

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
songs:
  - id: 1
    name: Barka
    category: Maryjne
    content:
      - lyrics: "Pan kiedyś stanął nad brzegiem"
        chords: "C G a F"
      - lyrics: "Szukał ludzi gotowych pójść za Nim"
  - id: 2
    name: Abba Ojcze
    category: Uwielbienie
  - name: "bez id, pomijana"
  - id: 7
    name: ""
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songbook.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestLoadAndMap(t *testing.T) {
	path := writeSeed(t, sampleYAML)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(file.Songs) != 4 {
		t.Fatalf("parsed %d entries, want 4", len(file.Songs))
	}

	songs, err := NewMapper().MapSongs(file)
	if err != nil {
		t.Fatalf("MapSongs() error = %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("mapped %d songs, want 2 (invalid entries skipped)", len(songs))
	}

	if songs[0].ID != 1 || songs[0].Name != "Barka" || songs[0].Category != "Maryjne" {
		t.Errorf("songs[0] = %+v", songs[0])
	}
	if len(songs[0].Content) != 2 {
		t.Fatalf("songs[0] verses = %d, want 2", len(songs[0].Content))
	}
	if songs[0].Content[0].Chords != "C G a F" {
		t.Errorf("chords = %q", songs[0].Content[0].Chords)
	}
	if songs[0].Content[1].Chords != "" {
		t.Errorf("second verse chords = %q, want empty", songs[0].Content[1].Chords)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	if err == nil {
		t.Fatal("Load() on a missing file did not fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeSeed(t, "songs: [unclosed")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Fatal("Load() on invalid yaml did not fail")
	}
}

func TestMapSongsAllInvalid(t *testing.T) {
	file := &SongbookFile{Songs: []SongEntry{{Name: "no id"}, {ID: 3}}}
	if _, err := NewMapper().MapSongs(file); err == nil {
		t.Fatal("MapSongs() with no valid songs did not fail")
	}
}
