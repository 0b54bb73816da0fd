package index

import (
	"sync"
	"time"

	"github.com/spiewnik/songbookd/internal/domain"
)

// MemoryIndex keeps the song catalog in memory for fast lookups. It is
// rebuilt from the persistent store by the catalog syncer.
type MemoryIndex struct {
	mu         sync.RWMutex
	songs      map[int]*domain.Song // song id -> Song
	order      []int                // catalog order, preserved for listing
	lastReload time.Time            // timestamp of last catalog sync
}

// NewMemoryIndex creates an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		songs: make(map[int]*domain.Song),
	}
}

// UpdateSongs replaces the whole catalog.
func (idx *MemoryIndex) UpdateSongs(songs []domain.Song) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.songs = make(map[int]*domain.Song, len(songs))
	idx.order = make([]int, 0, len(songs))
	for i := range songs {
		song := songs[i]
		if _, seen := idx.songs[song.ID]; !seen {
			idx.order = append(idx.order, song.ID)
		}
		idx.songs[song.ID] = &song
	}
	idx.lastReload = time.Now()
}

// GetSong retrieves a song by id.
func (idx *MemoryIndex) GetSong(id int) (*domain.Song, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	song, ok := idx.songs[id]
	return song, ok
}

// GetAllSongs returns the catalog in its original order.
func (idx *MemoryIndex) GetAllSongs() []domain.Song {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	songs := make([]domain.Song, 0, len(idx.order))
	for _, id := range idx.order {
		songs = append(songs, *idx.songs[id])
	}
	return songs
}

// Count returns the number of songs in the index.
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.songs)
}

// GetLastReload returns the timestamp of the last catalog sync.
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
