package seed

import (
	"fmt"

	"github.com/spiewnik/songbookd/internal/domain"
)

// Mapper converts seed file entries to domain.Song entities.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapSongs converts a SongbookFile to []domain.Song. Entries without an id
// or a name are skipped.
func (m *Mapper) MapSongs(file *SongbookFile) ([]domain.Song, error) {
	var songs []domain.Song

	for _, entry := range file.Songs {
		if entry.ID <= 0 || entry.Name == "" {
			continue
		}

		content := make([]domain.Verse, 0, len(entry.Content))
		for _, verse := range entry.Content {
			content = append(content, domain.Verse{
				Lyrics: verse.Lyrics,
				Chords: verse.Chords,
			})
		}

		songs = append(songs, domain.Song{
			ID:       entry.ID,
			Name:     entry.Name,
			Category: entry.Category,
			Content:  content,
		})
	}

	if len(songs) == 0 {
		return nil, fmt.Errorf("no valid songs found in seed file")
	}

	return songs, nil
}
