package seed

// SongbookFile represents the top-level structure of songbook.yaml.
type SongbookFile struct {
	Songs []SongEntry `yaml:"songs"`
}

// SongEntry is one song definition in the seed file.
type SongEntry struct {
	ID       int          `yaml:"id"`
	Name     string       `yaml:"name"`
	Category string       `yaml:"category,omitempty"`
	Content  []VerseEntry `yaml:"content,omitempty"`
}

// VerseEntry is one lyrics/chords line pair.
type VerseEntry struct {
	Lyrics string `yaml:"lyrics"`
	Chords string `yaml:"chords,omitempty"`
}
