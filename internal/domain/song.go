package domain

// Verse is one line pair of a song: lyrics plus the chords played over them.
// Chords may be empty.
type Verse struct {
	Lyrics string `json:"lyrics"`
	Chords string `json:"chords,omitempty"`
}

// Song is one entry of the cached song catalog.
//
// The catalog itself is maintained elsewhere (the mobile app refreshes it
// from its remote source); this service only reads the cached shape.
type Song struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Content  []Verse `json:"content"`
}
