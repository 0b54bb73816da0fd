package store

const (
	// KeyPresets holds the serialized preset collection (JSON array).
	// The v1 suffix versions the storage namespace, not the file format.
	KeyPresets = "songbook:presets:v1"

	// KeyFavorites holds the favorite song ids (JSON array of integers).
	KeyFavorites = "songbook:favorites:v1"

	// KeyCatalog holds the cached song catalog (JSON array of songs).
	KeyCatalog = "songbook:catalog:v1"
)
