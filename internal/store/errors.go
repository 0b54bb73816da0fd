package store

import "errors"

var (
	// ErrStorage is an underlying key-value store I/O failure.
	// Not retried automatically; surfaced to the caller.
	ErrStorage = errors.New("storage failure")

	// ErrStorageRead means the stored bytes do not parse as the expected
	// shape. Data corruption, not user error: callers fall back to an empty
	// collection rather than crash.
	ErrStorageRead = errors.New("stored data is corrupt")
)
