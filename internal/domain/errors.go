package domain

import "errors"

// Sentinel errors used across layers.
var (
	// ErrCacheMiss means the cache held nothing usable: absent,
	// expired, or corrupt. All three are equivalent to the caller.
	ErrCacheMiss = errors.New("cache miss")

	// ErrEmptySource means a source answered but listed no recipes
	// where at least one was expected.
	ErrEmptySource = errors.New("source returned no recipes")
)
