// Package domain defines the core types and interfaces for the recipe
// catalog browser. All other packages depend on domain; domain depends
// on nothing.
package domain

import "time"

// RecipeRecord is the unit of the catalog: one published recipe as it
// appears in a listing. The Slug acts as the primary key — two records
// sharing a slug are the same logical recipe regardless of which
// source produced them.
type RecipeRecord struct {
	// Title is the human-cased display name.
	Title string `json:"title"`

	// Slug is the unique, lowercase, hyphenated identifier and URL
	// path component.
	Slug string `json:"slug"`

	// ImagePath references a representative image. The engine only
	// stores and passes it through; it never reads the file.
	ImagePath string `json:"imagePath"`

	// Tags are lowercase category labels ("vegan", "spicy").
	// Unordered and deduplicated.
	Tags []string `json:"tags"`

	// SearchTerms is a precomputed, space-joined bag of lowercase
	// words used for broader (non-exact-title) matching. Derived,
	// not authoritative; regenerated whenever the record is rebuilt
	// from source.
	SearchTerms string `json:"searchTerms"`
}

// HasTag reports whether the record carries the given tag,
// case-insensitively.
func (r RecipeRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if equalFold(t, tag) {
			return true
		}
	}
	return false
}

// equalFold is a tiny ASCII-only case-insensitive compare. Tags and
// slugs are ASCII by construction.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// CatalogSnapshot is an immutable-once-built ordered sequence of
// records plus the time it was loaded. A snapshot is never mutated
// after construction; a refresh builds a new snapshot and swaps the
// reference, so queries in flight against the old one stay valid.
type CatalogSnapshot struct {
	Recipes  []RecipeRecord `json:"recipes"`
	LoadedAt time.Time      `json:"timestamp"`
}

// Len returns the number of records in the snapshot. Safe on nil.
func (s *CatalogSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Recipes)
}

// SortOrder selects how a result list is ordered.
type SortOrder string

const (
	// SortDefault restores the hand-curated canonical publish order.
	SortDefault SortOrder = "default"
	// SortAlphabetical orders ascending by title under locale-aware
	// string comparison.
	SortAlphabetical SortOrder = "alphabetical"
)
