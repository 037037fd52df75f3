package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/dishdex/internal/domain"
)

// Sort returns a new slice of recs in the requested order. The input
// is never mutated.
//
// SortAlphabetical orders ascending by title under locale-aware
// comparison. SortDefault restores the hand-curated canonical publish
// order; records whose slug is not in the canonical list are appended
// afterward in arrival order.
func Sort(recs []domain.RecipeRecord, order domain.SortOrder) []domain.RecipeRecord {
	out := make([]domain.RecipeRecord, len(recs))
	copy(out, recs)

	switch order {
	case domain.SortAlphabetical:
		// A collator is not safe for concurrent use, so build one
		// per call.
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return canonicalRank(out[i].Slug) < canonicalRank(out[j].Slug)
		})
	}
	return out
}

// canonicalRank returns the slug's position in the canonical list, or
// a rank past the end for unknown slugs so they sort after all known
// ones while keeping their arrival order (the sort is stable).
func canonicalRank(slug string) int {
	if i, ok := canonicalIndex[slug]; ok {
		return i
	}
	return len(canonicalOrder)
}
