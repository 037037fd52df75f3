// Package query holds the pure functions that answer searches,
// tag filters, and sorts over a catalog. Nothing here owns state: every
// function takes the records it operates on, tolerates being called at
// any rate, and never mutates its input.
package query

import (
	"sort"
	"strings"

	"github.com/hammamikhairi/dishdex/internal/domain"
)

// Search returns the records matching the free-text query, ordered by
// relevance tier. Within a tier the original catalog order is kept, a
// record appears at most once, and no result limit is imposed — the
// UI windows the result separately.
//
// Tiers, best first:
//  1. the lowercased title contains the query
//  2. the precomputed search-term bag contains the query
//  3. some individual title word contains the query, or the query
//     contains that word (prefix/partial word queries on multi-word
//     titles)
//  4. some tag contains the query
//
// An empty or whitespace-only query returns the catalog unchanged;
// that is the "all recipes" view, not an error.
func Search(recs []domain.RecipeRecord, query string) []domain.RecipeRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return recs
	}

	var tier1, tier2, tier3, tier4 []domain.RecipeRecord

	for _, r := range recs {
		title := strings.ToLower(r.Title)
		switch {
		case strings.Contains(title, q):
			tier1 = append(tier1, r)
		case strings.Contains(r.SearchTerms, q):
			tier2 = append(tier2, r)
		case titleWordOverlap(title, q):
			tier3 = append(tier3, r)
		case tagContains(r.Tags, q):
			tier4 = append(tier4, r)
		}
	}

	out := make([]domain.RecipeRecord, 0, len(tier1)+len(tier2)+len(tier3)+len(tier4))
	out = append(out, tier1...)
	out = append(out, tier2...)
	out = append(out, tier3...)
	return append(out, tier4...)
}

// titleWordOverlap reports whether any word of the lowercased title
// contains q or is contained by q.
func titleWordOverlap(lowTitle, q string) bool {
	for _, w := range strings.Fields(lowTitle) {
		if strings.Contains(w, q) || strings.Contains(q, w) {
			return true
		}
	}
	return false
}

// tagContains reports whether any tag contains q as a substring.
func tagContains(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// FilterByTags returns the subsequence of recs whose tag set includes
// every selected tag, case-insensitively. An empty selection is the
// identity, not the empty set. Relative order is preserved.
func FilterByTags(recs []domain.RecipeRecord, selected []string) []domain.RecipeRecord {
	if len(selected) == 0 {
		return recs
	}

	out := make([]domain.RecipeRecord, 0, len(recs))
	for _, r := range recs {
		ok := true
		for _, tag := range selected {
			if !r.HasTag(tag) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

// Tags returns the distinct tag universe of recs, lowercased and
// sorted, for rendering the filter row.
func Tags(recs []domain.RecipeRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range recs {
		for _, t := range r.Tags {
			t = strings.ToLower(t)
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}
