// Package source provides recipe listing source implementations and
// the normalization that folds their differing shapes into one record
// form. Every source returns records with the slug as primary key, a
// human-cased title, an image path, lowercase tags, and a precomputed
// search-term bag.
package source

import (
	"net/url"
	"strings"

	"github.com/hammamikhairi/dishdex/internal/domain"
)

// SlugFromURL derives the slug from a page URL or link: the last path
// segment with any extension stripped, lowercased.
//
//	https://example.com/recipes/pad-thai.html -> pad-thai
func SlugFromURL(raw string) string {
	s := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		s = u.Path
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "."); i > 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// TitleFromSlug builds a display title by splitting the slug on
// hyphens and capitalizing each word. Used when a source carries no
// explicit title.
func TitleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ImagePath resolves the representative image for a slug: the
// convention images/{slug}.jpg, unless the slug is in the historical
// exception table.
func ImagePath(slug string) string {
	if p, ok := imageExceptions[slug]; ok {
		return p
	}
	return "images/" + slug + ".jpg"
}

// InferTags guesses tags for a tag-less record by matching each
// keyword-table entry as a substring of the slug. Heuristic; callers
// only use it when the source itself carried no tags.
func InferTags(slug string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, kt := range keywordTags {
		if !strings.Contains(slug, kt.keyword) {
			continue
		}
		for _, t := range kt.tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// SearchTerms builds the space-joined lowercase term bag for a record:
// the full title, the slug with hyphens as spaces, every title/slug
// word longer than 2 characters, the tags, synonym expansions whose
// key is a substring of the slug or title, and the generic tail.
// Deduplicated, insertion order preserved.
func SearchTerms(title, slug string, tags []string) string {
	lowTitle := strings.ToLower(title)
	slugSpaced := strings.ReplaceAll(slug, "-", " ")

	var terms []string
	seen := make(map[string]bool)
	add := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		terms = append(terms, t)
	}

	add(lowTitle)
	add(slugSpaced)
	for _, w := range strings.Fields(lowTitle) {
		if len(w) > 2 {
			add(w)
		}
	}
	for _, w := range strings.Split(slug, "-") {
		if len(w) > 2 {
			add(w)
		}
	}
	for _, t := range tags {
		add(strings.ToLower(t))
	}
	for _, row := range synonyms {
		if strings.Contains(slug, row.key) || strings.Contains(lowTitle, row.key) {
			for _, syn := range row.synonyms {
				add(syn)
			}
		}
	}
	for _, t := range genericTerms {
		add(t)
	}

	return strings.Join(terms, " ")
}

// NewRecord assembles a fully normalized record from whatever a source
// managed to extract. link is required (the slug comes from it); title
// and tags are optional and derived/inferred when missing.
func NewRecord(title, link string, tags []string) (domain.RecipeRecord, bool) {
	slug := SlugFromURL(link)
	if slug == "" {
		return domain.RecipeRecord{}, false
	}
	if strings.TrimSpace(title) == "" {
		title = TitleFromSlug(slug)
	}
	tags = normalizeTags(tags)
	if len(tags) == 0 {
		tags = InferTags(slug)
	}
	return domain.RecipeRecord{
		Title:       strings.TrimSpace(title),
		Slug:        slug,
		ImagePath:   ImagePath(slug),
		Tags:        tags,
		SearchTerms: SearchTerms(title, slug, tags),
	}, true
}

// normalizeTags lowercases, trims, and deduplicates a tag list,
// preserving first-seen order.
func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
