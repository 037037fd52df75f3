package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*SitemapSource)(nil)

// SitemapSource reads a sitemap-style list of page URLs. The sitemap
// carries no titles or tags, so everything beyond the slug is derived:
// the title from the slug, the tags from the keyword table.
type SitemapSource struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

// NewSitemapSource creates a sitemap source. If client is nil,
// http.DefaultClient is used.
func NewSitemapSource(url string, client *http.Client, log *logger.Logger) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{url: url, client: client, log: log}
}

// Name identifies the source in logs.
func (s *SitemapSource) Name() string { return "sitemap" }

// urlset mirrors the <urlset><url><loc> sitemap shape.
type urlset struct {
	URLs []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

// Fetch downloads and parses the sitemap, keeping only recipe page
// URLs (the index page itself and non-recipe pages yield empty or
// known non-recipe slugs and are dropped).
func (s *SitemapSource) Fetch(ctx context.Context) ([]domain.RecipeRecord, error) {
	body, err := get(ctx, s.client, s.url)
	if err != nil {
		return nil, err
	}

	var set urlset
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("decoding sitemap: %w", err)
	}

	out := make([]domain.RecipeRecord, 0, len(set.URLs))
	for _, u := range set.URLs {
		loc := strings.TrimSpace(u.Loc)
		i := strings.Index(loc, "/recipes/")
		if i < 0 {
			continue
		}
		// Skip the listing index itself: nothing after /recipes/.
		if strings.Trim(loc[i+len("/recipes/"):], "/") == "" {
			continue
		}
		if rec, ok := NewRecord("", loc, nil); ok {
			out = append(out, rec)
		}
	}
	s.log.Debug("sitemap %s listed %d recipes", s.url, len(out))
	return out, nil
}
