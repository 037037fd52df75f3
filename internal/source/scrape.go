package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*ScrapeSource)(nil)

// ScrapeSource extracts recipe cards from the rendered listing page.
// The markup convention is an anchor whose href ends in the slug, with
// a nested title element, a nested image, and a data-tags attribute of
// comma-separated tags. Scraped records reflect what is actually
// published right now, so the loader lets them win merge collisions.
type ScrapeSource struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

// NewScrapeSource creates a rendered-page scrape source. If client is
// nil, http.DefaultClient is used.
func NewScrapeSource(url string, client *http.Client, log *logger.Logger) *ScrapeSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &ScrapeSource{url: url, client: client, log: log}
}

// Name identifies the source in logs.
func (s *ScrapeSource) Name() string { return "scrape" }

// Fetch downloads the listing page and scrapes its recipe cards.
func (s *ScrapeSource) Fetch(ctx context.Context) ([]domain.RecipeRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", s.url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing listing page: %w", err)
	}

	recs := ParseListing(doc)
	if len(recs) == 0 {
		// A listing page with zero cards means the markup moved out
		// from under the selectors, not an empty catalog.
		return nil, fmt.Errorf("scraping %s: %w", s.url, domain.ErrEmptySource)
	}
	s.log.Debug("scrape %s listed %d recipes", s.url, len(recs))
	return recs, nil
}

// ParseListing walks a parsed listing document and returns the recipe
// cards it finds, in page order. Split out from Fetch so fixture-based
// tests can feed documents directly.
func ParseListing(doc *goquery.Document) []domain.RecipeRecord {
	var out []domain.RecipeRecord

	doc.Find("a.recipe-card, a[data-recipe]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}

		title := strings.TrimSpace(a.Find(".recipe-title, h2, h3").First().Text())

		var tags []string
		if attr, ok := a.Attr("data-tags"); ok {
			for _, t := range strings.Split(attr, ",") {
				if t = strings.TrimSpace(t); t != "" {
					tags = append(tags, t)
				}
			}
		}

		rec, ok := NewRecord(title, href, tags)
		if !ok {
			return
		}

		// Prefer the image the page actually renders over the
		// filename convention.
		if src, ok := a.Find("img").First().Attr("src"); ok && src != "" {
			rec.ImagePath = src
		}
		out = append(out, rec)
	})

	return out
}
