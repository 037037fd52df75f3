package source

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*FeedSource)(nil)

// FeedSource reads a secondary structured listing from an RSS/Atom
// feed of recipe pages. Item links give the slug, item titles are kept
// verbatim, and feed categories become tags; items without categories
// get inferred tags.
type FeedSource struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

// NewFeedSource creates a feed source. If client is nil,
// http.DefaultClient is used.
func NewFeedSource(url string, client *http.Client, log *logger.Logger) *FeedSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedSource{url: url, client: client, log: log}
}

// Name identifies the source in logs.
func (s *FeedSource) Name() string { return "feed" }

// Fetch parses the feed and normalizes each item into a record.
func (s *FeedSource) Fetch(ctx context.Context) ([]domain.RecipeRecord, error) {
	fp := gofeed.NewParser()
	fp.Client = s.client

	feed, err := fp.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", s.url, err)
	}

	out := make([]domain.RecipeRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		if rec, ok := NewRecord(item.Title, item.Link, item.Categories); ok {
			out = append(out, rec)
		}
	}
	s.log.Debug("feed %s listed %d recipes", s.url, len(out))
	return out, nil
}
