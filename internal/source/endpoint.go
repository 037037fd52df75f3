package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*EndpointSource)(nil)

// EndpointSource fetches the primary structured listing: a JSON array
// of {title, link, tags} entries that already carries tags.
type EndpointSource struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

// NewEndpointSource creates a structured endpoint source. If client is
// nil, http.DefaultClient is used.
func NewEndpointSource(url string, client *http.Client, log *logger.Logger) *EndpointSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &EndpointSource{url: url, client: client, log: log}
}

// Name identifies the source in logs.
func (s *EndpointSource) Name() string { return "endpoint" }

// listingEntry mirrors the endpoint's wire shape.
type listingEntry struct {
	Title string   `json:"title"`
	Link  string   `json:"link"`
	Tags  []string `json:"tags"`
}

// Fetch GETs the endpoint and normalizes every entry. A non-200
// response or malformed payload is an error; the caller decides
// whether to fall back.
func (s *EndpointSource) Fetch(ctx context.Context) ([]domain.RecipeRecord, error) {
	body, err := get(ctx, s.client, s.url)
	if err != nil {
		return nil, err
	}

	var entries []listingEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding listing: %w", err)
	}

	out := make([]domain.RecipeRecord, 0, len(entries))
	for _, e := range entries {
		if rec, ok := NewRecord(e.Title, e.Link, e.Tags); ok {
			out = append(out, rec)
		}
	}
	s.log.Debug("endpoint %s listed %d recipes", s.url, len(out))
	return out, nil
}

// get performs a bounded GET and returns the body. Shared by the
// sources that read raw bytes.
func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	// Listings are small; 4 MiB is well past any real payload.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return body, nil
}
