// Package config loads application configuration with koanf, layering
// struct defaults, an optional YAML file, and DISHDEX_-prefixed
// environment variables (highest priority).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are
// mapped onto config paths: DISHDEX_SOURCES_FEED_URL -> sources.feed_url.
const EnvPrefix = "DISHDEX_"

// defaultConfigPaths lists where the config file is searched, in order.
var defaultConfigPaths = []string{
	"dishdex.yaml",
	"dishdex.yml",
}

// Config is the full application configuration.
type Config struct {
	Sources SourcesConfig `koanf:"sources"`
	Cache   CacheConfig   `koanf:"cache"`
	Browse  BrowseConfig  `koanf:"browse"`
}

// SourcesConfig describes where recipe listings are fetched from.
// Any URL may be empty; the loader simply skips that source.
type SourcesConfig struct {
	// CatalogURL is the primary structured listing endpoint. It
	// returns a JSON array of {title, link, tags} entries.
	CatalogURL string `koanf:"catalog_url"`

	// FeedURL is a secondary RSS/Atom listing of recipe pages.
	FeedURL string `koanf:"feed_url"`

	// SitemapURL is a secondary sitemap-style list of page URLs.
	SitemapURL string `koanf:"sitemap_url"`

	// ListingURL is the rendered listing page scraped for recipe
	// cards when the structured sources under-deliver.
	ListingURL string `koanf:"listing_url"`

	// Timeout bounds each individual fetch attempt.
	Timeout time.Duration `koanf:"timeout"`

	// MinCatalogSize is the known full catalog size. A merged load
	// below this unions in the built-in fallback records.
	MinCatalogSize int `koanf:"min_catalog_size"`
}

// CacheConfig controls the local snapshot cache.
type CacheConfig struct {
	// Dir is the badger database directory.
	Dir string `koanf:"dir"`

	// TTL is how long a cached snapshot is served before it is
	// treated as absent.
	TTL time.Duration `koanf:"ttl"`
}

// BrowseConfig tunes the interactive browsing surface.
type BrowseConfig struct {
	// PageSize is how many results materialize per scroll window.
	PageSize int `koanf:"page_size"`

	// Debounce is how long to wait after the last keystroke before
	// evaluating the query.
	Debounce time.Duration `koanf:"debounce"`

	// GrowDelay staggers window growth so enter transitions can run.
	GrowDelay time.Duration `koanf:"grow_delay"`
}

// defaults returns a Config with all default values. These are applied
// first, then overridden by the config file and env vars.
func defaults() *Config {
	return &Config{
		Sources: SourcesConfig{
			CatalogURL:     "https://dishdex.dev/api/recipes.json",
			FeedURL:        "https://dishdex.dev/feed.xml",
			SitemapURL:     "https://dishdex.dev/sitemap.xml",
			ListingURL:     "https://dishdex.dev/recipes/",
			Timeout:        10 * time.Second,
			MinCatalogSize: 40,
		},
		Cache: CacheConfig{
			Dir: ".dishdex-cache",
			TTL: 24 * time.Hour,
		},
		Browse: BrowseConfig{
			PageSize:  12,
			Debounce:  275 * time.Millisecond,
			GrowDelay: 150 * time.Millisecond,
		},
	}
}

// Load reads configuration from defaults, then the YAML file at path
// (or the first default path that exists when path is empty), then
// environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform maps DISHDEX_SOURCES_FEED_URL onto sources.feed_url.
// Only the first underscore becomes a section separator; the rest stay
// part of the key name.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func findConfigFile() string {
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := home + "/.config/dishdex/dishdex.yaml"
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks that the tunables are usable.
func (c *Config) Validate() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Browse.PageSize <= 0 {
		return fmt.Errorf("browse.page_size must be positive, got %d", c.Browse.PageSize)
	}
	if c.Sources.MinCatalogSize < 0 {
		return fmt.Errorf("sources.min_catalog_size must not be negative, got %d", c.Sources.MinCatalogSize)
	}
	if c.Sources.Timeout <= 0 {
		return fmt.Errorf("sources.timeout must be positive, got %s", c.Sources.Timeout)
	}
	return nil
}
