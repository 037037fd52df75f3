package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Browse.PageSize != 12 {
		t.Errorf("page size = %d, want 12", cfg.Browse.PageSize)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("ttl = %s, want 24h", cfg.Cache.TTL)
	}
	if cfg.Sources.MinCatalogSize != 40 {
		t.Errorf("min catalog size = %d, want 40", cfg.Sources.MinCatalogSize)
	}
	if cfg.Sources.Timeout != 10*time.Second {
		t.Errorf("timeout = %s, want 10s", cfg.Sources.Timeout)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dishdex.yaml")
	body := []byte("browse:\n  page_size: 20\nsources:\n  feed_url: \"\"\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Browse.PageSize != 20 {
		t.Errorf("page size = %d, want 20 from file", cfg.Browse.PageSize)
	}
	if cfg.Sources.FeedURL != "" {
		t.Errorf("feed url = %q, want cleared by file", cfg.Sources.FeedURL)
	}
	// Untouched keys keep their defaults.
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("ttl = %s, want default 24h", cfg.Cache.TTL)
	}
}

func TestLoadEnvOverridesEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dishdex.yaml")
	if err := os.WriteFile(path, []byte("browse:\n  page_size: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DISHDEX_BROWSE_PAGE_SIZE", "6")
	t.Setenv("DISHDEX_SOURCES_CATALOG_URL", "https://example.com/recipes.json")
	t.Setenv("DISHDEX_CACHE_TTL", "1h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Browse.PageSize != 6 {
		t.Errorf("page size = %d, want env value 6", cfg.Browse.PageSize)
	}
	if cfg.Sources.CatalogURL != "https://example.com/recipes.json" {
		t.Errorf("catalog url = %q", cfg.Sources.CatalogURL)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("ttl = %s, want env value 1h", cfg.Cache.TTL)
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"DISHDEX_BROWSE_PAGE_SIZE", "browse.page_size"},
		{"DISHDEX_SOURCES_FEED_URL", "sources.feed_url"},
		{"DISHDEX_CACHE_DIR", "cache.dir"},
	}
	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"zero page size", func(c *Config) { c.Browse.PageSize = 0 }, true},
		{"negative min catalog size", func(c *Config) { c.Sources.MinCatalogSize = -1 }, true},
		{"zero timeout", func(c *Config) { c.Sources.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
