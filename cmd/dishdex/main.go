// DishDex — a terminal recipe catalog browser.
//
// Usage:
//
//	dishdex [-verbose] [-quiet] [-config path] [-refresh] [-no-cache]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/dishdex/internal/cache"
	"github.com/hammamikhairi/dishdex/internal/catalog"
	"github.com/hammamikhairi/dishdex/internal/config"
	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/loader"
	"github.com/hammamikhairi/dishdex/internal/logger"
	"github.com/hammamikhairi/dishdex/internal/source"
	"github.com/hammamikhairi/dishdex/internal/tui"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".dishdex-logs/dishdex.log", "file to write logs to (use \"stderr\" to log to console)")
	configPath := flag.String("config", "", "path to a config file (default: dishdex.yaml, then the user config dir)")
	cacheDir := flag.String("cache-dir", "", "override the snapshot cache directory")
	noCache := flag.Bool("no-cache", false, "keep the catalog in memory only, never touch disk")
	refresh := flag.Bool("refresh", false, "ignore the cached catalog and reload from the network")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package to the same output so nothing
	// scribbles over the alternate screen.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *cacheDir != "" {
		cfg.Cache.Dir = *cacheDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire the recipe sources. Every URL is optional; the loader skips
	// nil sources and falls back to the built-in dataset at worst.
	client := &http.Client{Timeout: cfg.Sources.Timeout}

	var primary domain.RecipeSource
	if cfg.Sources.CatalogURL != "" {
		primary = source.NewEndpointSource(cfg.Sources.CatalogURL, client, log)
	}

	var secondaries []domain.RecipeSource
	if cfg.Sources.FeedURL != "" {
		secondaries = append(secondaries, source.NewFeedSource(cfg.Sources.FeedURL, client, log))
	}
	if cfg.Sources.SitemapURL != "" {
		secondaries = append(secondaries, source.NewSitemapSource(cfg.Sources.SitemapURL, client, log))
	}

	var scrape domain.RecipeSource
	if cfg.Sources.ListingURL != "" {
		scrape = source.NewScrapeSource(cfg.Sources.ListingURL, client, log)
	}

	ld := loader.New(primary, secondaries, scrape, log,
		loader.WithMinCatalogSize(cfg.Sources.MinCatalogSize),
	)

	// Snapshot cache: badger on disk unless -no-cache asked for a
	// memory-only session. A failed open degrades the same way.
	var snapCache domain.SnapshotCache
	if *noCache {
		snapCache = cache.NewMemory(cfg.Cache.TTL, nil)
	} else {
		store, err := cache.Open(cfg.Cache.Dir, cfg.Cache.TTL, log)
		if err != nil {
			log.Warn("opening snapshot cache at %s: %v (running memory-only)", cfg.Cache.Dir, err)
			snapCache = cache.NewMemory(cfg.Cache.TTL, nil)
		} else {
			defer store.Close()
			snapCache = store
		}
	}

	eng := catalog.New(ld, snapCache, log,
		catalog.WithMinCatalogSize(cfg.Sources.MinCatalogSize),
	)

	ui := tui.New(eng, cfg.Browse.PageSize, cfg.Browse.Debounce, cfg.Browse.GrowDelay, log)

	// Bring the catalog up once the event loop is running, so swap
	// notifications always land in a live program.
	go func() {
		ui.WaitReady()
		if *refresh {
			log.Info("-refresh: skipping the cached catalog")
			eng.Refresh(ctx)
		} else {
			eng.Start(ctx)
		}
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}
