// Package cache persists the most recently loaded catalog snapshot in
// a local key-value store so a fresh run can serve results immediately
// while a refresh happens in the background. Entries expire after a
// TTL; expired or corrupt entries read as a plain miss, never an error
// of their own.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/hammamikhairi/dishdex/internal/domain"
	"github.com/hammamikhairi/dishdex/internal/logger"
)

// snapshotKey is the fixed cache name the envelope is stored under.
const snapshotKey = "catalog:snapshot"

// envelope is the JSON-serializable stored shape.
type envelope struct {
	Timestamp time.Time             `json:"timestamp"`
	Recipes   []domain.RecipeRecord `json:"recipes"`
}

// Compile-time interface check.
var _ domain.SnapshotCache = (*Store)(nil)

// Option configures the store.
type Option func(*Store)

// WithClock overrides time.Now for expiry tests.
func WithClock(now domain.Clock) Option {
	return func(s *Store) { s.now = now }
}

// Store is a badger-backed snapshot cache.
type Store struct {
	db  *badger.DB
	ttl time.Duration
	now domain.Clock
	log *logger.Logger
}

// Open opens (or creates) the badger database at dir.
func Open(dir string, ttl time.Duration, log *logger.Logger, opts ...Option) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("opening cache at %s: %w", dir, err)
	}

	s := &Store{db: db, ttl: ttl, now: time.Now, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Read returns the stored snapshot, or domain.ErrCacheMiss when the
// entry is absent, older than the TTL, or unparseable.
func (s *Store) Read(ctx context.Context) (*domain.CatalogSnapshot, error) {
	var env envelope

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.ErrCacheMiss
		}
		if err != nil {
			return fmt.Errorf("reading cache: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &env)
		})
	})
	if errors.Is(err, domain.ErrCacheMiss) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		// Corrupt bytes are a miss, not a failure.
		s.log.Warn("cache unreadable, treating as miss: %v", err)
		return nil, domain.ErrCacheMiss
	}

	if s.now().Sub(env.Timestamp) > s.ttl {
		s.log.Debug("cache entry from %s expired", env.Timestamp.Format(time.RFC3339))
		return nil, domain.ErrCacheMiss
	}

	return &domain.CatalogSnapshot{Recipes: env.Recipes, LoadedAt: env.Timestamp}, nil
}

// Write replaces the stored snapshot.
func (s *Store) Write(ctx context.Context, snap *domain.CatalogSnapshot) error {
	data, err := json.Marshal(envelope{Timestamp: snap.LoadedAt, Recipes: snap.Recipes})
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKey), data)
	})
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// writeRaw stores arbitrary bytes under the snapshot key. Test hook
// for corruption scenarios.
func (s *Store) writeRaw(val []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKey), val)
	})
}
