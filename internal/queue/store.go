package queue

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"qrqueue/internal/config"
	"qrqueue/internal/logging"
)

const (
	busyTimeoutMillis = 5000
	lockPollInterval  = 25 * time.Millisecond
)

// State is the lifecycle state of a Store.
type State int32

const (
	// StateUninitialized means no database handle has been opened yet.
	StateUninitialized State = iota
	// StateReady means the handle is open and the collection exists.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger routes store diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logging.NewComponentLogger(logger, "store")
	}
}

// Store manages queue persistence backed by SQLite.
type Store struct {
	path       string
	collection string
	table      string
	logger     *slog.Logger

	mu sync.Mutex
	db atomic.Pointer[sql.DB]
}

// New prepares a store for the configured database and collection. Nothing
// touches disk until the first operation.
func New(cfg *config.Config, opts ...Option) *Store {
	s := &Store{
		path:       cfg.DatabasePath(),
		collection: cfg.Store.Collection,
		table:      quoteIdent(cfg.Store.Collection),
		logger:     logging.NewComponentLogger(nil, "store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Collection returns the collection name items are stored in.
func (s *Store) Collection() string { return s.collection }

// State reports whether the database handle has been opened.
func (s *Store) State() State {
	if s.db.Load() != nil {
		return StateReady
	}
	return StateUninitialized
}

// handle returns the shared database handle, opening it on first use.
// A failed open leaves the store uninitialized so a later call can try again.
func (s *Store) handle(ctx context.Context) (*sql.DB, error) {
	if db := s.db.Load(); db != nil {
		return db, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if db := s.db.Load(); db != nil {
		return db, nil
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, storageError("open", err)
	}
	s.db.Store(db)
	return db, nil
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
	}

	// Serialize first use across processes sharing the database file.
	lock := flock.New(s.path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockPollInterval)
	if err != nil {
		return nil, fmt.Errorf("acquire init lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("acquire init lock: %s is held", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_txlock=immediate", s.path, busyTimeoutMillis)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	created, err := initSchema(ctx, db, s.collection)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if created {
		s.logger.Info("collection created",
			logging.String("collection", s.collection),
			logging.String("key_path", KeyPath),
			logging.String("path", s.path),
		)
	}
	s.logger.Debug("queue database ready", logging.String("path", s.path))
	return db, nil
}

// Close releases the database handle and returns the store to the
// uninitialized state; the next operation reopens it.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	db := s.db.Swap(nil)
	if db == nil {
		return nil
	}
	return db.Close()
}
