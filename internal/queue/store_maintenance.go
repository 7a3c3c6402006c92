package queue

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// DatabaseHealth captures diagnostic information about the queue database.
type DatabaseHealth struct {
	DBPath           string
	Collection       string
	DatabaseExists   bool
	DatabaseReadable bool
	SchemaVersion    int
	CollectionExists bool
	IntegrityCheck   bool
	TotalItems       int
	Error            string
}

// CheckHealth inspects the database without creating it. When the file does
// not exist yet the report says so and no handle is opened.
func (s *Store) CheckHealth(ctx context.Context) (DatabaseHealth, error) {
	health := DatabaseHealth{DBPath: s.path, Collection: s.collection}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return health, nil
		}
		return health, storageError("health", fmt.Errorf("stat queue database: %w", err))
	}
	if info.IsDir() {
		return health, storageError("health", fmt.Errorf("queue database path %q is a directory", s.path))
	}
	health.DatabaseExists = true

	db, err := s.handle(ctx)
	if err != nil {
		health.Error = err.Error()
		return health, err
	}

	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.PingContext(connCtx); err != nil {
		health.Error = err.Error()
		return health, storageError("health", fmt.Errorf("ping queue database: %w", err))
	}
	health.DatabaseReadable = true

	if err := db.QueryRowContext(connCtx, "SELECT version FROM schema_version LIMIT 1").Scan(&health.SchemaVersion); err != nil {
		health.Error = err.Error()
		return health, storageError("health", fmt.Errorf("read schema version: %w", err))
	}

	var registered int
	if err := db.QueryRowContext(connCtx, "SELECT COUNT(1) FROM collections WHERE name = ?", s.collection).Scan(&registered); err != nil {
		health.Error = err.Error()
		return health, storageError("health", fmt.Errorf("query collections: %w", err))
	}
	health.CollectionExists = registered == 1

	var integrity string
	if err := db.QueryRowContext(connCtx, "PRAGMA integrity_check").Scan(&integrity); err != nil {
		health.Error = err.Error()
		return health, storageError("health", fmt.Errorf("integrity check: %w", err))
	}
	health.IntegrityCheck = integrity == "ok"

	if health.CollectionExists {
		if err := db.QueryRowContext(connCtx, "SELECT COUNT(*) FROM "+s.table).Scan(&health.TotalItems); err != nil {
			health.Error = err.Error()
			return health, storageError("health", fmt.Errorf("count items: %w", err))
		}
	}
	return health, nil
}
