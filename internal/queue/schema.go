package queue

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema changes.
// Users will need to clear their queue database after schema changes.
const schemaVersion = 1

// initSchema records the schema version on a new database and creates the
// collection table when it is not registered yet. It reports whether the
// collection was created by this call.
func initSchema(ctx context.Context, db *sql.DB, collection string) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var tableExists int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return false, fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return false, fmt.Errorf("create schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return false, fmt.Errorf("record schema version: %w", err)
		}
	} else {
		var version int
		err = tx.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
		if err != nil {
			return false, fmt.Errorf("read schema version: %w", err)
		}
		if version != schemaVersion {
			return false, fmt.Errorf("%w: database has version %d, expected %d (delete the database to reset the queue)",
				ErrSchemaMismatch, version, schemaVersion)
		}
	}

	var keyPath string
	err = tx.QueryRowContext(ctx, "SELECT key_path FROM collections WHERE name = ?", collection).Scan(&keyPath)
	switch {
	case err == nil:
		if keyPath != KeyPath {
			return false, fmt.Errorf("%w: collection %q is keyed by %q, expected %q",
				ErrSchemaMismatch, collection, keyPath, KeyPath)
		}
		return false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return false, fmt.Errorf("read collection %q: %w", collection, err)
	}

	create := `CREATE TABLE IF NOT EXISTS ` + quoteIdent(collection) + ` (
        key TEXT PRIMARY KEY,
        data TEXT NOT NULL,
        updated_at TEXT NOT NULL
    )`
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return false, fmt.Errorf("create collection %q: %w", collection, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO collections (name, key_path, created_at) VALUES (?, ?, ?)",
		collection, KeyPath, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return false, fmt.Errorf("register collection %q: %w", collection, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit schema: %w", err)
	}
	return true, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
