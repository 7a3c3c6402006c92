package preflight

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qrqueue/internal/queue"
	"qrqueue/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckStore_NotCreated(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	result := CheckStore(context.Background(), store)
	if !result.Passed {
		t.Fatalf("expected pass for missing database, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "not created yet") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
	if _, err := os.Stat(cfg.DatabasePath()); !os.IsNotExist(err) {
		t.Fatalf("health check must not create the database, stat err=%v", err)
	}
}

func TestCheckStore_WithItems(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.MustAdd(t, store, queue.Item{"id": "a1", "code": "QR123"})

	result := CheckStore(context.Background(), store)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "schema v1, 1 queued") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckStore_DatabasePathIsDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.DatabasePath(), 0o755); err != nil {
		t.Fatal(err)
	}
	store := testsupport.MustOpenStore(t, cfg)

	result := CheckStore(context.Background(), store)
	if result.Passed {
		t.Fatalf("expected failure, got: %s", result.Detail)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	store := testsupport.MustOpenStore(t, cfg)

	results := RunAll(context.Background(), cfg, store)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if Failed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}

	if got := RunAll(context.Background(), nil, store); got != nil {
		t.Fatalf("expected nil results for nil config, got %+v", got)
	}
}

func TestRunAll_MissingDirectories(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	results := RunAll(context.Background(), cfg, nil)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !Failed(results) {
		t.Fatal("expected missing directories to fail")
	}
}

func TestStoreResult(t *testing.T) {
	cases := []struct {
		name   string
		health queue.DatabaseHealth
		err    error
		passed bool
		detail string
	}{
		{name: "error", health: queue.DatabaseHealth{DBPath: "/q.db"}, err: errors.New("boom"), detail: "error: boom"},
		{name: "missing", health: queue.DatabaseHealth{DBPath: "/q.db"}, passed: true, detail: "not created yet"},
		{name: "corrupt", health: queue.DatabaseHealth{DBPath: "/q.db", DatabaseExists: true}, detail: "integrity check failed"},
		{name: "no collection", health: queue.DatabaseHealth{DBPath: "/q.db", Collection: "queue", DatabaseExists: true, IntegrityCheck: true}, detail: `collection "queue" missing`},
		{name: "ok", health: queue.DatabaseHealth{DBPath: "/q.db", DatabaseExists: true, IntegrityCheck: true, CollectionExists: true, SchemaVersion: 1, TotalItems: 3}, passed: true, detail: "schema v1, 3 queued"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StoreResult(tc.health, tc.err)
			if got.Passed != tc.passed {
				t.Fatalf("expected passed=%v, got %+v", tc.passed, got)
			}
			if !strings.Contains(got.Detail, tc.detail) {
				t.Fatalf("expected detail containing %q, got %q", tc.detail, got.Detail)
			}
		})
	}
}
