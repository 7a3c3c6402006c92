package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"qrqueue/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("QRQUEUE_DATA_DIR", "")
	t.Chdir(tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "qrqueue")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Store.Database != "upload-db" {
		t.Fatalf("unexpected database name: %q", cfg.Store.Database)
	}
	if cfg.Store.Collection != "queue" {
		t.Fatalf("unexpected collection name: %q", cfg.Store.Collection)
	}
	if got, want := cfg.DatabasePath(), filepath.Join(wantData, "upload-db.db"); got != want {
		t.Fatalf("unexpected database path: got %q want %q", got, want)
	}
	if cfg.Scanner.Concurrency != config.Default().Scanner.Concurrency {
		t.Fatalf("unexpected scanner concurrency: %d", cfg.Scanner.Concurrency)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "qrqueue.toml")

	type payload struct {
		Paths struct {
			DataDir string `toml:"data_dir"`
		} `toml:"paths"`
		Store struct {
			Database   string `toml:"database"`
			Collection string `toml:"collection"`
		} `toml:"store"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.DataDir = filepath.Join(tempDir, "data")
	custom.Store.Database = "scans"
	custom.Store.Collection = "pending"
	custom.Logging.Format = "JSON"
	custom.Logging.Level = " Debug "

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Paths.DataDir != custom.Paths.DataDir {
		t.Fatalf("unexpected data dir: %q", cfg.Paths.DataDir)
	}
	if cfg.Store.Database != "scans" || cfg.Store.Collection != "pending" {
		t.Fatalf("unexpected store config: %+v", cfg.Store)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging config, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "qrqueue.toml")
	if err := os.WriteFile(configPath, []byte("[store]\nbogus = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected parse error for unknown key")
	}
}

func TestDataDirEnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "override")
	t.Setenv("QRQUEUE_DATA_DIR", override)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DataDir != override {
		t.Fatalf("expected env override %q, got %q", override, cfg.Paths.DataDir)
	}
}

func TestValidateStoreNames(t *testing.T) {
	cases := []struct {
		name       string
		database   string
		collection string
		wantErr    string
	}{
		{name: "defaults", database: "upload-db", collection: "queue"},
		{name: "database with slash", database: "../escape", collection: "queue", wantErr: "store.database"},
		{name: "collection with dash", database: "upload-db", collection: "my-queue", wantErr: "store.collection"},
		{name: "reserved collection", database: "upload-db", collection: "schema_version", wantErr: "reserved"},
		{name: "sqlite internal", database: "upload-db", collection: "sqlite_master", wantErr: "reserved"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Paths.DataDir = t.TempDir()
			cfg.Paths.LogDir = t.TempDir()
			cfg.Store.Database = tc.database
			cfg.Store.Collection = tc.collection
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Store.Collection != "queue" {
		t.Fatalf("unexpected sample collection: %q", cfg.Store.Collection)
	}
}

func TestCheckRenderSize(t *testing.T) {
	for _, size := range []int{64, 256, 4096} {
		if err := config.CheckRenderSize(size); err != nil {
			t.Fatalf("CheckRenderSize(%d) unexpected error: %v", size, err)
		}
	}
	for _, size := range []int{0, 63, 4097} {
		if err := config.CheckRenderSize(size); err == nil {
			t.Fatalf("CheckRenderSize(%d) expected error", size)
		}
	}

	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Render.Size = 10
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "render.size") {
		t.Fatalf("expected render.size error, got %v", err)
	}
}
