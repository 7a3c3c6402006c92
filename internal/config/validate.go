package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	databaseNamePattern   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	collectionNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateScanner(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateStore() error {
	if !databaseNamePattern.MatchString(c.Store.Database) {
		return fmt.Errorf("store.database %q must only contain %s characters", c.Store.Database, storeNamePatternDisplay)
	}
	if !collectionNamePattern.MatchString(c.Store.Collection) {
		return fmt.Errorf("store.collection %q must match %s", c.Store.Collection, collectionPatternDisplay)
	}
	switch strings.ToLower(c.Store.Collection) {
	case "schema_version", "collections":
		return fmt.Errorf("store.collection %q is reserved", c.Store.Collection)
	}
	if strings.HasPrefix(strings.ToLower(c.Store.Collection), "sqlite_") {
		return fmt.Errorf("store.collection %q is reserved", c.Store.Collection)
	}
	return nil
}

func (c *Config) validateScanner() error {
	if c.Scanner.Concurrency > maxScannerConcurrency {
		return fmt.Errorf("scanner.concurrency must be at most %d", maxScannerConcurrency)
	}
	return nil
}

func (c *Config) validateRender() error {
	if err := CheckRenderSize(c.Render.Size); err != nil {
		return fmt.Errorf("render.size %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

// CheckRenderSize reports whether size is an accepted QR label edge length.
func CheckRenderSize(size int) error {
	if size < minRenderSize || size > maxRenderSize {
		return fmt.Errorf("must be between %d and %d", minRenderSize, maxRenderSize)
	}
	return nil
}
