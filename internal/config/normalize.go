package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeStore()
	c.normalizeScanner()
	c.normalizeRender()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("QRQUEUE_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}

	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeStore() {
	c.Store.Database = strings.TrimSpace(c.Store.Database)
	if c.Store.Database == "" {
		c.Store.Database = defaultDatabase
	}
	c.Store.Collection = strings.TrimSpace(c.Store.Collection)
	if c.Store.Collection == "" {
		c.Store.Collection = defaultCollection
	}
}

func (c *Config) normalizeScanner() {
	if c.Scanner.Concurrency <= 0 {
		c.Scanner.Concurrency = defaultScannerWorkers
	}
}

func (c *Config) normalizeRender() {
	if c.Render.Size <= 0 {
		c.Render.Size = defaultRenderSize
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("QRQUEUE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
