package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"qrqueue/internal/config"
	"qrqueue/internal/logging"
	"qrqueue/internal/queue"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	storeMu sync.Mutex
	store   *queue.Store
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger falls back to a no-op logger when the log file cannot be
// opened; logging problems never block queue operations.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// ensureStore returns the process-wide queue store. The store opens its
// database lazily on the first operation.
func (c *commandContext) ensureStore() (*queue.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.storeMu.Lock()
	defer c.storeMu.Unlock()
	if c.store == nil {
		c.store = queue.New(cfg, queue.WithLogger(c.ensureLogger()))
	}
	return c.store, nil
}

func (c *commandContext) withStore(fn func(*queue.Store) error) error {
	store, err := c.ensureStore()
	if err != nil {
		return err
	}
	return fn(store)
}

func (c *commandContext) close() error {
	c.storeMu.Lock()
	defer c.storeMu.Unlock()
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
