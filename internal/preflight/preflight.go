package preflight

import (
	"context"

	"qrqueue/internal/config"
	"qrqueue/internal/queue"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the directory checks followed by the store check.
func RunAll(ctx context.Context, cfg *config.Config, store *queue.Store) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
	if store != nil {
		results = append(results, CheckStore(ctx, store))
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
