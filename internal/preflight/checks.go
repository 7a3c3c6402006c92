package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"qrqueue/internal/queue"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckStore summarizes the queue database health. A database that does not
// exist yet passes; it is created on the first add.
func CheckStore(ctx context.Context, store *queue.Store) Result {
	return StoreResult(store.CheckHealth(ctx))
}

// StoreResult turns a health report and its error into a check result.
func StoreResult(health queue.DatabaseHealth, err error) Result {
	const name = "Queue database"

	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", health.DBPath, err)}
	}
	switch {
	case !health.DatabaseExists:
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (not created yet)", health.DBPath)}
	case !health.IntegrityCheck:
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: integrity check failed)", health.DBPath)}
	case !health.CollectionExists:
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: collection %q missing)", health.DBPath, health.Collection)}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%s (schema v%d, %d queued)", health.DBPath, health.SchemaVersion, health.TotalItems),
	}
}
