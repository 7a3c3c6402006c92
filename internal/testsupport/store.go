package testsupport

import (
	"context"
	"testing"

	"qrqueue/internal/config"
	"qrqueue/internal/queue"
)

// MustOpenStore builds a queue.Store for tests and registers cleanup. The
// store is still lazy; the first operation opens the database.
func MustOpenStore(t testing.TB, cfg *config.Config, opts ...queue.Option) *queue.Store {
	t.Helper()

	store := queue.New(cfg, opts...)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// MustAdd stores item or fails the test.
func MustAdd(t testing.TB, store *queue.Store, item queue.Item) {
	t.Helper()

	if err := store.Add(context.Background(), item); err != nil {
		t.Fatalf("store.Add: %v", err)
	}
}

// MustList returns every stored item or fails the test.
func MustList(t testing.TB, store *queue.Store) []queue.Item {
	t.Helper()

	items, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("store.List: %v", err)
	}
	return items
}
