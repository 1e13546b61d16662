// Package testutil provides test helpers for setting up in-memory local
// stores, test configuration, and assertions.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"walletbook/internal/localstore"
)

var storeSeq atomic.Int64

// SetupTestStore creates an in-memory SQLite-backed local store unique to
// this test.
func SetupTestStore(t *testing.T) *localstore.Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, storeSeq.Add(1))

	store, err := localstore.Open(dsn)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return store
}

// TeardownTestStore closes the underlying database connection.
func TeardownTestStore(t *testing.T, store *localstore.Store) {
	t.Helper()

	if err := store.Close(); err != nil {
		t.Errorf("failed to close test store: %v", err)
	}
}
