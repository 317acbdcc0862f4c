// Package storetest opens throwaway in-memory stores for tests.
package storetest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/alphaquant/academy/internal/store"
)

// Open returns a migrated in-memory store closed at test cleanup. Each call
// gets its own database.
func Open(t testing.TB) *store.Store {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
