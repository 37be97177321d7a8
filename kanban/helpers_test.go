package kanban

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/jmorales/pizarra/internal/kv"
)

var errMemFail = errors.New("simulated write failure")

// fakeClock is an adjustable clock for deterministic tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// newTestStore opens a store over a fresh in-memory kv store with an
// adjustable clock.
func newTestStore(t *testing.T) (*Store, *kv.MemStore, *fakeClock) {
	t.Helper()

	mem := kv.NewMemStore()
	clock := newFakeClock()
	store := Open(mem, Options{Now: clock.Now})
	return store, mem, clock
}

// newTestStoreDiag opens a test store that records diagnostics.
func newTestStoreDiag(t *testing.T) (*Store, *kv.MemStore, *fakeClock, *bytes.Buffer) {
	t.Helper()

	mem := kv.NewMemStore()
	clock := newFakeClock()
	var diag bytes.Buffer
	store := Open(mem, Options{Now: clock.Now, Diagnostics: &diag})
	return store, mem, clock, &diag
}

// kvWith returns a MemStore preloaded with one entry.
func kvWith(t *testing.T, key, value string) *kv.MemStore {
	t.Helper()

	mem := kv.NewMemStore()
	if err := mem.Set(key, value); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return mem
}

func mustCreate(t *testing.T, store *Store, title string, priority Priority) *Task {
	t.Helper()

	task := store.Create(title, priority, "")
	if task == nil {
		t.Fatalf("failed to create task %q", title)
	}
	return task
}
