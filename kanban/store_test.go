package kanban

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOpen_EmptyStore(t *testing.T) {
	store, _, _ := newTestStore(t)

	for _, col := range ValidColumns() {
		if got := store.Column(col); got == nil || len(got) != 0 {
			t.Errorf("column %s: expected empty list, got %v", col, got)
		}
	}
	if events := store.Events(); events == nil || len(events) != 0 {
		t.Errorf("expected empty event log, got %v", events)
	}
}

func TestOpen_CorruptRecordStartsEmpty(t *testing.T) {
	mem := kvWith(t, StorageKey, "{not json")
	var diag strings.Builder
	store := Open(mem, Options{Diagnostics: &diag})

	if got := len(store.Column(ColumnTodo)); got != 0 {
		t.Errorf("expected empty board, got %d tasks", got)
	}
	if diag.Len() == 0 {
		t.Error("expected a diagnostic for the corrupt record")
	}
}

func TestOpen_NormalizesMissingLists(t *testing.T) {
	mem := kvWith(t, StorageKey, `{"version":2,"tasks":{"todo":[{"id":"t_1","title":"only","priority":"normal"}]}}`)
	store := Open(mem, Options{})

	if got := len(store.Column(ColumnTodo)); got != 1 {
		t.Fatalf("expected 1 todo task, got %d", got)
	}
	if store.Column(ColumnInProgress) == nil || store.Column(ColumnDone) == nil {
		t.Error("expected missing columns normalized to empty lists")
	}
	if store.Events() == nil {
		t.Error("expected missing event log normalized to empty list")
	}
}

func TestSave_AlwaysWritesArrays(t *testing.T) {
	store, mem, _ := newTestStore(t)
	task := mustCreate(t, store, "only", PriorityNormal)
	store.Delete(task.ID, ColumnTodo)

	raw, ok, _ := mem.Get(StorageKey)
	if !ok {
		t.Fatal("expected persisted record")
	}

	var rec map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	var tasks map[string]json.RawMessage
	if err := json.Unmarshal(rec["tasks"], &tasks); err != nil {
		t.Fatalf("tasks is not an object: %v", err)
	}
	for _, col := range ValidColumns() {
		raw, ok := tasks[string(col)]
		if !ok {
			t.Fatalf("missing column %s", col)
		}
		if !strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
			t.Errorf("column %s: expected array, got %s", col, raw)
		}
	}
}

func TestAppendEvent(t *testing.T) {
	store, _, clock := newTestStore(t)

	event := store.AppendEvent(EventCreated, EventPayload{TaskID: "t_x"})
	if !strings.HasPrefix(event.ID, "e_") {
		t.Errorf("expected e_ id prefix, got %q", event.ID)
	}
	if !event.Timestamp.Equal(clock.Now()) {
		t.Errorf("expected timestamp %v, got %v", clock.Now(), event.Timestamp)
	}
	if got := len(store.Events()); got != 1 {
		t.Errorf("expected 1 event, got %d", got)
	}
}

func TestIDsAreUniqueUnderFixedClock(t *testing.T) {
	store, _, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		task := mustCreate(t, store, "same title", PriorityNormal)
		if seen[task.ID] {
			t.Fatalf("duplicate ID %q", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestLocate(t *testing.T) {
	store, _, _ := newTestStore(t)
	task := mustCreate(t, store, "findable", PriorityNormal)
	store.Move(task.ID, ColumnTodo, ColumnInProgress)

	col, ok := store.Locate(task.ID)
	if !ok || col != ColumnInProgress {
		t.Errorf("expected inprogress, got %q ok=%v", col, ok)
	}

	if _, ok := store.Locate("t_missing"); ok {
		t.Error("expected missing ID not to be located")
	}
}
