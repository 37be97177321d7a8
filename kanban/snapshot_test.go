package kanban

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExportSnapshot(t *testing.T) {
	store, mem, clock := newTestStore(t)
	mustCreate(t, store, "exported", PriorityAlta)

	text, err := ExportSnapshot(mem, clock.Now())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var envelope struct {
		Meta struct {
			App           string    `json:"app"`
			ExportedAt    time.Time `json:"exportedAt"`
			FormatVersion int       `json:"formatVersion"`
		} `json:"__meta__"`
		LocalStorage map[string]string `json:"localStorage"`
	}
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	if envelope.Meta.App != "pizarra-kanban" {
		t.Errorf("unexpected app: %q", envelope.Meta.App)
	}
	if envelope.Meta.FormatVersion != 1 {
		t.Errorf("unexpected format version: %d", envelope.Meta.FormatVersion)
	}
	if !envelope.Meta.ExportedAt.Equal(clock.Now()) {
		t.Errorf("unexpected exportedAt: %v", envelope.Meta.ExportedAt)
	}
	if _, ok := envelope.LocalStorage[StorageKey]; !ok {
		t.Errorf("expected board record under %q", StorageKey)
	}

	if !strings.Contains(text, "\n  ") {
		t.Error("expected pretty-printed output")
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	got := ExportFileName(now)
	want := "pizarra-localstorage-2025-03-10T09-30-00Z.json"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseSnapshot(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		want  map[string]string
		fails error
	}{
		{
			name: "envelope",
			text: `{"__meta__":{"app":"pizarra-kanban"},"localStorage":{"a":"1","b":"2"}}`,
			want: map[string]string{"a": "1", "b": "2"},
		},
		{
			name: "flat map",
			text: `{"a":"1"}`,
			want: map[string]string{"a": "1"},
		},
		{
			name: "non-string values stringified",
			text: `{"n":42,"obj":{"k":"v"},"nil":null}`,
			want: map[string]string{"n": "42", "obj": `{"k":"v"}`, "nil": ""},
		},
		{
			name:  "not JSON",
			text:  "not json at all",
			fails: ErrInvalidSnapshot,
		},
		{
			name:  "localStorage not an object",
			text:  `{"localStorage":"nope"}`,
			fails: ErrUnrecognizedSnapshot,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSnapshot(tc.text)
			if tc.fails != nil {
				if !errors.Is(err, tc.fails) {
					t.Fatalf("expected %v, got %v", tc.fails, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for key, want := range tc.want {
				if got[key] != want {
					t.Errorf("key %q: expected %q, got %q", key, want, got[key])
				}
			}
		})
	}
}

func TestValidateSnapshot(t *testing.T) {
	valid := `{"version":2,"tasks":{"todo":[{"id":"t_1","title":"a","priority":"alta"}],"inprogress":[],"done":[]},"events":[]}`

	cases := []struct {
		name  string
		items map[string]string
		fails error
	}{
		{
			name:  "valid",
			items: map[string]string{StorageKey: valid},
		},
		{
			name:  "missing board key",
			items: map[string]string{"other": "x"},
			fails: ErrMissingBoardRecord,
		},
		{
			name:  "board record not JSON",
			items: map[string]string{StorageKey: "{broken"},
			fails: ErrBoardRecordNotJSON,
		},
		{
			name:  "column not an array",
			items: map[string]string{StorageKey: `{"tasks":{"todo":"nope"}}`},
			fails: ErrColumnNotArray,
		},
		{
			name:  "invalid priority",
			items: map[string]string{StorageKey: `{"tasks":{"todo":[{"priority":"urgent"}]}}`},
			fails: ErrInvalidPriority,
		},
		{
			name:  "empty priority tolerated",
			items: map[string]string{StorageKey: `{"tasks":{"todo":[{"title":"no priority"}]}}`},
		},
		{
			name:  "missing columns tolerated",
			items: map[string]string{StorageKey: `{"tasks":{}}`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSnapshot(tc.items, StorageKey)
			if tc.fails != nil {
				if !errors.Is(err, tc.fails) {
					t.Fatalf("expected %v, got %v", tc.fails, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestImportReplaceAll(t *testing.T) {
	store, mem, _ := newTestStore(t)
	mustCreate(t, store, "will be replaced", PriorityNormal)

	incoming := `{"version":2,"tasks":{"todo":[],"inprogress":[],"done":[{"id":"t_imported","title":"imported","priority":"media","completedAt":"2025-03-01T12:00:00Z","createdAt":"2025-03-01T10:00:00Z"}]},"events":[]}`
	items := map[string]string{
		StorageKey: incoming,
		"extra":    "kept",
	}

	if err := store.ImportReplaceAll(items); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if got := len(store.Column(ColumnTodo)); got != 0 {
		t.Errorf("expected old tasks replaced, got %d in todo", got)
	}
	done := store.Column(ColumnDone)
	if len(done) != 1 || done[0].ID != "t_imported" {
		t.Fatalf("expected imported done task, got %+v", done)
	}
	if done[0].Priority != PriorityMedia {
		t.Errorf("expected priority media, got %q", done[0].Priority)
	}

	// Unrelated keys ride along with the replace.
	if value, ok, _ := mem.Get("extra"); !ok || value != "kept" {
		t.Errorf("expected unrelated key preserved, got %q ok=%v", value, ok)
	}
}

func TestImportReplaceAll_RejectsInvalid(t *testing.T) {
	store, mem, _ := newTestStore(t)
	original := mustCreate(t, store, "survivor", PriorityNormal)

	err := store.ImportReplaceAll(map[string]string{"unrelated": "x"})
	if !errors.Is(err, ErrMissingBoardRecord) {
		t.Fatalf("expected missing-record error, got %v", err)
	}

	// Nothing was written and the board is untouched.
	if got := len(store.Column(ColumnTodo)); got != 1 {
		t.Errorf("expected board untouched, got %d tasks in todo", got)
	}
	if store.Column(ColumnTodo)[0].ID != original.ID {
		t.Error("expected original task to survive a rejected import")
	}
	if _, ok, _ := mem.Get("unrelated"); ok {
		t.Error("expected rejected snapshot not to be written")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	store, mem, clock := newTestStore(t)
	task := mustCreate(t, store, "round trip", PriorityAlta)
	store.Move(task.ID, ColumnTodo, ColumnInProgress)

	text, err := ExportSnapshot(mem, clock.Now())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	// Import into a fresh store and compare.
	other, otherMem, _ := newTestStore(t)
	items, err := ParseSnapshot(text)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if err := other.ImportReplaceAll(items); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	got := other.Column(ColumnInProgress)
	if len(got) != 1 || got[0].ID != task.ID || got[0].Title != task.Title {
		t.Fatalf("expected imported task to match original, got %+v", got)
	}
	if len(other.Events()) != len(store.Events()) {
		t.Errorf("expected event log carried over, got %d events", len(other.Events()))
	}

	original, _, _ := mem.Get(StorageKey)
	imported, _, _ := otherMem.Get(StorageKey)
	if original != imported {
		t.Error("expected board record byte-identical after round trip")
	}
}
