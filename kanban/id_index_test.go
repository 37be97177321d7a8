package kanban

import (
	"errors"
	"testing"
)

func indexOf(ids ...string) IDIndex {
	tasks := make([]*Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, &Task{ID: id})
	}
	return NewIDIndex(tasks)
}

func TestIDIndexResolve(t *testing.T) {
	index := indexOf("t_abc123", "t_abd456", "t_xyz789")

	cases := []struct {
		name   string
		prefix string
		want   string
		fails  error
	}{
		{name: "exact", prefix: "t_abc123", want: "t_abc123"},
		{name: "unique prefix", prefix: "t_x", want: "t_xyz789"},
		{name: "case insensitive", prefix: "T_XYZ", want: "t_xyz789"},
		{name: "ambiguous", prefix: "t_ab", fails: ErrAmbiguousTaskIDPrefix},
		{name: "no match", prefix: "t_q", fails: ErrTaskNotFound},
		{name: "empty", prefix: "", fails: ErrTaskNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := index.Resolve(tc.prefix)
			if tc.fails != nil {
				if !errors.Is(err, tc.fails) {
					t.Fatalf("expected %v, got %v", tc.fails, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIDIndexResolve_ExactWinsOverPrefix(t *testing.T) {
	index := indexOf("t_abc", "t_abcdef")

	got, err := index.Resolve("t_abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "t_abc" {
		t.Errorf("expected exact match to win, got %q", got)
	}
}

func TestStoreIDIndex_SpansColumns(t *testing.T) {
	store, _, _ := newTestStore(t)
	todo := mustCreate(t, store, "in todo", PriorityNormal)
	moved := mustCreate(t, store, "in done", PriorityNormal)
	store.Move(moved.ID, ColumnTodo, ColumnDone)

	index := store.IDIndex()
	for _, id := range []string{todo.ID, moved.ID} {
		if got, err := index.Resolve(id); err != nil || got != id {
			t.Errorf("expected %q resolvable, got %q err=%v", id, got, err)
		}
	}
}

func TestIDIndexPrefixLengths(t *testing.T) {
	index := indexOf("t_abc123", "t_abd456")

	lengths := index.PrefixLengths()
	if got := lengths["t_abc123"]; got != 5 {
		t.Errorf("expected prefix length 5, got %d", got)
	}
}
