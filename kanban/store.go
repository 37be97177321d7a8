package kanban

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jmorales/pizarra/internal/ids"
	"github.com/jmorales/pizarra/internal/kv"
)

const (
	// taskIDPrefix and eventIDPrefix keep IDs recognizable in the wire
	// format and the event log.
	taskIDPrefix  = "t_"
	eventIDPrefix = "e_"
)

// Store owns the board state and is the only mutation path to it. All
// operations run synchronously on a single logical thread of control; there
// is no locking beyond the persistence layer's own file lock.
type Store struct {
	board Board
	kv    kv.Store
	key   string
	now   func() time.Time
	diag  io.Writer

	// suspendSave disables persistence write-back during import replace,
	// so the intermediate empty state is never durably persisted.
	suspendSave bool

	// seq disambiguates IDs generated within the same clock reading.
	seq int
}

// Options configures a Store.
type Options struct {
	// Key is the storage key for the board record.
	// Defaults to StorageKey.
	Key string

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time

	// Diagnostics receives swallowed persistence errors.
	// Defaults to io.Discard.
	Diagnostics io.Writer
}

// Open loads the board from the key-value store, or starts empty when no
// record exists. A corrupt or unreadable record is reported to the
// diagnostics writer and the board starts empty; persistence failures are
// never surfaced to callers.
func Open(store kv.Store, opts Options) *Store {
	if opts.Key == "" {
		opts.Key = StorageKey
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = io.Discard
	}

	s := &Store{
		kv:   store,
		key:  opts.Key,
		now:  opts.Now,
		diag: opts.Diagnostics,
	}
	s.load()
	return s
}

// Column returns the ordered task list for a column, in underlying list
// order. Returns nil for an unknown column.
func (s *Store) Column(col Column) []*Task {
	list := s.board.Tasks.List(col)
	if list == nil {
		return nil
	}
	return *list
}

// Events returns the append-only event log.
func (s *Store) Events() []Event {
	return s.board.Events
}

// AppendEvent appends an audit record with a fresh ID and the current
// timestamp. No validation is performed here; that is the caller's
// responsibility.
func (s *Store) AppendEvent(eventType EventType, payload EventPayload) Event {
	event := Event{
		ID:        s.newID(eventIDPrefix, string(eventType)+payload.TaskID),
		Type:      eventType,
		Timestamp: s.now(),
		Payload:   payload,
	}
	s.board.Events = append(s.board.Events, event)
	return event
}

// newID generates a deterministic opaque ID from the input, the current
// time, and a per-store sequence number.
func (s *Store) newID(prefix, input string) string {
	s.seq++
	return prefix + ids.GenerateWithTimestamp(input+strconv.Itoa(s.seq), s.now(), ids.DefaultLength)
}

// findTask returns the index of the task in the column's list, or -1.
func (s *Store) findTask(col Column, id string) int {
	for i, task := range s.Column(col) {
		if task.ID == id {
			return i
		}
	}
	return -1
}

// Locate returns the column currently holding the task with the given ID.
func (s *Store) Locate(id string) (Column, bool) {
	_, col, ok := s.Find(id)
	return col, ok
}

// Find returns the task with the given ID and the column holding it.
func (s *Store) Find(id string) (*Task, Column, bool) {
	for _, col := range ValidColumns() {
		if i := s.findTask(col, id); i >= 0 {
			return s.Column(col)[i], col, true
		}
	}
	return nil, "", false
}

// diagf reports a swallowed error to the diagnostics writer.
func (s *Store) diagf(format string, args ...any) {
	fmt.Fprintf(s.diag, format+"\n", args...)
}
