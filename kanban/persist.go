package kanban

import "encoding/json"

const (
	// StorageKey is the key-value store entry holding the board record.
	StorageKey = "kanban_state_v2"

	// RecordVersion is the board record format version.
	RecordVersion = 2
)

// boardRecord is the persisted wire format for the board.
type boardRecord struct {
	Version int     `json:"version"`
	Tasks   Columns `json:"tasks"`
	Events  []Event `json:"events"`
}

// load reads the board record from the key-value store. A missing record
// leaves the board empty; a corrupt record or storage read failure is
// reported to diagnostics and likewise leaves the board empty.
func (s *Store) load() {
	s.board = Board{}
	defer s.normalize()

	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.diagf("load board: %v", err)
		return
	}
	if !ok {
		return
	}

	var rec boardRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.diagf("load board: %v", err)
		return
	}

	s.board.Tasks = rec.Tasks
	s.board.Events = rec.Events
}

// normalize replaces nil lists with empty ones so the wire format always
// carries arrays.
func (s *Store) normalize() {
	if s.board.Tasks.Todo == nil {
		s.board.Tasks.Todo = []*Task{}
	}
	if s.board.Tasks.InProgress == nil {
		s.board.Tasks.InProgress = []*Task{}
	}
	if s.board.Tasks.Done == nil {
		s.board.Tasks.Done = []*Task{}
	}
	if s.board.Events == nil {
		s.board.Events = []Event{}
	}
}

// save writes the board record back to the key-value store. Failures are
// reported to diagnostics and swallowed: losing durability is preferable to
// interrupting the mutation flow, and the in-memory mutation is never rolled
// back. Writes are skipped entirely while an import replace is in flight.
func (s *Store) save() {
	if s.suspendSave {
		return
	}

	data, err := json.Marshal(boardRecord{
		Version: RecordVersion,
		Tasks:   s.board.Tasks,
		Events:  s.board.Events,
	})
	if err != nil {
		s.diagf("persist board: %v", err)
		return
	}

	if err := s.kv.Set(s.key, string(data)); err != nil {
		s.diagf("persist board: %v", err)
	}
}
