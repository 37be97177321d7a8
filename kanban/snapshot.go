package kanban

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmorales/pizarra/internal/kv"
)

const (
	// ExportApp identifies this application in snapshot metadata.
	ExportApp = "pizarra-kanban"

	// ExportFormatVersion is the snapshot envelope version.
	ExportFormatVersion = 1
)

var (
	// ErrInvalidSnapshot is returned when snapshot text is not valid JSON.
	ErrInvalidSnapshot = errors.New("snapshot is not valid JSON")

	// ErrUnrecognizedSnapshot is returned when parsed snapshot JSON is
	// neither an export envelope nor a flat key/value map.
	ErrUnrecognizedSnapshot = errors.New(`unrecognized snapshot shape: want an object with "localStorage" or a key/value map`)

	// ErrMissingBoardRecord is returned when a snapshot has no entry for
	// the board storage key.
	ErrMissingBoardRecord = errors.New("snapshot is missing the board record key")

	// ErrBoardRecordNotJSON is returned when the board record value is
	// not valid JSON.
	ErrBoardRecordNotJSON = errors.New("board record is not valid JSON")

	// ErrColumnNotArray is returned when a column list in the board
	// record is not an array.
	ErrColumnNotArray = errors.New("column list must be an array")
)

// exportMeta describes a snapshot.
type exportMeta struct {
	App           string    `json:"app"`
	ExportedAt    time.Time `json:"exportedAt"`
	FormatVersion int       `json:"formatVersion"`
}

// exportEnvelope is the export wire format: metadata plus a full snapshot of
// the key-value store, so export/import round-trips every app-related key
// uniformly, not just the board record.
type exportEnvelope struct {
	Meta         exportMeta        `json:"__meta__"`
	LocalStorage map[string]string `json:"localStorage"`
}

// ExportSnapshot serializes the entire key-value store into the export
// envelope, pretty-printed.
func ExportSnapshot(store kv.Store, now time.Time) (string, error) {
	keys, err := store.Keys()
	if err != nil {
		return "", fmt.Errorf("list store keys: %w", err)
	}

	items := make(map[string]string, len(keys))
	for _, key := range keys {
		value, ok, err := store.Get(key)
		if err != nil {
			return "", fmt.Errorf("read store key %q: %w", key, err)
		}
		if ok {
			items[key] = value
		}
	}

	data, err := json.MarshalIndent(exportEnvelope{
		Meta: exportMeta{
			App:           ExportApp,
			ExportedAt:    now,
			FormatVersion: ExportFormatVersion,
		},
		LocalStorage: items,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return string(data), nil
}

// ExportFileName returns the conventional snapshot file name for a point in
// time.
func ExportFileName(now time.Time) string {
	stamp := strings.ReplaceAll(now.Format(time.RFC3339), ":", "-")
	return "pizarra-localstorage-" + stamp + ".json"
}

// ParseSnapshot parses untrusted snapshot text into a key/value map.
// Accepted shapes are the export envelope (the `localStorage` object is
// used) or a bare key→value mapping. Non-string values are stringified via
// JSON encoding; nulls become empty strings.
func ParseSnapshot(text string) (map[string]string, error) {
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, ErrInvalidSnapshot
	}

	entries := parsed
	if raw, ok := parsed["localStorage"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, ErrUnrecognizedSnapshot
		}
		entries = inner
	}

	items := make(map[string]string, len(entries))
	for key, raw := range entries {
		var asString string
		if err := json.Unmarshal(raw, &asString); err == nil {
			items[key] = asString
			continue
		}
		if string(raw) == "null" {
			items[key] = ""
			continue
		}
		items[key] = string(raw)
	}
	return items, nil
}

// ValidateSnapshot checks that a parsed snapshot can replace the store:
// the board key must be present, its value must be JSON, the column lists
// must be arrays when present, and every task priority present must be one
// of the valid enum values. The checks run in order and the first failure
// aborts the import with nothing written.
func ValidateSnapshot(items map[string]string, key string) error {
	value, ok := items[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingBoardRecord, key)
	}

	var probe any
	if err := json.Unmarshal([]byte(value), &probe); err != nil {
		return fmt.Errorf("%w (key %s)", ErrBoardRecordNotJSON, key)
	}

	var rec struct {
		Tasks map[string]json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return fmt.Errorf("%w (key %s)", ErrBoardRecordNotJSON, key)
	}

	for _, col := range ValidColumns() {
		raw, ok := rec.Tasks[string(col)]
		if !ok {
			continue
		}

		var elements []json.RawMessage
		if err := json.Unmarshal(raw, &elements); err != nil {
			return fmt.Errorf("%w: tasks.%s", ErrColumnNotArray, col)
		}

		for i, element := range elements {
			var task struct {
				Priority Priority `json:"priority"`
			}
			if err := json.Unmarshal(element, &task); err != nil {
				return fmt.Errorf("tasks.%s[%d] is not a task object: %w", col, i, ErrBoardRecordNotJSON)
			}
			if task.Priority != "" {
				if err := ValidatePriority(task.Priority); err != nil {
					return fmt.Errorf("tasks.%s[%d]: %w", col, i, err)
				}
			}
		}
	}

	return nil
}

// ImportReplaceAll validates the snapshot, then replaces the entire
// key-value store and the in-memory board with its contents. Persistence
// write-back is suspended for the duration so the intermediate empty state
// is never durably persisted; the board reloads from the freshly written
// store. This is a full replace, never a merge.
func (s *Store) ImportReplaceAll(items map[string]string) error {
	if err := ValidateSnapshot(items, s.key); err != nil {
		return err
	}

	s.suspendSave = true
	defer func() { s.suspendSave = false }()

	if err := s.kv.ReplaceAll(items); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}

	s.load()
	return nil
}
