package kanban

import (
	"fmt"
	"strings"

	"github.com/jmorales/pizarra/internal/ids"
)

// IDIndex indexes task IDs for prefix matching and display.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an IDIndex from a slice of tasks.
func NewIDIndex(tasks []*Task) IDIndex {
	taskIDs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, strings.ToLower(task.ID))
	}
	return IDIndex{ids: taskIDs}
}

// IDIndex returns an index of every task ID on the board.
func (s *Store) IDIndex() IDIndex {
	var tasks []*Task
	for _, col := range ValidColumns() {
		tasks = append(tasks, s.Column(col)...)
	}
	return NewIDIndex(tasks)
}

// Resolve returns the full task ID for a prefix. An exact match wins over
// prefix matches.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrTaskNotFound
	}
	prefix = strings.ToLower(prefix)

	var matches []string
	for _, id := range index.ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrTaskNotFound
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTaskIDPrefix, prefix)
	}
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengths(index.ids)
}
