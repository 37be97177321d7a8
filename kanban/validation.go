package kanban

import (
	"errors"
	"strings"

	"github.com/jmorales/pizarra/internal/validation"
)

var (
	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidPriority is returned when a priority is not one of the
	// four valid values.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidColumn is returned when a column is not one of the three
	// valid values.
	ErrInvalidColumn = errors.New("invalid column")

	// ErrTaskNotFound is returned when a task with the given ID doesn't
	// exist in the named column.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousTaskIDPrefix is returned when an ID prefix matches
	// multiple tasks.
	ErrAmbiguousTaskIDPrefix = errors.New("ambiguous task ID prefix")
)

// ValidateTitle checks that a title is non-empty after trimming.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidatePriority checks that a priority is one of the valid enum values.
func ValidatePriority(p Priority) error {
	if !p.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidPriority, p, ValidPriorities())
	}
	return nil
}

// ValidateColumn checks that a column is one of the valid enum values.
func ValidateColumn(c Column) error {
	if !c.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidColumn, c, ValidColumns())
	}
	return nil
}
