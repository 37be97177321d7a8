// Package kanban implements a local-first kanban board: three ordered
// columns of task cards, an append-only event log, and analytics derived
// from them.
//
// The board state is the single source of truth. It is mutated only through
// the Store's operations (Create, Edit, Delete, Move), each of which appends
// audit events and triggers a best-effort persistence write. Analytics are
// recomputed from current state on every read.
package kanban

import "time"

// Column identifies one of the three fixed work stages.
type Column string

const (
	// ColumnTodo holds tasks that have not been started.
	ColumnTodo Column = "todo"

	// ColumnInProgress holds tasks currently being worked on.
	ColumnInProgress Column = "inprogress"

	// ColumnDone is the terminal column for completed tasks.
	ColumnDone Column = "done"
)

// ValidColumns returns all valid column values in board order.
func ValidColumns() []Column {
	return []Column{ColumnTodo, ColumnInProgress, ColumnDone}
}

// IsValid returns true if the column is a known valid value.
func (c Column) IsValid() bool {
	for _, valid := range ValidColumns() {
		if c == valid {
			return true
		}
	}
	return false
}

// Title returns the display name for the column.
func (c Column) Title() string {
	switch c {
	case ColumnTodo:
		return "To Do"
	case ColumnInProgress:
		return "In Progress"
	case ColumnDone:
		return "Done"
	default:
		return string(c)
	}
}

// Priority represents the importance level of a task. The priority governs
// the default urgency window when a task has no explicit due date.
type Priority string

const (
	// PriorityAlta is the highest priority (12h default window).
	PriorityAlta Priority = "alta"

	// PriorityMedia is elevated priority (24h default window).
	PriorityMedia Priority = "media"

	// PriorityNormal is the default priority (48h default window).
	PriorityNormal Priority = "normal"

	// PriorityBaja is the lowest priority (no default due date).
	PriorityBaja Priority = "baja"
)

// ValidPriorities returns all valid priority values, highest first.
func ValidPriorities() []Priority {
	return []Priority{PriorityAlta, PriorityMedia, PriorityNormal, PriorityBaja}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Label returns the display name for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityAlta:
		return "Alta"
	case PriorityMedia:
		return "Media"
	case PriorityBaja:
		return "Baja"
	default:
		return "Normal"
	}
}

// Transition records a task entering a column.
type Transition struct {
	// Column is the column the task entered.
	Column Column `json:"column"`

	// EnteredAt is when the task entered the column.
	EnteredAt time.Time `json:"enteredAt"`
}

// Task represents a single card on the board. Column membership is implied
// by which column list holds the task, not by a field on the task itself.
type Task struct {
	// ID is an opaque unique identifier, immutable after creation.
	ID string `json:"id"`

	// Title is the non-empty display string.
	Title string `json:"title"`

	// Priority governs the default urgency window.
	Priority Priority `json:"priority"`

	// DueAt is the explicit due date, or nil when the task falls back to
	// the priority-derived floating deadline.
	DueAt *time.Time `json:"dueAt"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"createdAt"`

	// LastUpdatedAt is when the task was last mutated.
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`

	// CompletedAt is set exactly once, the first time the task enters the
	// done column, and never overwritten afterward.
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// EditsCount is incremented once per edit operation.
	EditsCount int `json:"editsCount"`

	// StateTransitions records every column entry in order, including the
	// initial column at creation. Entries are never removed or reordered.
	StateTransitions []Transition `json:"stateTransitions"`
}

// EnteredColumnAt returns when the task most recently entered the column,
// scanning transitions from the end. Falls back to CreatedAt when the task
// has no recorded entry for the column.
func (t *Task) EnteredColumnAt(col Column) time.Time {
	for i := len(t.StateTransitions) - 1; i >= 0; i-- {
		if t.StateTransitions[i].Column == col {
			return t.StateTransitions[i].EnteredAt
		}
	}
	return t.CreatedAt
}

// EventType categorizes an audit event.
type EventType string

const (
	// EventCreated records a task creation.
	EventCreated EventType = "created"

	// EventEdited records any edit operation.
	EventEdited EventType = "edited"

	// EventPriorityChanged records an edit that changed the priority.
	EventPriorityChanged EventType = "priority_changed"

	// EventDueChanged records an edit that changed the due date.
	EventDueChanged EventType = "due_changed"

	// EventDeleted records a task deletion.
	EventDeleted EventType = "deleted"

	// EventMoved records a task moving between columns.
	EventMoved EventType = "moved"

	// EventCompleted records the first entry into the done column.
	EventCompleted EventType = "completed"
)

// ValidEventTypes returns all valid event type values.
func ValidEventTypes() []EventType {
	return []EventType{
		EventCreated,
		EventEdited,
		EventPriorityChanged,
		EventDueChanged,
		EventDeleted,
		EventMoved,
		EventCompleted,
	}
}

// IsValid returns true if the event type is a known valid value.
func (e EventType) IsValid() bool {
	for _, valid := range ValidEventTypes() {
		if e == valid {
			return true
		}
	}
	return false
}

// EventPayload carries the event-type-specific details of an audit record.
// Unused fields are omitted from the wire format.
type EventPayload struct {
	// TaskID identifies the task the event concerns.
	TaskID string `json:"id,omitempty"`

	// Priority is the task priority at creation time.
	Priority Priority `json:"priority,omitempty"`

	// DueAt is the resolved due date at creation time.
	DueAt *time.Time `json:"dueAt,omitempty"`

	// Before and After carry the old and new values for priority_changed
	// and due_changed events.
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`

	// From and To carry column names for deleted and moved events.
	From Column `json:"from,omitempty"`
	To   Column `json:"to,omitempty"`
}

// Event is an immutable audit record. The event log is append-only and
// keeps a complete history of mutations for analytics traceability.
type Event struct {
	ID        string       `json:"id"`
	Type      EventType    `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
	Payload   EventPayload `json:"payload"`
}

// Columns holds the three ordered task lists. A task belongs to exactly one
// list at any time.
type Columns struct {
	Todo       []*Task `json:"todo"`
	InProgress []*Task `json:"inprogress"`
	Done       []*Task `json:"done"`
}

// List returns a pointer to the column's task list, or nil for an unknown
// column.
func (c *Columns) List(col Column) *[]*Task {
	switch col {
	case ColumnTodo:
		return &c.Todo
	case ColumnInProgress:
		return &c.InProgress
	case ColumnDone:
		return &c.Done
	default:
		return nil
	}
}

// Board is the full application state: the column lists plus the event log.
// It is the unit of persistence and import/export.
type Board struct {
	Tasks  Columns `json:"tasks"`
	Events []Event `json:"events"`
}
