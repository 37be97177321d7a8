package kanban

import (
	"math"
	"time"
)

// DueInputLayout is the layout for due-date input and display, matching the
// datetime-local form ("2006-01-02T15:04"). Edit operations compare due
// inputs textually in this rendering.
const DueInputLayout = "2006-01-02T15:04"

// PriorityWindow returns the default urgency window for a priority and
// whether one exists. Baja tasks have no default window.
func PriorityWindow(p Priority) (time.Duration, bool) {
	switch p {
	case PriorityAlta:
		return 12 * time.Hour, true
	case PriorityMedia:
		return 24 * time.Hour, true
	case PriorityNormal:
		return 48 * time.Hour, true
	default:
		return 0, false
	}
}

// DefaultDueAt returns the priority-derived due date relative to now, or nil
// when the priority has no default window.
func DefaultDueAt(p Priority, now time.Time) *time.Time {
	window, ok := PriorityWindow(p)
	if !ok {
		return nil
	}
	due := now.Add(window)
	return &due
}

// EffectiveDueAt returns the task's explicit due date when set, else the
// priority default computed from now. The default floats: a never-due-set
// task re-evaluated later yields a later deadline, meaning "always N hours
// from now".
func EffectiveDueAt(task *Task, now time.Time) *time.Time {
	if task.DueAt != nil {
		return task.DueAt
	}
	return DefaultDueAt(task.Priority, now)
}

// UrgencyScore returns the signed time to deadline in milliseconds. Tasks
// with no due date at all score +Inf and sort last.
func UrgencyScore(task *Task, now time.Time) float64 {
	due := EffectiveDueAt(task, now)
	if due == nil {
		return math.Inf(1)
	}
	return float64(due.Sub(now).Milliseconds())
}

// ParseDueInput parses a due-date input in DueInputLayout, interpreted in
// local time. Empty or unparseable input yields nil.
func ParseDueInput(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.ParseInLocation(DueInputLayout, value, time.Local)
	if err != nil {
		return nil
	}
	return &parsed
}

// FormatDueInput renders a due date in DueInputLayout in local time, or ""
// for nil.
func FormatDueInput(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Local().Format(DueInputLayout)
}
