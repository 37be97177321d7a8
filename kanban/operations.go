package kanban

import (
	"strings"
	"time"
)

// Create adds a task to the todo column. An explicit due input wins over the
// priority-derived default; an empty priority falls back to normal. Returns
// nil without mutating anything when the trimmed title is empty: invalid
// user input is ignored, not reported.
func (s *Store) Create(title string, priority Priority, dueInput string) *Task {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	if priority == "" {
		priority = PriorityNormal
	}

	now := s.now()
	dueAt := ParseDueInput(dueInput)
	if dueAt == nil {
		dueAt = DefaultDueAt(priority, now)
	}

	task := &Task{
		ID:            s.newID(taskIDPrefix, title),
		Title:         title,
		Priority:      priority,
		DueAt:         dueAt,
		CreatedAt:     now,
		LastUpdatedAt: now,
		StateTransitions: []Transition{
			{Column: ColumnTodo, EnteredAt: now},
		},
	}

	s.board.Tasks.Todo = append(s.board.Tasks.Todo, task)
	s.AppendEvent(EventCreated, EventPayload{
		TaskID:   task.ID,
		Priority: task.Priority,
		DueAt:    task.DueAt,
	})
	s.save()
	return task
}

// Edit updates the task with the given ID in the named column. A blank new
// title preserves the old one. The due date follows the original recompute
// rule: when the priority changed and the due input is textually unchanged
// from the task's current due date, the due date is recomputed from the new
// priority's default, overriding the input; otherwise the due date is set
// from the input (cleared when the input is empty or unparseable).
//
// Logs edited always, plus priority_changed and due_changed when those
// fields actually differ. Returns nil when the task is not found.
func (s *Store) Edit(id string, col Column, newTitle string, newPriority Priority, dueInput string) *Task {
	list := s.board.Tasks.List(col)
	if list == nil {
		return nil
	}
	idx := s.findTask(col, id)
	if idx < 0 {
		return nil
	}
	task := (*list)[idx]

	if newPriority == "" {
		newPriority = PriorityNormal
	}

	originalPriority := task.Priority
	originalDueInput := FormatDueInput(task.DueAt)
	dueUnchanged := dueInput == originalDueInput
	priorityChanged := newPriority != originalPriority

	if trimmed := strings.TrimSpace(newTitle); trimmed != "" {
		task.Title = trimmed
	}
	task.Priority = newPriority

	now := s.now()
	beforeDue := task.DueAt
	if priorityChanged && dueUnchanged {
		task.DueAt = DefaultDueAt(newPriority, now)
	} else {
		task.DueAt = ParseDueInput(dueInput)
	}
	task.LastUpdatedAt = now
	task.EditsCount++

	s.AppendEvent(EventEdited, EventPayload{TaskID: task.ID})
	if priorityChanged {
		s.AppendEvent(EventPriorityChanged, EventPayload{
			TaskID: task.ID,
			Before: string(originalPriority),
			After:  string(newPriority),
		})
	}
	if dueChanged(beforeDue, task.DueAt) {
		s.AppendEvent(EventDueChanged, EventPayload{
			TaskID: task.ID,
			Before: formatDueValue(beforeDue),
			After:  formatDueValue(task.DueAt),
		})
	}

	s.save()
	return task
}

// Delete removes the task with the given ID from the named column. A task
// that isn't there is a no-op: nothing is logged or persisted.
func (s *Store) Delete(id string, col Column) bool {
	list := s.board.Tasks.List(col)
	if list == nil {
		return false
	}
	idx := s.findTask(col, id)
	if idx < 0 {
		return false
	}

	*list = append((*list)[:idx], (*list)[idx+1:]...)
	s.AppendEvent(EventDeleted, EventPayload{TaskID: id, From: col})
	s.save()
	return true
}

// Move relocates a task to the end of the destination column, preserving
// its identity and every other field. Moving within the same column, from a
// column that doesn't hold the task, or to an unknown column is a silent
// no-op. The first arrival in done stamps CompletedAt exactly once; later
// round trips through done never overwrite it.
func (s *Store) Move(id string, from, to Column) bool {
	if !to.IsValid() {
		return false
	}
	if from == to {
		return false
	}
	fromList := s.board.Tasks.List(from)
	if fromList == nil {
		return false
	}
	idx := s.findTask(from, id)
	if idx < 0 {
		return false
	}

	task := (*fromList)[idx]
	*fromList = append((*fromList)[:idx], (*fromList)[idx+1:]...)
	toList := s.board.Tasks.List(to)
	*toList = append(*toList, task)

	now := s.now()
	task.StateTransitions = append(task.StateTransitions, Transition{Column: to, EnteredAt: now})
	task.LastUpdatedAt = now

	s.AppendEvent(EventMoved, EventPayload{TaskID: task.ID, From: from, To: to})
	if to == ColumnDone && task.CompletedAt == nil {
		task.CompletedAt = &now
		s.AppendEvent(EventCompleted, EventPayload{TaskID: task.ID})
	}

	s.save()
	return true
}

// dueChanged reports whether a due date transition warrants a due_changed
// event: at least one side set, and the two sides not equal.
func dueChanged(before, after *time.Time) bool {
	if before == nil && after == nil {
		return false
	}
	if before == nil || after == nil {
		return true
	}
	return !before.Equal(*after)
}

// formatDueValue renders a due date for event payloads.
func formatDueValue(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format(time.RFC3339)
}
