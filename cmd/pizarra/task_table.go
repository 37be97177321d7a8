package main

import (
	"fmt"
	"time"

	"github.com/jmorales/pizarra/internal/ui"
	"github.com/jmorales/pizarra/kanban"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []*kanban.Task, prefixLengths map[string]int, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, prefixLengths, now))
}

func formatTaskTable(tasks []*kanban.Task, prefixLengths map[string]int, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "DUE", "LEFT", "AGE", "TITLE"}, len(tasks))

	for _, task := range tasks {
		builder.AddRow([]string{
			ui.HighlightID(task.ID, ui.PrefixLength(prefixLengths, task.ID)),
			ui.PriorityBadge(string(task.Priority), task.Priority.Label()),
			formatTaskDue(task, now),
			formatTimeLeft(task, now),
			ui.FormatDurationShort(now.Sub(task.CreatedAt)),
			ui.TruncateTableCell(task.Title),
		})
	}

	return builder.String()
}

// formatTaskDue renders the effective due date in local input form, or the
// no-limit marker for never-due tasks.
func formatTaskDue(task *kanban.Task, now time.Time) string {
	due := kanban.EffectiveDueAt(task, now)
	if due == nil {
		return ui.TimeLeftNone
	}
	return kanban.FormatDueInput(due)
}

// formatTimeLeft renders the signed time remaining until the effective due
// date.
func formatTimeLeft(task *kanban.Task, now time.Time) string {
	due := kanban.EffectiveDueAt(task, now)
	if due == nil {
		return "-"
	}
	return ui.FormatTimeLeft(due.Sub(now))
}

// printTaskDetail prints the full card for one task.
func printTaskDetail(task *kanban.Task, col kanban.Column, now time.Time) {
	fmt.Printf("%s\n", task.Title)
	fmt.Printf("  ID:        %s\n", task.ID)
	fmt.Printf("  Column:    %s\n", col.Title())
	fmt.Printf("  Priority:  %s\n", ui.PriorityBadge(string(task.Priority), task.Priority.Label()))

	if due := kanban.EffectiveDueAt(task, now); due != nil {
		fmt.Printf("  Vence:     %s (%s)\n", kanban.FormatDueInput(due), ui.FormatTimeLeft(due.Sub(now)))
	} else {
		fmt.Printf("  Vence:     %s\n", ui.TimeLeftNone)
	}

	fmt.Printf("  Created:   %s\n", ui.FormatTimeAgo(task.CreatedAt, now))
	fmt.Printf("  Updated:   %s\n", ui.FormatTimeAgo(task.LastUpdatedAt, now))
	if task.CompletedAt != nil {
		fmt.Printf("  Completed: %s\n", ui.FormatTimeAgo(*task.CompletedAt, now))
	}
	if task.EditsCount > 0 {
		fmt.Printf("  Edits:     %d\n", task.EditsCount)
	}

	if len(task.StateTransitions) > 1 {
		fmt.Println("  History:")
		for _, transition := range task.StateTransitions {
			fmt.Printf("    %s  %s\n", transition.EnteredAt.Local().Format("2006-01-02 15:04"), transition.Column.Title())
		}
	}
}

// taskHighlighter returns a highlighter for full task IDs using the board's
// unique prefix lengths.
func taskHighlighter(store *kanban.Store) func(string) string {
	prefixLengths := store.IDIndex().PrefixLengths()
	return func(id string) string {
		return ui.HighlightID(id, ui.PrefixLength(prefixLengths, id))
	}
}
