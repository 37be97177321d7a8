package main

import (
	"fmt"
	"strings"

	"github.com/jmorales/pizarra/internal/ui"
	"github.com/jmorales/pizarra/kanban"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the audit event log, most recent last",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

var (
	eventsLimit int
	eventsJSON  bool
)

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 20, "Maximum number of events to show (0 for all)")
	eventsCmd.Flags().BoolVar(&eventsJSON, "json", false, "Output as JSON")
}

func runEvents(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	events := store.Events()
	if eventsLimit > 0 && len(events) > eventsLimit {
		events = events[len(events)-eventsLimit:]
	}

	if eventsJSON {
		return encodeJSONToStdout(events)
	}

	if len(events) == 0 {
		fmt.Println("No events recorded.")
		return nil
	}

	builder := ui.NewTableBuilder([]string{"TIME", "TYPE", "TASK", "DETAIL"}, len(events))
	for _, event := range events {
		builder.AddRow([]string{
			event.Timestamp.Local().Format("2006-01-02 15:04"),
			string(event.Type),
			event.Payload.TaskID,
			eventDetail(event),
		})
	}
	fmt.Print(builder.String())
	return nil
}

// eventDetail renders the type-specific payload fields.
func eventDetail(event kanban.Event) string {
	payload := event.Payload
	switch event.Type {
	case kanban.EventCreated:
		parts := []string{string(payload.Priority)}
		if payload.DueAt != nil {
			parts = append(parts, "due "+kanban.FormatDueInput(payload.DueAt))
		}
		return strings.Join(parts, ", ")
	case kanban.EventPriorityChanged, kanban.EventDueChanged:
		before := payload.Before
		if before == "" {
			before = "-"
		}
		after := payload.After
		if after == "" {
			after = "-"
		}
		return fmt.Sprintf("%s -> %s", before, after)
	case kanban.EventMoved:
		return fmt.Sprintf("%s -> %s", payload.From, payload.To)
	case kanban.EventDeleted:
		return fmt.Sprintf("from %s", payload.From)
	default:
		return ""
	}
}
