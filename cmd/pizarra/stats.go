package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmorales/pizarra/internal/ui"
	"github.com/jmorales/pizarra/kanban"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show board KPIs",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsThroughputCmd = &cobra.Command{
	Use:   "throughput",
	Short: "Show completions per day over the last two weeks",
	Args:  cobra.NoArgs,
	RunE:  runStatsThroughput,
}

var statsLeadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Show lead times of recent completions",
	Args:  cobra.NoArgs,
	RunE:  runStatsLead,
}

var statsAgingCmd = &cobra.Command{
	Use:   "aging",
	Short: "Show the longest-stuck in-progress tasks",
	Args:  cobra.NoArgs,
	RunE:  runStatsAging,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsThroughputCmd, statsLeadCmd, statsAgingCmd)
	statsCmd.PersistentFlags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	kpis := store.KPIs(time.Now())
	if statsJSON {
		return encodeJSONToStdout(kpis)
	}

	fmt.Print(formatKPIs(kpis))
	return nil
}

func formatKPIs(kpis kanban.KPIs) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Throughput (7d):  %d\n", kpis.Throughput7d)
	fmt.Fprintf(&builder, "Lead median:      %s\n", formatLeadStat(kpis.LeadMedian))
	fmt.Fprintf(&builder, "Lead p95:         %s\n", formatLeadStat(kpis.LeadP95))
	fmt.Fprintf(&builder, "SLA:              %d%%\n", kpis.SLAPct)
	fmt.Fprintf(&builder, "WIP:              %d (todo %d, inprogress %d, done %d)\n",
		kpis.WIP.Total, kpis.WIP.Todo, kpis.WIP.InProgress, kpis.WIP.Done)
	return builder.String()
}

func formatLeadStat(duration time.Duration) string {
	if duration == 0 {
		return "-"
	}
	return ui.FormatDurationStat(duration)
}

// throughputBarWidth is the widest bar in the throughput chart.
const throughputBarWidth = 30

func runStatsThroughput(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	series := store.Throughput(time.Now())
	if statsJSON {
		return encodeJSONToStdout(series)
	}

	fmt.Print(formatThroughput(series))
	return nil
}

func formatThroughput(series kanban.ThroughputSeries) string {
	var builder strings.Builder
	for _, bucket := range series.Buckets {
		fmt.Fprintf(&builder, "%s  %3d  %s\n",
			bucket.Day.Format("Jan 02"),
			bucket.Count,
			ui.Bar(bucket.Count, series.Max, throughputBarWidth))
	}
	return builder.String()
}

func runStatsLead(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	scatter := store.LeadTimes()
	if statsJSON {
		return encodeJSONToStdout(scatter)
	}

	if len(scatter.Points) == 0 {
		fmt.Println("No completed tasks yet.")
		return nil
	}

	builder := ui.NewTableBuilder([]string{"ID", "PRI", "LEAD"}, len(scatter.Points))
	for _, point := range scatter.Points {
		builder.AddRow([]string{
			point.TaskID,
			ui.PriorityBadge(string(point.Priority), point.Priority.Label()),
			ui.FormatDurationStat(point.Lead),
		})
	}
	fmt.Print(builder.String())
	return nil
}

func runStatsAging(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	now := time.Now()
	aging := store.AgingWIP(now)
	if statsJSON {
		return encodeJSONToStdout(aging)
	}

	if len(aging) == 0 {
		fmt.Println("Nothing in progress.")
		return nil
	}

	builder := ui.NewTableBuilder([]string{"ID", "PRI", "IN COLUMN", "DUE", "TITLE"}, len(aging))
	for _, item := range aging {
		due := ui.TimeLeftNone
		if item.DueAt != nil {
			due = kanban.FormatDueInput(item.DueAt)
		}
		builder.AddRow([]string{
			item.TaskID,
			ui.PriorityBadge(string(item.Priority), item.Priority.Label()),
			ui.FormatDurationStat(item.InColumn),
			due,
			ui.TruncateTableCell(item.Title),
		})
	}
	fmt.Print(builder.String())
	return nil
}
