package main

import (
	"strings"
	"testing"
	"time"

	"github.com/jmorales/pizarra/kanban"
)

func TestFormatKPIs(t *testing.T) {
	kpis := kanban.KPIs{
		Throughput7d: 3,
		LeadMedian:   10 * time.Hour,
		LeadP95:      28 * time.Hour,
		SLAPct:       67,
		WIP:          kanban.WIP{Todo: 2, InProgress: 1, Done: 3, Total: 3},
	}

	output := formatKPIs(kpis)
	for _, want := range []string{
		"Throughput (7d):  3",
		"Lead median:      10h 0m",
		"Lead p95:         1d 4h",
		"SLA:              67%",
		"WIP:              3 (todo 2, inprogress 1, done 3)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestFormatKPIs_EmptyLeadStats(t *testing.T) {
	output := formatKPIs(kanban.KPIs{})
	if !strings.Contains(output, "Lead median:      -") {
		t.Errorf("expected dash for missing lead stats, got:\n%s", output)
	}
}

func TestFormatThroughput(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	series := kanban.ThroughputSeries{
		Buckets: []kanban.ThroughputBucket{
			{Day: day, Count: 0},
			{Day: day.AddDate(0, 0, 1), Count: 2},
		},
		Max: 2,
	}

	output := formatThroughput(series)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), output)
	}
	if !strings.HasPrefix(lines[0], "Mar 10") {
		t.Errorf("expected day label, got %q", lines[0])
	}
	if strings.Contains(lines[0], "█") {
		t.Errorf("expected no bar for an empty bucket, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "█") {
		t.Errorf("expected a bar for the full bucket, got %q", lines[1])
	}
}
