package kanban

import (
	"math"
	"sort"
	"time"

	"github.com/jmorales/pizarra/internal/age"
	"github.com/jmorales/pizarra/internal/stats"
)

// Analytics are derived views, recomputed from current state on every call.
// Nothing here is cached and nothing here mutates the board.

// OrderedTasks returns the column's tasks in presentation order: todo and
// inprogress sort ascending by urgency score (soonest-due first, never-due
// last), while done preserves insertion order so completed work reflects
// completion sequence rather than due dates.
func (s *Store) OrderedTasks(col Column, now time.Time) []*Task {
	list := s.Column(col)
	if col == ColumnDone {
		return list
	}

	ordered := make([]*Task, len(list))
	copy(ordered, list)
	sort.SliceStable(ordered, func(i, j int) bool {
		return UrgencyScore(ordered[i], now) < UrgencyScore(ordered[j], now)
	})
	return ordered
}

// WIP holds per-column task counts. Done is excluded from the total by
// definition of work-in-progress.
type WIP struct {
	Todo       int
	InProgress int
	Done       int
	Total      int
}

// KPIs summarizes board health at a point in time.
type KPIs struct {
	// Throughput7d counts tasks completed within the trailing 7 days.
	Throughput7d int

	// LeadMedian and LeadP95 summarize creation-to-completion times of
	// done tasks.
	LeadMedian time.Duration
	LeadP95    time.Duration

	// SLAPct is the percentage of done tasks with an explicit due date
	// that completed at or before it, rounded to the nearest integer.
	// Zero when no such tasks exist.
	SLAPct int

	WIP WIP
}

// KPIs computes the board KPIs relative to now.
func (s *Store) KPIs(now time.Time) KPIs {
	done := s.completedTasks()

	leadMs := make([]float64, 0, len(done))
	for _, task := range done {
		if lead, ok := age.LeadData(task.CreatedAt, task.CompletedAt); ok && lead >= 0 {
			leadMs = append(leadMs, float64(lead.Milliseconds()))
		}
	}

	since := now.Add(-7 * 24 * time.Hour)
	throughput := 0
	for _, task := range done {
		if !task.CompletedAt.Before(since) {
			throughput++
		}
	}

	slaTotal, slaHit := 0, 0
	for _, task := range done {
		if task.DueAt == nil {
			continue
		}
		slaTotal++
		if !task.CompletedAt.After(*task.DueAt) {
			slaHit++
		}
	}
	slaPct := 0
	if slaTotal > 0 {
		slaPct = int(math.Round(float64(slaHit) / float64(slaTotal) * 100))
	}

	return KPIs{
		Throughput7d: throughput,
		LeadMedian:   time.Duration(stats.Median(leadMs)) * time.Millisecond,
		LeadP95:      time.Duration(stats.Percentile(leadMs, 0.95)) * time.Millisecond,
		SLAPct:       slaPct,
		WIP: WIP{
			Todo:       len(s.board.Tasks.Todo),
			InProgress: len(s.board.Tasks.InProgress),
			Done:       len(s.board.Tasks.Done),
			Total:      len(s.board.Tasks.Todo) + len(s.board.Tasks.InProgress),
		},
	}
}

// ThroughputBucket counts completions on one local calendar day.
type ThroughputBucket struct {
	Day   time.Time
	Count int
}

// ThroughputSeries is a fixed trailing window of daily completion counts.
// Max is the largest bucket count, floored at 1 so consumers can scale bars
// without dividing by zero.
type ThroughputSeries struct {
	Buckets []ThroughputBucket
	Max     int
}

// throughputDays is the trailing window of the throughput series.
const throughputDays = 14

// Throughput buckets done-task completions by local calendar day over the
// trailing 14 days ending today.
func (s *Store) Throughput(now time.Time) ThroughputSeries {
	loc := now.Location()
	buckets := make([]ThroughputBucket, 0, throughputDays)
	index := make(map[string]int, throughputDays)
	for i := throughputDays - 1; i >= 0; i-- {
		day := time.Date(now.Year(), now.Month(), now.Day()-i, 0, 0, 0, 0, loc)
		index[day.Format(time.DateOnly)] = len(buckets)
		buckets = append(buckets, ThroughputBucket{Day: day})
	}

	for _, task := range s.board.Tasks.Done {
		if task.CompletedAt == nil {
			continue
		}
		key := task.CompletedAt.In(loc).Format(time.DateOnly)
		if i, ok := index[key]; ok {
			buckets[i].Count++
		}
	}

	max := 1
	for _, bucket := range buckets {
		if bucket.Count > max {
			max = bucket.Count
		}
	}

	return ThroughputSeries{Buckets: buckets, Max: max}
}

// LeadTimePoint is one completed task in the lead-time scatter.
type LeadTimePoint struct {
	TaskID   string
	Lead     time.Duration
	Priority Priority
}

// LeadTimeScatter holds the most recent completions with their lead times.
// Max is the largest lead time, floored at one millisecond for scaling.
type LeadTimeScatter struct {
	Points []LeadTimePoint
	Max    time.Duration
}

// leadTimePointLimit caps the scatter at the most recent completions.
const leadTimePointLimit = 50

// LeadTimes returns the lead-time scatter over the most recent completed
// tasks, in underlying done-list order.
func (s *Store) LeadTimes() LeadTimeScatter {
	done := s.completedTasks()
	if len(done) > leadTimePointLimit {
		done = done[len(done)-leadTimePointLimit:]
	}

	points := make([]LeadTimePoint, 0, len(done))
	max := time.Millisecond
	for _, task := range done {
		lead, _ := age.LeadData(task.CreatedAt, task.CompletedAt)
		point := LeadTimePoint{
			TaskID:   task.ID,
			Lead:     lead,
			Priority: task.Priority,
		}
		points = append(points, point)
		if point.Lead > max {
			max = point.Lead
		}
	}

	return LeadTimeScatter{Points: points, Max: max}
}

// AgingTask is an inprogress task annotated with its time in column.
type AgingTask struct {
	TaskID   string
	Title    string
	Priority Priority
	InColumn time.Duration
	DueAt    *time.Time
}

// agingWIPLimit caps the aging report at the longest-stuck tasks.
const agingWIPLimit = 10

// AgingWIP returns the inprogress tasks that have been in the column the
// longest, sorted descending by elapsed time since they last entered it.
func (s *Store) AgingWIP(now time.Time) []AgingTask {
	aging := make([]AgingTask, 0, len(s.board.Tasks.InProgress))
	for _, task := range s.board.Tasks.InProgress {
		aging = append(aging, AgingTask{
			TaskID:   task.ID,
			Title:    task.Title,
			Priority: task.Priority,
			InColumn: now.Sub(task.EnteredColumnAt(ColumnInProgress)),
			DueAt:    task.DueAt,
		})
	}

	sort.SliceStable(aging, func(i, j int) bool {
		return aging[i].InColumn > aging[j].InColumn
	})
	if len(aging) > agingWIPLimit {
		aging = aging[:agingWIPLimit]
	}
	return aging
}

// completedTasks returns done tasks that have both creation and completion
// timestamps.
func (s *Store) completedTasks() []*Task {
	completed := make([]*Task, 0, len(s.board.Tasks.Done))
	for _, task := range s.board.Tasks.Done {
		if task.CompletedAt == nil || task.CreatedAt.IsZero() {
			continue
		}
		completed = append(completed, task)
	}
	return completed
}
