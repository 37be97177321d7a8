// Package age computes display durations for task timing data.
package age

import "time"

// AgeData computes how long ago a timestamp was and whether timing data
// exists. Future timestamps clamp to zero.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	duration := now.Sub(then)
	if duration < 0 {
		duration = 0
	}
	return duration, true
}

// LeadData computes the creation-to-completion duration and whether both
// timestamps exist.
func LeadData(createdAt time.Time, completedAt *time.Time) (time.Duration, bool) {
	if createdAt.IsZero() || completedAt == nil || completedAt.IsZero() {
		return 0, false
	}
	return completedAt.Sub(createdAt), true
}
