package ui

import (
	"fmt"
	"time"

	internalage "github.com/jmorales/pizarra/internal/age"
)

// TimeLeftNone is displayed for tasks that never become due.
const TimeLeftNone = "sin límite"

// FormatTimeLeft renders remaining time to a deadline as "Xh Ym", keeping
// the sign for overdue tasks ("-2h 5m").
func FormatTimeLeft(remaining time.Duration) string {
	sign := ""
	if remaining < 0 {
		sign = "-"
		remaining = -remaining
	}
	hours := int64(remaining / time.Hour)
	minutes := int64(remaining%time.Hour) / int64(time.Minute)
	return fmt.Sprintf("%s%dh %dm", sign, hours, minutes)
}

// FormatDurationStat renders an unsigned statistical duration, switching
// units with magnitude: "Xd Yh", "Xh Ym", or "Xm".
func FormatDurationStat(duration time.Duration) string {
	if duration < 0 {
		duration = -duration
	}
	days := int64(duration / (24 * time.Hour))
	hours := int64(duration%(24*time.Hour)) / int64(time.Hour)
	minutes := int64(duration%time.Hour) / int64(time.Minute)
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	age := formatTimeAge(then, now)
	if age == "-" {
		return age
	}
	return age + " ago"
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}

func formatTimeAge(then time.Time, now time.Time) string {
	duration, ok := internalage.AgeData(then, now)
	if !ok {
		return "-"
	}
	return FormatDurationShort(duration)
}
