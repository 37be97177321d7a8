package ui

import "strings"

// Bar renders a horizontal bar scaled to count/max within width cells.
// A non-zero count always renders at least one cell so small buckets stay
// visible.
func Bar(count, max, width int) string {
	if max < 1 {
		max = 1
	}
	if width < 1 || count <= 0 {
		return ""
	}
	cells := count * width / max
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return strings.Repeat("█", cells)
}
