package ui

import "github.com/charmbracelet/lipgloss"

var badgeStyles = map[string]lipgloss.Style{
	"alta":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	"media":  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"normal": lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	"baja":   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// PriorityBadge renders a priority label with its column-card styling.
// Falls back to the plain label when ANSI output is disabled or the
// priority is unknown.
func PriorityBadge(priority, label string) string {
	if !ansiEnabled() {
		return label
	}
	style, ok := badgeStyles[priority]
	if !ok {
		return label
	}
	return style.Render(label)
}
