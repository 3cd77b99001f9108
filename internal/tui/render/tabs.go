package render

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Tabs renders the filter bar with the selected filter highlighted and an
// optional notification pushed to the right edge
//
//	ALL  DEV  RESEARCH  SITE                 [notification]
func Tabs(filters []string, selected, width int, notification string, cfg Config) string {
	rendered := make([]string, 0, len(filters))
	for i, f := range filters {
		style := cfg.Styles.Tab
		if i == selected {
			style = cfg.Styles.ActiveTab
		}
		rendered = append(rendered, style.Render(strings.ToUpper(f)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	if notification == "" {
		return row
	}
	gap := max(width-lipgloss.Width(row)-lipgloss.Width(notification), 1)
	return row + strings.Repeat(" ", gap) + notification
}
