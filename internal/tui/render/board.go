package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jai-kanban/internal/board"
)

// BoardProps is the UI state the board view depends on
type BoardProps struct {
	Filters   []string
	FilterIdx int

	SelectedColumn int
	SelectedTask   int
	Expanded       map[string]bool

	Width  int
	Height int

	// Notification is already styled; Footer is the key help line
	Notification string
	Footer       string
}

// minColumnWidth keeps cards readable on narrow terminals
const minColumnWidth = 24

// Board renders the tab bar, the columns side by side and the footer
func Board(view board.View, props BoardProps, cfg Config) string {
	tabs := Tabs(props.Filters, props.FilterIdx, props.Width, props.Notification, cfg)

	n := max(len(view.Columns), 1)
	colWidth := max(props.Width/n, minColumnWidth)
	colHeight := 0
	if props.Height > 0 {
		colHeight = max(props.Height-lipgloss.Height(tabs)-2, 5)
	}

	columns := make([]string, 0, len(view.Columns))
	for i, col := range view.Columns {
		selected := -1
		if i == props.SelectedColumn {
			selected = props.SelectedTask
		}
		columns = append(columns, Column(col, ColumnProps{
			Width:        colWidth,
			Height:       colHeight,
			SelectedTask: selected,
			Expanded:     props.Expanded,
			ActiveCount:  view.ActiveCount,
			ActiveLimit:  view.ActiveLimit,
		}, cfg))
	}

	parts := []string{tabs, lipgloss.JoinHorizontal(lipgloss.Top, columns...)}
	if props.Footer != "" {
		parts = append(parts, props.Footer)
	}
	return strings.Join(parts, "\n")
}
