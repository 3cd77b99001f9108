package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jai-kanban/internal/board"
	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// ColumnProps describes how one column is drawn
type ColumnProps struct {
	Width  int
	Height int

	// SelectedTask is the index of the selected card, -1 when the column
	// does not hold the selection
	SelectedTask int
	Expanded     map[string]bool

	// ActiveCount and ActiveLimit feed the capacity marker of the active column
	ActiveCount int
	ActiveLimit int
}

// ColumnHeader renders "NAME (count)", plus "(active/limit)" for the active column
func ColumnHeader(col board.Column, props ColumnProps, cfg Config) string {
	header := cfg.Styles.ColumnHeader.Render(fmt.Sprintf("%s (%d)", strings.ToUpper(string(col.Status)), len(col.Tasks)))
	if col.Status == models.StatusActive {
		header += " " + cfg.Styles.Capacity.Render(fmt.Sprintf("(%d/%d)", props.ActiveCount, props.ActiveLimit))
	}
	return header
}

// Column renders a header and the column's cards, scrolled so the selected
// card is visible
//
//	QUEUE (3)
//	▲ more above
//	{card}
//	{card}
//	▼ more below
func Column(col board.Column, props ColumnProps, cfg Config) string {
	s := cfg.Styles
	inner := max(props.Width-3, 10)
	lines := []string{ColumnHeader(col, props, cfg), ""}

	if len(col.Tasks) == 0 {
		lines = append(lines, s.Subtle.Render("No tasks"))
		return s.Column.Width(props.Width).Height(props.Height).Render(strings.Join(lines, "\n"))
	}

	cards := make([]string, len(col.Tasks))
	for i, task := range col.Tasks {
		cards[i] = Card(task, CardProps{
			Selected: i == props.SelectedTask,
			Expanded: props.Expanded[task.ID],
			Width:    inner,
		}, cfg)
	}

	budget := props.Height - lipgloss.Height(strings.Join(lines, "\n")) - 2
	first, last := visibleRange(cards, max(props.SelectedTask, 0), budget)

	if first > 0 {
		lines = append(lines, s.Meta.Render("▲ more above"))
	}
	lines = append(lines, cards[first:last]...)
	if last < len(cards) {
		lines = append(lines, s.Meta.Render("▼ more below"))
	}

	style := s.Column.Width(props.Width)
	if props.Height > 0 {
		style = style.Height(props.Height).MaxHeight(props.Height)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// visibleRange picks the window of cards [first, last) that fits in budget
// lines and contains selected. A non-positive budget shows everything.
func visibleRange(cards []string, selected, budget int) (int, int) {
	if budget <= 0 {
		return 0, len(cards)
	}
	selected = min(selected, len(cards)-1)

	first := 0
	used := 0
	for i := 0; i <= selected; i++ {
		used += lipgloss.Height(cards[i])
	}
	for used > budget && first < selected {
		used -= lipgloss.Height(cards[first])
		first++
	}

	last := selected + 1
	for last < len(cards) && used+lipgloss.Height(cards[last]) <= budget {
		used += lipgloss.Height(cards[last])
		last++
	}
	return first, last
}
