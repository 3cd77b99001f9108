package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jai-kanban/internal/tui/render"
	"github.com/thenoetrevino/jai-kanban/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	view := tea.NewView(m.Render())
	view.AltScreen = true
	view.WindowTitle = "jai-kanban"
	view.BackgroundColor = lipgloss.Color(m.bg)
	return view
}

// Render returns the screen content as a string
func (m Model) Render() string {
	if m.UIState.Width() == 0 {
		return "Loading..."
	}

	base := render.Board(m.view, render.BoardProps{
		Filters:        m.filters,
		FilterIdx:      m.UIState.FilterIdx(),
		SelectedColumn: m.UIState.SelectedColumn(),
		SelectedTask:   m.UIState.SelectedTask(),
		Expanded:       m.UIState.Expanded(),
		Width:          m.UIState.Width(),
		Height:         m.UIState.Height(),
		Notification:   m.renderNotification(),
		Footer:         m.help.ShortHelpView(m.keys.ShortHelp()),
	}, m.render)

	var modal string
	switch m.UIState.Mode() {
	case state.EditMode:
		if task, ok := m.currentTask(); ok {
			modal = render.Editor(task, m.board, render.EditorProps{
				Row:       m.UIState.EditRow(),
				TagCursor: m.UIState.TagCursor(),
				Width:     min(m.UIState.Width()-4, 72),
			}, m.render)
		}
	case state.HelpMode:
		modal = m.render.Styles.HelpBox.Render("jai-kanban\n\n" + m.help.FullHelpView(m.keys.FullHelp()))
	}
	if modal == "" {
		return base
	}

	// center the modal over the board
	x := max((m.UIState.Width()-lipgloss.Width(modal))/2, 0)
	y := max((m.UIState.Height()-lipgloss.Height(modal))/2, 0)
	canvas := lipgloss.NewCanvas(
		lipgloss.NewLayer(base),
		lipgloss.NewLayer(modal).X(x).Y(y).Z(1),
	)
	return canvas.Render()
}

func (m Model) renderNotification() string {
	n, ok := m.NotificationState.Latest()
	if !ok {
		return ""
	}
	s := m.render.Styles
	switch n.Level {
	case state.LevelError:
		return s.Error.Render(n.Message)
	case state.LevelWarning:
		return s.Warning.Render(n.Message)
	default:
		return s.Info.Render(n.Message)
	}
}
