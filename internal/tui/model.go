package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jai-kanban/internal/board"
	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/events"
	"github.com/thenoetrevino/jai-kanban/internal/models"
	taskservice "github.com/thenoetrevino/jai-kanban/internal/services/task"
	"github.com/thenoetrevino/jai-kanban/internal/tui/render"
	"github.com/thenoetrevino/jai-kanban/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	svc    taskservice.Service
	reload func(context.Context) error
	events <-chan events.Event

	keys   KeyMap
	help   help.Model
	render render.Config
	bg     string

	// Derived from the service on every refresh
	board   models.Board
	view    board.View
	filters []string

	UIState           *state.UIState
	NotificationState *state.NotificationState
}

// Option configures the model
type Option func(*Model)

// WithEvents reloads the board whenever the snapshot watcher reports a change
func WithEvents(ch <-chan events.Event) Option {
	return func(m *Model) { m.events = ch }
}

// WithReload replaces svc.Reload for external changes, e.g. to count reloads
func WithReload(fn func(context.Context) error) Option {
	return func(m *Model) { m.reload = fn }
}

// InitialModel creates and initializes the TUI model from the service's board
func InitialModel(ctx context.Context, svc taskservice.Service, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		ctx:               ctx,
		svc:               svc,
		reload:            svc.Reload,
		keys:              NewKeyMap(cfg.KeyMappings),
		help:              help.New(),
		render:            render.NewConfig(cfg.ColorScheme),
		bg:                cfg.ColorScheme.Background,
		UIState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refresh()
	return m
}

// Init starts listening for snapshot changes when a watcher is attached
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// snapshotEventMsg carries one watcher event into the update loop
type snapshotEventMsg struct {
	event events.Event
}

// waitForEvent blocks on ch and delivers the next event as a message
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotEventMsg{event: ev}
	}
}

// refresh re-reads the board from the service and rebuilds the view
func (m *Model) refresh() {
	b, err := m.svc.Board(m.ctx)
	if err != nil {
		slog.Error("Failed to read board", "error", err)
		m.NotificationState.Add(state.LevelError, "Board unavailable: "+err.Error())
		return
	}
	m.board = b
	m.filters = board.FilterKeys(b)
	if m.UIState.FilterIdx() >= len(m.filters) {
		m.UIState.SetFilterIdx(0)
	}
	m.view = board.BuildView(b, m.currentFilter())

	sizes := make([]int, len(m.view.Columns))
	for i, col := range m.view.Columns {
		sizes[i] = len(col.Tasks)
	}
	m.UIState.ClampSelection(sizes)
}

func (m Model) currentFilter() string {
	if len(m.filters) == 0 {
		return models.FilterAll
	}
	return m.filters[m.UIState.FilterIdx()]
}

// currentColumn returns the selected column, or false when the board has none
func (m Model) currentColumn() (board.Column, bool) {
	idx := m.UIState.SelectedColumn()
	if idx >= len(m.view.Columns) {
		return board.Column{}, false
	}
	return m.view.Columns[idx], true
}

// currentTask returns the selected task, or false when the column is empty
func (m Model) currentTask() (models.Task, bool) {
	col, ok := m.currentColumn()
	if !ok || m.UIState.SelectedTask() >= len(col.Tasks) {
		return models.Task{}, false
	}
	return col.Tasks[m.UIState.SelectedTask()], true
}

// followTask moves the selection to id. It reports false when the task is
// not visible under the current filter.
func (m *Model) followTask(id string) bool {
	for c, col := range m.view.Columns {
		for t, task := range col.Tasks {
			if task.ID == id {
				m.UIState.Select(c, t)
				return true
			}
		}
	}
	return false
}

// Board returns the board as last read from the service
func (m Model) Board() models.Board { return m.board }

// BoardView returns the filtered, grouped view as last rendered
func (m Model) BoardView() board.View { return m.view }
