package tui

import (
	"errors"
	"log/slog"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jai-kanban/internal/models"
	taskservice "github.com/thenoetrevino/jai-kanban/internal/services/task"
	"github.com/thenoetrevino/jai-kanban/internal/tui/render"
	"github.com/thenoetrevino/jai-kanban/internal/tui/state"
)

// Update handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		cmd := m.handleKey(msg.String())
		return m, cmd

	case snapshotEventMsg:
		m.handleSnapshotEvent(msg)
		return m, waitForEvent(m.events)
	}
	return m, nil
}

// handleKey dispatches a key press according to the current mode
func (m *Model) handleKey(k string) tea.Cmd {
	m.NotificationState.Clear()

	switch m.UIState.Mode() {
	case state.HelpMode:
		m.UIState.SetMode(state.NormalMode)
		return nil
	case state.EditMode:
		return m.handleEditKey(k)
	default:
		return m.handleNormalKey(k)
	}
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

func (m *Model) handleNormalKey(k string) tea.Cmd {
	km := m.keys
	switch {
	case matches(k, km.Quit):
		return tea.Quit
	case matches(k, km.ShowHelp):
		m.UIState.SetMode(state.HelpMode)
	case matches(k, km.PrevColumn):
		m.UIState.SetSelectedColumn(max(m.UIState.SelectedColumn()-1, 0))
	case matches(k, km.NextColumn):
		m.UIState.SetSelectedColumn(min(m.UIState.SelectedColumn()+1, max(len(m.view.Columns)-1, 0)))
	case matches(k, km.PrevTask):
		m.UIState.SetSelectedTask(m.UIState.SelectedTask() - 1)
	case matches(k, km.NextTask):
		if col, ok := m.currentColumn(); ok && m.UIState.SelectedTask() < len(col.Tasks)-1 {
			m.UIState.SetSelectedTask(m.UIState.SelectedTask() + 1)
		}
	case matches(k, km.NextFilter):
		m.UIState.CycleFilter(1, len(m.filters))
		m.refresh()
	case matches(k, km.PrevFilter):
		m.UIState.CycleFilter(-1, len(m.filters))
		m.refresh()
	case matches(k, km.ClearFilter):
		m.UIState.SetFilterIdx(0)
		m.refresh()
	case matches(k, km.ToggleExpand):
		if task, ok := m.currentTask(); ok {
			m.UIState.ToggleExpanded(task.ID)
		}
	case matches(k, km.EditTask):
		if task, ok := m.currentTask(); ok {
			m.UIState.SetExpanded(task.ID, true)
			m.UIState.SetMode(state.EditMode)
		}
	case matches(k, km.MoveTaskLeft):
		m.moveSelected(-1)
	case matches(k, km.MoveTaskRight):
		m.moveSelected(1)
	case matches(k, km.Reload):
		m.reloadBoard("Board reloaded")
	}
	return nil
}

// moveSelected moves the selected task one column left (-1) or right (+1)
// and keeps it selected
func (m *Model) moveSelected(dir int) {
	task, ok := m.currentTask()
	if !ok {
		return
	}
	var err error
	if dir < 0 {
		_, err = m.svc.MoveTaskToPrevColumn(m.ctx, task.ID)
	} else {
		_, err = m.svc.MoveTaskToNextColumn(m.ctx, task.ID)
	}
	m.afterMutation(task.ID, err)
}

// ============================================================================
// EDIT MODE HANDLERS
// ============================================================================

func (m *Model) handleEditKey(k string) tea.Cmd {
	km := m.keys
	task, ok := m.currentTask()
	if !ok {
		m.UIState.SetMode(state.NormalMode)
		return nil
	}

	switch {
	case k == "ctrl+c":
		return tea.Quit
	case matches(k, km.Close, km.EditTask, km.Quit):
		m.UIState.SetMode(state.NormalMode)
	case matches(k, km.PrevTask):
		m.UIState.MoveEditRow(-1, render.EditorRowCount)
	case matches(k, km.NextTask):
		m.UIState.MoveEditRow(1, render.EditorRowCount)
	case matches(k, km.PrevColumn):
		m.changeField(task, -1)
	case matches(k, km.NextColumn):
		m.changeField(task, 1)
	case matches(k, km.ToggleExpand):
		if m.UIState.EditRow() == render.RowTags {
			m.toggleTag(task)
		}
	}
	return nil
}

// changeField steps the focused editor row's value in direction dir
func (m *Model) changeField(task models.Task, dir int) {
	req := taskservice.UpdateTaskRequest{TaskID: task.ID}

	switch m.UIState.EditRow() {
	case render.RowAssignee:
		next := cycle(m.board.Assignees, task.Assignee, dir)
		if next == task.Assignee {
			return
		}
		req.Assignee = &next
	case render.RowProject:
		next := cycle(append([]string{""}, m.board.Projects...), task.Project, dir)
		if next == task.Project {
			return
		}
		req.Project = &next
	case render.RowTags:
		m.UIState.MoveTagCursor(dir, len(render.EditorTags(task, m.board)))
		return
	case render.RowColumn:
		m.moveSelected(dir)
		return
	}

	_, err := m.svc.UpdateTask(m.ctx, req)
	m.afterMutation(task.ID, err)
}

// toggleTag adds or removes the tag under the editor's tag cursor
func (m *Model) toggleTag(task models.Task) {
	tags := render.EditorTags(task, m.board)
	if len(tags) == 0 {
		return
	}
	tag := tags[min(m.UIState.TagCursor(), len(tags)-1)]

	next := slices.DeleteFunc(slices.Clone(task.Tags), func(t string) bool { return t == tag })
	if len(next) == len(task.Tags) {
		next = append(next, tag)
	}
	_, err := m.svc.UpdateTask(m.ctx, taskservice.UpdateTaskRequest{
		TaskID:    task.ID,
		TaskPatch: models.TaskPatch{Tags: &next},
	})
	m.afterMutation(task.ID, err)
}

// cycle returns the option dir steps away from current, wrapping around.
// A current value missing from options starts from the first option.
func cycle(options []string, current string, dir int) string {
	if len(options) == 0 {
		return current
	}
	idx := slices.Index(options, current)
	if idx < 0 {
		return options[0]
	}
	n := len(options)
	return options[((idx+dir)%n+n)%n]
}

// ============================================================================
// SHARED
// ============================================================================

// afterMutation refreshes the view, keeps taskID selected when it is still
// visible and turns err into a notification
func (m *Model) afterMutation(taskID string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, taskservice.ErrNotPersisted):
		m.NotificationState.Add(state.LevelWarning, "Not saved: "+err.Error())
	case errors.Is(err, taskservice.ErrAlreadyFirstColumn), errors.Is(err, taskservice.ErrAlreadyLastColumn):
		m.NotificationState.Add(state.LevelInfo, err.Error())
		return
	default:
		slog.Warn("Task change rejected", "task", taskID, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	m.refresh()
	if !m.followTask(taskID) && m.UIState.Mode() == state.EditMode {
		// the edit hid the task under the current filter
		m.UIState.SetMode(state.NormalMode)
	}
}

func (m *Model) reloadBoard(message string) {
	if err := m.reload(m.ctx); err != nil {
		slog.Error("Failed to reload board", "error", err)
		m.NotificationState.Add(state.LevelError, "Reload failed: "+err.Error())
		return
	}
	selected, hasSelection := m.currentTask()
	m.refresh()
	if hasSelection {
		m.followTask(selected.ID)
	}
	m.NotificationState.Add(state.LevelInfo, message)
}

func (m *Model) handleSnapshotEvent(msg snapshotEventMsg) {
	slog.Debug("Snapshot event", "type", msg.event.Type, "seq", msg.event.SequenceID)
	m.reloadBoard("Board changed on disk")
}
