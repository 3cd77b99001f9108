package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	EditMode               // Edit panel open for the selected task
	HelpMode               // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), the active filter,
// expanded cards, terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	// filterIdx is the index of the active filter tab
	filterIdx int

	// expanded holds the ids of expanded cards
	expanded map[string]bool

	// editRow and tagCursor position the cursor inside the edit panel
	editRow   int
	tagCursor int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:     NormalMode,
		expanded: make(map[string]bool),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int { return s.selectedColumn }

// SetSelectedColumn sets the selected column and resets the task cursor.
func (s *UIState) SetSelectedColumn(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx != s.selectedColumn {
		s.selectedTask = 0
	}
	s.selectedColumn = idx
}

// SelectedTask returns the index of the selected task in the selected column.
func (s *UIState) SelectedTask() int { return s.selectedTask }

// SetSelectedTask sets the selected task index.
func (s *UIState) SetSelectedTask(idx int) {
	s.selectedTask = max(idx, 0)
}

// Select moves the cursor to a column and task at once.
func (s *UIState) Select(column, task int) {
	s.selectedColumn = max(column, 0)
	s.selectedTask = max(task, 0)
}

// ClampSelection keeps the cursor inside a board with the given column sizes.
func (s *UIState) ClampSelection(columnSizes []int) {
	if len(columnSizes) == 0 {
		s.selectedColumn, s.selectedTask = 0, 0
		return
	}
	s.selectedColumn = min(s.selectedColumn, len(columnSizes)-1)
	size := columnSizes[s.selectedColumn]
	if size == 0 {
		s.selectedTask = 0
		return
	}
	s.selectedTask = min(s.selectedTask, size-1)
}

// FilterIdx returns the index of the active filter tab.
func (s *UIState) FilterIdx() int { return s.filterIdx }

// CycleFilter moves the filter tab by delta, wrapping around count tabs.
func (s *UIState) CycleFilter(delta, count int) {
	if count == 0 {
		s.filterIdx = 0
		return
	}
	s.filterIdx = ((s.filterIdx+delta)%count + count) % count
	s.selectedTask = 0
}

// SetFilterIdx selects a filter tab directly.
func (s *UIState) SetFilterIdx(idx int) {
	s.filterIdx = max(idx, 0)
	s.selectedTask = 0
}

// IsExpanded reports whether the card for id is expanded.
func (s *UIState) IsExpanded(id string) bool { return s.expanded[id] }

// ToggleExpanded flips a card between collapsed and expanded.
func (s *UIState) ToggleExpanded(id string) {
	if s.expanded[id] {
		delete(s.expanded, id)
		return
	}
	s.expanded[id] = true
}

// SetExpanded expands or collapses the card for id.
func (s *UIState) SetExpanded(id string, expanded bool) {
	if expanded {
		s.expanded[id] = true
		return
	}
	delete(s.expanded, id)
}

// Expanded returns the set of expanded card ids. Callers must not modify it.
func (s *UIState) Expanded() map[string]bool { return s.expanded }

// EditRow returns the focused row of the edit panel.
func (s *UIState) EditRow() int { return s.editRow }

// MoveEditRow moves the edit panel focus by delta within rows rows.
func (s *UIState) MoveEditRow(delta, rows int) {
	s.editRow = min(max(s.editRow+delta, 0), rows-1)
}

// TagCursor returns the focused tag in the edit panel.
func (s *UIState) TagCursor() int { return s.tagCursor }

// MoveTagCursor moves the tag cursor by delta within count tags.
func (s *UIState) MoveTagCursor(delta, count int) {
	if count == 0 {
		s.tagCursor = 0
		return
	}
	s.tagCursor = min(max(s.tagCursor+delta, 0), count-1)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode { return s.mode }

// SetMode switches mode; entering EditMode resets the panel cursor.
func (s *UIState) SetMode(mode Mode) {
	if mode == EditMode && s.mode != EditMode {
		s.editRow, s.tagCursor = 0, 0
	}
	s.mode = mode
}

// Width returns the current terminal width.
func (s *UIState) Width() int { return s.width }

// Height returns the current terminal height.
func (s *UIState) Height() int { return s.height }

// SetWindowSize records the terminal dimensions.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}
