package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/jai-kanban/internal/config"
)

// KeyMap holds the board's key bindings, built from the configured mappings.
// Arrow keys, enter and esc are always bound alongside the configured keys.
type KeyMap struct {
	PrevColumn    key.Binding
	NextColumn    key.Binding
	PrevTask      key.Binding
	NextTask      key.Binding
	NextFilter    key.Binding
	PrevFilter    key.Binding
	ClearFilter   key.Binding
	ToggleExpand  key.Binding
	EditTask      key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	Reload        key.Binding
	ShowHelp      key.Binding
	Quit          key.Binding
	Close         key.Binding
}

// NewKeyMap builds bindings from km
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		PrevColumn:    key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "column")),
		NextColumn:    key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "column")),
		PrevTask:      key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "task")),
		NextTask:      key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "task")),
		NextFilter:    key.NewBinding(key.WithKeys(km.NextFilter), key.WithHelp(km.NextFilter, "next filter")),
		PrevFilter:    key.NewBinding(key.WithKeys(km.PrevFilter), key.WithHelp(km.PrevFilter, "prev filter")),
		ClearFilter:   key.NewBinding(key.WithKeys(km.ClearFilter), key.WithHelp(km.ClearFilter, "all tasks")),
		ToggleExpand:  key.NewBinding(key.WithKeys(km.ToggleExpand, "enter"), key.WithHelp(km.ToggleExpand, "expand")),
		EditTask:      key.NewBinding(key.WithKeys(km.EditTask), key.WithHelp(km.EditTask, "edit")),
		MoveTaskLeft:  key.NewBinding(key.WithKeys(km.MoveTaskLeft), key.WithHelp(km.MoveTaskLeft, "move left")),
		MoveTaskRight: key.NewBinding(key.WithKeys(km.MoveTaskRight), key.WithHelp(km.MoveTaskRight, "move right")),
		Reload:        key.NewBinding(key.WithKeys(km.Reload), key.WithHelp(km.Reload, "reload")),
		ShowHelp:      key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:          key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
		Close:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFilter, k.ToggleExpand, k.EditTask, k.MoveTaskRight, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.NextFilter, k.PrevFilter, k.ClearFilter},
		{k.ToggleExpand, k.EditTask, k.MoveTaskLeft, k.MoveTaskRight},
		{k.Reload, k.ShowHelp, k.Quit},
	}
}

// pressed adapts a key string to key.Matches
type pressed string

func (p pressed) String() string { return string(p) }

func matches(k string, b ...key.Binding) bool {
	return key.Matches(pressed(k), b...)
}
