// Package render draws the board as strings. Every function is a pure
// function of its inputs and a Config; nothing here reads package state.
package render

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jai-kanban/internal/config/colors"
)

// Config carries the resolved theme into every render function
type Config struct {
	Styles Styles

	// Lookup tables keyed by tag, project and priority name
	TagColors      map[string]string
	ProjectColors  map[string]string
	PriorityColors map[string]string

	ChipFg color.Color

	Markdown *Markdown
}

// Styles holds the lipgloss styles derived from a color scheme
type Styles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	TabGap    lipgloss.Style

	Column       lipgloss.Style
	ColumnHeader lipgloss.Style
	Capacity     lipgloss.Style

	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	Chip         lipgloss.Style
	Description  lipgloss.Style
	Meta         lipgloss.Style
	Subtle       lipgloss.Style
	Normal       lipgloss.Style
	SelectedEdge color.Color

	Editor      lipgloss.Style
	EditorLabel lipgloss.Style
	EditorValue lipgloss.Style
	EditorFocus lipgloss.Style

	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	HelpBox lipgloss.Style
}

// NewConfig resolves cs into styles. cs should already have defaults applied.
func NewConfig(cs colors.ColorScheme) Config {
	return Config{
		Styles:         newStyles(cs),
		TagColors:      cs.TagColors,
		ProjectColors:  cs.ProjectColors,
		PriorityColors: cs.PriorityColors,
		ChipFg:         lipgloss.Color(cs.AccentFg),
		Markdown:       NewMarkdown(),
	}
}

func newStyles(cs colors.ColorScheme) Styles {
	c := lipgloss.Color

	tab := lipgloss.NewStyle().
		Foreground(c(cs.Subtle)).
		Background(c(cs.TabBackground)).
		Padding(0, 1).
		MarginRight(1)

	banner := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	return Styles{
		Tab:       tab,
		ActiveTab: tab.Foreground(c(cs.AccentFg)).Background(c(cs.Accent)).Bold(true),
		TabGap:    lipgloss.NewStyle(),

		Column: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(c(cs.ColumnBorder)).
			PaddingLeft(1).
			PaddingRight(1),
		ColumnHeader: lipgloss.NewStyle().Foreground(c(cs.Subtle)).Bold(true),
		Capacity:     lipgloss.NewStyle().Foreground(c(cs.Accent)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(cs.CardBorder)).
			Padding(0, 1),
		CardTitle:    lipgloss.NewStyle().Foreground(c(cs.Title)).Bold(true),
		Chip:         lipgloss.NewStyle().Foreground(c(cs.ChipFg)).Background(c(cs.ChipBg)).Bold(true).Padding(0, 1),
		Description:  lipgloss.NewStyle().Foreground(c(cs.Subtle)),
		Meta:         lipgloss.NewStyle().Foreground(c(cs.Subtle)).Faint(true),
		Subtle:       lipgloss.NewStyle().Foreground(c(cs.Subtle)).Italic(true),
		Normal:       lipgloss.NewStyle().Foreground(c(cs.Normal)),
		SelectedEdge: c(cs.SelectedBorder),

		Editor:      box.BorderForeground(c(cs.Accent)),
		EditorLabel: lipgloss.NewStyle().Foreground(c(cs.Subtle)).Width(10),
		EditorValue: lipgloss.NewStyle().Foreground(c(cs.Normal)),
		EditorFocus: lipgloss.NewStyle().Foreground(c(cs.Accent)).Bold(true),

		Info:    banner.Foreground(c(cs.InfoFg)).Background(c(cs.InfoBg)),
		Warning: banner.Foreground(c(cs.WarningFg)).Background(c(cs.WarningBg)),
		Error:   banner.Foreground(c(cs.ErrorFg)).Background(c(cs.ErrorBg)),
		HelpBox: box.BorderForeground(c(cs.SelectedBorder)),
	}
}

// colorOr returns the color for name in table, or fallback when absent
func colorOr(table map[string]string, name string, fallback color.Color) color.Color {
	if hex, ok := table[name]; ok && hex != "" {
		return lipgloss.Color(hex)
	}
	return fallback
}
