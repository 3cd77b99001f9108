package styles

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// CardWidth is the width of the task card printed by `task show`
const CardWidth = 80

// Styles are the lipgloss styles used by human-readable CLI output
type Styles struct {
	colors config.ColorScheme

	// Card styles
	Card lipgloss.Style

	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style // For field labels like "Status:", "Priority:"
	Value    lipgloss.Style // For field values
	Section  lipgloss.Style // For section headers like "Description", "Subtasks"
	Header   lipgloss.Style // Column headers in `board show`

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
}

// New builds the CLI styles for the given color scheme
func New(colors config.ColorScheme) Styles {
	return Styles{
		colors: colors,
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Accent)).
			Padding(1, 2).
			Width(CardWidth),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Accent)).
			Bold(true).
			MarginTop(1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.InfoFg)).
			Background(lipgloss.Color(colors.InfoBg)).
			Padding(0, 1),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.WarningFg)).
			Background(lipgloss.Color(colors.WarningBg)).
			Padding(0, 1),
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// TagChip renders a tag as "[name]" in its configured color, or the subtle
// color for tags without one
func (s Styles) TagChip(tag string) string {
	color, ok := s.colors.TagColors[tag]
	if !ok {
		color = s.colors.Subtle
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render("[" + tag + "]")
}

// TagChips renders all tags separated by spaces
func (s Styles) TagChips(tags []string) string {
	chips := make([]string, 0, len(tags))
	for _, tag := range tags {
		chips = append(chips, s.TagChip(tag))
	}
	return strings.Join(chips, " ")
}

// Priority renders the priority name in its configured color
func (s Styles) Priority(p models.Priority) string {
	color, ok := s.colors.PriorityColors[string(p)]
	if !ok {
		color = s.colors.Normal
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render(string(p))
}
