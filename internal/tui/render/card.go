package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// descriptionLines is how many description lines a collapsed card shows
const descriptionLines = 2

// CardProps describes how one card is drawn
type CardProps struct {
	Selected bool
	Expanded bool
	// Width is the outer width of the card including its border
	Width int
}

// Card renders a task as a card
//
//	╭──────────────────────╮
//	│ {Title}              │
//	│ DEV RESEARCH         │
//	│ description, clamped │
//	│ → assignee · project │
//	╰──────────────────────╯
//
// The border takes the priority colour; a selected card uses the selected
// border colour instead. Expanded cards add the full description, subtasks
// and the rendered spec.
func Card(task models.Task, props CardProps, cfg Config) string {
	s := cfg.Styles
	inner := max(props.Width-4, 8)

	lines := []string{s.CardTitle.Width(inner).Render(task.Title)}
	if chips := TagChips(task.Tags, inner, cfg); chips != "" {
		lines = append(lines, chips)
	}

	if task.Description != "" {
		desc := s.Description.Width(inner).Render(task.Description)
		if !props.Expanded {
			desc = clampLines(desc, descriptionLines)
		}
		lines = append(lines, desc)
	}

	lines = append(lines, metaLine(task, cfg))

	if props.Expanded {
		lines = append(lines, expandedSections(task, inner, cfg)...)
	}

	border := colorOr(cfg.PriorityColors, string(task.Priority), nil)
	style := s.Card.Width(props.Width)
	if border != nil {
		style = style.BorderForeground(border)
	}
	if props.Selected {
		style = style.BorderForeground(s.SelectedEdge).BorderStyle(lipgloss.ThickBorder())
	}
	return style.Render(strings.Join(lines, "\n"))
}

// TagChips renders the task's tags as coloured chips, wrapping onto further
// lines when they do not fit in width
func TagChips(tags []string, width int, cfg Config) string {
	if len(tags) == 0 {
		return ""
	}
	var rows []string
	var row []string
	rowWidth := 0
	for _, tag := range tags {
		chip := Chip(tag, cfg)
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, chip)
		rowWidth += w
	}
	rows = append(rows, strings.Join(row, " "))
	return strings.Join(rows, "\n")
}

// Chip renders one tag; tags without a configured colour use the default chip
func Chip(tag string, cfg Config) string {
	style := cfg.Styles.Chip
	if bg := colorOr(cfg.TagColors, tag, nil); bg != nil {
		style = style.Background(bg).Foreground(cfg.ChipFg)
	}
	return style.Render(strings.ToUpper(tag))
}

// ProjectChip renders a project name; projects without a configured colour
// use the default chip
func ProjectChip(project string, cfg Config) string {
	style := cfg.Styles.Chip.Bold(false)
	if bg := colorOr(cfg.ProjectColors, project, nil); bg != nil {
		style = style.Background(bg).Foreground(cfg.ChipFg)
	}
	return style.Render(project)
}

func metaLine(task models.Task, cfg Config) string {
	meta := cfg.Styles.Meta.Render("→ " + strings.ToUpper(task.Assignee))
	if task.Project != "" {
		meta += " " + ProjectChip(task.Project, cfg)
	}
	return meta
}

func expandedSections(task models.Task, width int, cfg Config) []string {
	s := cfg.Styles
	var out []string
	if len(task.Subtasks) > 0 {
		out = append(out, "", s.Meta.Render("SUBTASKS"))
		for _, st := range task.Subtasks {
			out = append(out, s.Subtle.Render("○ ")+s.Normal.Width(width-2).Render(st))
		}
	}
	if task.Spec != "" {
		out = append(out, "", s.Meta.Render("SPEC"), cfg.Markdown.Render(task.Spec, width))
	}
	if !task.Created.IsZero() {
		out = append(out, "", s.Meta.Render("created "+task.Created.String()))
	}
	return out
}

// clampLines keeps the first n lines of s, marking the cut with an ellipsis
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	lines = lines[:n]
	lines[n-1] = strings.TrimRight(lines[n-1], " ") + "…"
	return strings.Join(lines, "\n")
}
