package render

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// Editor rows, in display order
const (
	RowAssignee = iota
	RowProject
	RowTags
	RowColumn
	EditorRowCount
)

var editorLabels = [EditorRowCount]string{"Assignee", "Project", "Tags", "Column"}

// EditorProps describes the cursor inside the edit panel
type EditorProps struct {
	Row       int
	TagCursor int
	Width     int
}

// Editor renders the edit panel for task. Assignee, project and column rows
// show the current value between cycle markers; the tags row lists every
// known tag with a checkbox.
//
//	Assignee  ‹ jai ›
//	Project   ‹ site ›
//	Tags      [x] DEV  [ ] RESEARCH
//	Column    ‹ active ›
func Editor(task models.Task, b models.Board, props EditorProps, cfg Config) string {
	s := cfg.Styles
	rows := make([]string, 0, EditorRowCount+2)
	rows = append(rows, s.CardTitle.Render(task.Title), "")

	for row := 0; row < EditorRowCount; row++ {
		label := s.EditorLabel.Render(editorLabels[row])
		if row == props.Row {
			label = s.EditorFocus.Width(10).Render(editorLabels[row])
		}

		var value string
		switch row {
		case RowAssignee:
			value = cycleValue(task.Assignee, row == props.Row, cfg)
		case RowProject:
			project := task.Project
			if project == "" {
				project = "none"
			}
			value = cycleValue(project, row == props.Row, cfg)
		case RowTags:
			value = tagToggles(task, EditorTags(task, b), props, row == props.Row, cfg)
		case RowColumn:
			value = cycleValue(string(task.Status), row == props.Row, cfg)
		}
		rows = append(rows, label+value)
	}

	rows = append(rows, "", s.Meta.Render("j/k row · h/l change · space toggle tag · esc close"))
	style := s.Editor
	if props.Width > 0 {
		style = style.Width(props.Width)
	}
	return style.Render(strings.Join(rows, "\n"))
}

// EditorTags lists the tags offered in the editor: the board's known tags,
// then any tag on the task the board does not list
func EditorTags(task models.Task, b models.Board) []string {
	tags := slices.Clone(b.Tags)
	for _, tag := range task.Tags {
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

func cycleValue(v string, focused bool, cfg Config) string {
	if focused {
		return cfg.Styles.EditorFocus.Render("‹ " + v + " ›")
	}
	return cfg.Styles.EditorValue.Render("  " + v)
}

func tagToggles(task models.Task, tags []string, props EditorProps, focused bool, cfg Config) string {
	if len(tags) == 0 {
		return cfg.Styles.Subtle.Render("no tags")
	}
	parts := make([]string, 0, len(tags))
	for i, tag := range tags {
		box := "[ ] "
		if task.HasTag(tag) {
			box = "[x] "
		}
		entry := box + strings.ToUpper(tag)
		if focused && i == props.TagCursor {
			entry = cfg.Styles.EditorFocus.Render(entry)
		} else {
			entry = cfg.Styles.EditorValue.Render(entry)
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "  ")
}
