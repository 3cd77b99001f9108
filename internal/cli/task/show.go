package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jai-kanban/internal/cli"
	"github.com/thenoetrevino/jai-kanban/internal/cli/styles"
	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/models"
	"github.com/thenoetrevino/jai-kanban/internal/tui/render"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display all details of a task including description, subtasks and the rendered spec.",
		Args:  cli.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	task, err := cliInstance.App.TaskService.GetTask(ctx, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(task)
	}
	return formatter.Success(task, renderTask(task, cliInstance.App.Config.ColorScheme))
}

// renderTask draws the task as a bordered card
func renderTask(task models.Task, colors config.ColorScheme) string {
	s := styles.New(colors)
	var content strings.Builder

	content.WriteString(s.Title.Render(task.ID + ": " + task.Title))
	content.WriteString("\n\n")

	if len(task.Tags) > 0 {
		content.WriteString(s.TagChips(task.Tags) + "\n\n")
	}

	// Metadata rows
	fmt.Fprintf(&content, "%s %s  %s %s\n",
		s.Label.Render("Status:"), s.Value.Render(string(task.Status)),
		s.Label.Render("Priority:"), s.Priority(task.Priority),
	)
	fmt.Fprintf(&content, "%s %s\n", s.Label.Render("Assignee:"), s.Value.Render(task.Assignee))
	project := task.Project
	if project == "" {
		project = "none"
	}
	fmt.Fprintf(&content, "%s %s\n", s.Label.Render("Project:"), s.Value.Render(project))
	if !task.Created.IsZero() {
		fmt.Fprintf(&content, "%s %s\n", s.Label.Render("Created:"), s.Subtitle.Render(task.Created.String()))
	}

	if task.Description != "" {
		content.WriteString(s.Section.Render("Description"))
		content.WriteString("\n")
		for _, line := range strings.Split(task.Description, "\n") {
			content.WriteString("  " + s.Value.Render(line) + "\n")
		}
	}

	if len(task.Subtasks) > 0 {
		content.WriteString(s.Section.Render("Subtasks"))
		content.WriteString("\n")
		for _, sub := range task.Subtasks {
			content.WriteString("  " + s.Value.Render("○ "+sub) + "\n")
		}
	}

	if task.Spec != "" {
		content.WriteString(s.Section.Render("Spec"))
		content.WriteString("\n")
		content.WriteString(render.NewMarkdown().Render(task.Spec, styles.CardWidth-6))
	}

	return s.Card.Render(strings.TrimRight(content.String(), "\n"))
}
