package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jai-kanban/internal/cli"
	"github.com/thenoetrevino/jai-kanban/internal/models"
	"github.com/thenoetrevino/jai-kanban/internal/user"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in column order, optionally narrowed by filter and column.

Examples:
  # Every task
  jai-kanban task list

  # Tasks tagged dev that are in review
  jai-kanban task list --filter dev --status review

  # My tasks
  jai-kanban task list --mine

  # IDs only, for scripts
  jai-kanban task list --quiet
`,
		Args: cli.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("filter", models.FilterAll, "Filter key: all, a tag, or a project")
	cmd.Flags().String("status", "", "Only tasks in this column")
	cmd.Flags().String("assignee", "", "Only tasks assigned to this person")
	cmd.Flags().Bool("mine", false, "Only tasks assigned to the current OS user")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	filter, _ := cmd.Flags().GetString("filter")
	status, _ := cmd.Flags().GetString("status")
	assignee, _ := cmd.Flags().GetString("assignee")
	if mine, _ := cmd.Flags().GetBool("mine"); mine {
		if assignee != "" {
			return formatter.Fail(cli.Usage("--mine and --assignee cannot be combined"))
		}
		assignee = user.Handle()
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	view, err := cliInstance.App.TaskService.View(ctx, filter)
	if err != nil {
		return formatter.Fail(err)
	}

	wanted := models.Status(strings.ToLower(status))
	if status != "" {
		b, err := cliInstance.App.TaskService.Board(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		if !b.HasColumn(wanted) {
			return formatter.Fail(fmt.Errorf("%w: %q", models.ErrUnknownStatus, status))
		}
	}

	tasks := []models.Task{}
	for _, col := range view.Columns {
		if status != "" && col.Status != wanted {
			continue
		}
		for _, t := range col.Tasks {
			if assignee == "" || strings.EqualFold(t.Assignee, assignee) {
				tasks = append(tasks, t)
			}
		}
	}

	if formatter.Quiet {
		ids := make([]string, len(tasks))
		for i, t := range tasks {
			ids[i] = t.ID
		}
		return formatter.Success(ids)
	}
	if formatter.JSON {
		return formatter.Success(tasks)
	}

	// Human-readable output
	if len(tasks) == 0 {
		return formatter.Success(nil, "No tasks found")
	}
	lines := []string{fmt.Sprintf("Found %d tasks:", len(tasks)), ""}
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("  [%s] %s  (%s, → %s)", t.ID, t.Title, t.Status, t.Assignee))
	}
	return formatter.Success(tasks, lines...)
}
