package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jai-kanban/internal/cli"
	"github.com/thenoetrevino/jai-kanban/internal/cli/styles"
	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <next|prev|column>",
		Short: "Move a task to another column",
		Long: `Move a task to another column by direction or column name.

Examples:
  # Move to next column
  jai-kanban task move t1 next

  # Move to previous column
  jai-kanban task move t1 prev

  # Move to specific column by name (case-insensitive)
  jai-kanban task move t1 review

  # JSON output for agents
  jai-kanban task move t1 next --json
`,
		Args: cli.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	taskID, target := args[0], strings.ToLower(args[1])

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	svc := cliInstance.App.TaskService

	before, err := svc.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(err)
	}

	var task models.Task
	switch target {
	case "next":
		task, err = svc.MoveTaskToNextColumn(ctx, taskID)
	case "prev":
		task, err = svc.MoveTaskToPrevColumn(ctx, taskID)
	default:
		task, err = svc.MoveTaskToColumn(ctx, taskID, models.Status(target))
	}
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(task)
	}
	s := styles.New(cliInstance.App.Config.ColorScheme)
	return formatter.Success(task, fmt.Sprintf("%s Moved %s: %s → %s",
		s.Success.Render("✓"), task.ID, before.Status, task.Status))
}
