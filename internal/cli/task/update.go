package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jai-kanban/internal/cli"
	"github.com/thenoetrevino/jai-kanban/internal/cli/styles"
	"github.com/thenoetrevino/jai-kanban/internal/models"
	taskservice "github.com/thenoetrevino/jai-kanban/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update one or more task fields. Only the flags you pass are changed.

Examples:
  # Reassign
  jai-kanban task update t1 --assignee kai

  # Clear the project and replace the tags
  jai-kanban task update t1 --project "" --tags dev,research
`,
		Args: cli.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("description", "", "New task description")
	cmd.Flags().String("assignee", "", "New assignee")
	cmd.Flags().String("project", "", "New project (empty clears it)")
	cmd.Flags().String("priority", "", "New priority: high, medium, low")
	cmd.Flags().String("status", "", "New column")
	cmd.Flags().String("spec", "", "New markdown spec")
	cmd.Flags().StringSlice("tags", nil, "Replace tags (comma separated)")
	cmd.Flags().StringSlice("subtasks", nil, "Replace subtasks (comma separated)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	patch := patchFromFlags(cmd)
	if patch.IsEmpty() {
		return formatter.Fail(cli.Usage("at least one field flag must be specified, e.g. --assignee"))
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, taskservice.UpdateTaskRequest{
		TaskID:    args[0],
		TaskPatch: patch,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(task)
	}
	s := styles.New(cliInstance.App.Config.ColorScheme)
	return formatter.Success(task, fmt.Sprintf("%s Updated %s: %s", s.Success.Render("✓"), task.ID, task.Title))
}

// patchFromFlags builds a patch from the flags the user actually set
func patchFromFlags(cmd *cobra.Command) models.TaskPatch {
	flags := cmd.Flags()
	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	slice := func(name string) *[]string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetStringSlice(name)
		if v == nil {
			v = []string{}
		}
		return &v
	}

	patch := models.TaskPatch{
		Title:       str("title"),
		Description: str("description"),
		Assignee:    str("assignee"),
		Project:     str("project"),
		Spec:        str("spec"),
		Tags:        slice("tags"),
		Subtasks:    slice("subtasks"),
	}
	if v := str("priority"); v != nil {
		p := models.Priority(strings.ToLower(*v))
		patch.Priority = &p
	}
	if v := str("status"); v != nil {
		st := models.Status(strings.ToLower(*v))
		patch.Status = &st
	}
	return patch
}
