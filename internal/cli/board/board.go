package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jai-kanban/internal/board"
	"github.com/thenoetrevino/jai-kanban/internal/cli"
	"github.com/thenoetrevino/jai-kanban/internal/cli/styles"
	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect the board",
	}

	cmd.AddCommand(ShowCmd())

	return cmd
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board grouped by column",
		Long: `Print every column with its tasks under the given filter.

Examples:
  jai-kanban board show
  jai-kanban board show --filter infra --json
`,
		Args: cli.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().String("filter", models.FilterAll, "Filter key: all, a tag, or a project")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	filter, _ := cmd.Flags().GetString("filter")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	view, err := cliInstance.App.TaskService.View(ctx, filter)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		var ids []string
		for _, col := range view.Columns {
			for _, t := range col.Tasks {
				ids = append(ids, t.ID)
			}
		}
		return formatter.Success(ids)
	}
	if formatter.JSON {
		return formatter.Success(view)
	}
	return formatter.Success(view, renderView(view, styles.New(cliInstance.App.Config.ColorScheme)))
}

// renderView prints columns one after another
//
//	QUEUE (1)
//	  [t1] Wire task API  → jai  [dev]
//
//	ACTIVE (2) (2/3)
//	...
func renderView(view board.View, s styles.Styles) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s %s\n", s.Label.Render("Filter:"), s.Value.Render(view.Filter))
	if !view.LastUpdated.IsZero() {
		fmt.Fprintf(&out, "%s %s\n", s.Label.Render("Updated:"), s.Subtitle.Render(view.LastUpdated.String()))
	}

	for _, col := range view.Columns {
		header := fmt.Sprintf("%s (%d)", strings.ToUpper(string(col.Status)), len(col.Tasks))
		if col.Status == models.StatusActive {
			header += fmt.Sprintf(" (%d/%d)", view.ActiveCount, view.ActiveLimit)
		}
		out.WriteString("\n" + s.Header.Render(header) + "\n")

		if len(col.Tasks) == 0 {
			out.WriteString("  " + s.Subtitle.Render("No tasks") + "\n")
			continue
		}
		for _, t := range col.Tasks {
			line := fmt.Sprintf("  [%s] %s  → %s", t.ID, t.Title, t.Assignee)
			if len(t.Tags) > 0 {
				line += "  " + s.TagChips(t.Tags)
			}
			out.WriteString(line + "\n")
		}
	}
	return strings.TrimRight(out.String(), "\n")
}
