package snapshot

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jai-kanban/internal/cli"
	"github.com/thenoetrevino/jai-kanban/internal/persistence"
)

// SnapshotCmd returns the snapshot parent command
func SnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export or reset the saved board",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}

// ExportCmd returns the snapshot export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current board document",
		Long: `Write the current board as a seed-compatible JSON document, to stdout
or to the file given with --output.`,
		Args: cli.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().Bool("raw", false, "Write the stored snapshot bytes; fails when nothing has been saved yet")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	output, _ := cmd.Flags().GetString("output")
	raw, _ := cmd.Flags().GetBool("raw")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	data, err := exportBoard(cmd, cliInstance, raw)
	if err != nil {
		return formatter.Fail(err)
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return formatter.Fail(fmt.Errorf("failed to write %s: %w", output, err))
	}
	return nil
}

// exportBoard returns the stored snapshot when raw is set, otherwise the
// board currently loaded (which is the seed when nothing was saved)
func exportBoard(cmd *cobra.Command, c *cli.CLI, raw bool) ([]byte, error) {
	ctx := cmd.Context()
	if raw {
		return c.App.Adapter.Export(ctx)
	}
	b, err := c.App.TaskService.Board(ctx)
	if err != nil {
		return nil, err
	}
	return persistence.Encode(b)
}

// ResetCmd returns the snapshot reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved board and start again from the seed",
		Args:  cli.NoArgs,
		RunE:  runReset,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := cliInstance.App.TaskService.Reset(ctx); err != nil {
		return formatter.Fail(err)
	}

	result := map[string]string{"slot": cliInstance.App.Adapter.Key(), "source": cliInstance.App.Seed.Name()}
	return formatter.Success(result, fmt.Sprintf("✓ Board reset from %s seed", cliInstance.App.Seed.Name()))
}
