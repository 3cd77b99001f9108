package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jai-kanban/internal/app"
	"github.com/thenoetrevino/jai-kanban/internal/cli"
	boardcmd "github.com/thenoetrevino/jai-kanban/internal/cli/board"
	snapshotcmd "github.com/thenoetrevino/jai-kanban/internal/cli/snapshot"
	taskcmd "github.com/thenoetrevino/jai-kanban/internal/cli/task"
	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/launcher"
	"github.com/thenoetrevino/jai-kanban/internal/logging"
)

// launchFunc runs the terminal board
type launchFunc func(ctx context.Context, a *app.App) error

func defaultLaunch(ctx context.Context, a *app.App) error {
	return launcher.Launch(ctx, a)
}

// root owns the resources opened for one invocation
type root struct {
	cmd        *cobra.Command
	configPath string
	launch     launchFunc

	cli       *cli.CLI
	logCloser io.Closer
}

// newRoot builds the command tree. The board and log file are opened in
// PersistentPreRunE and released by close.
func newRoot(launch launchFunc) *root {
	r := &root{launch: launch}
	r.cmd = &cobra.Command{
		Use:   "jai-kanban",
		Short: "jai-kanban - a four column kanban board",
		Long: `jai-kanban is a kanban board for a small team. Run without a subcommand
to open the terminal board, or use the subcommands for scripting.`,
		Args:              cli.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
		RunE:              r.runBoard,
	}
	r.cmd.PersistentFlags().StringVar(&r.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/jai-kanban/config.yaml)")
	r.cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.Exit(cli.ExitUsage, err)
	})

	r.cmd.AddCommand(boardcmd.BoardCmd())
	r.cmd.AddCommand(taskcmd.TaskCmd())
	r.cmd.AddCommand(snapshotcmd.SnapshotCmd())
	return r
}

func (r *root) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return cli.Exit(cli.ExitDataErr, err)
	}

	closer, err := logging.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	r.logCloser = closer

	// only the interactive board watches for external changes
	c, err := cli.NewCLI(cmd.Context(), cfg, app.WithWatch(cmd == r.cmd))
	if err != nil {
		formatter := cli.FormatterFor(cmd)
		return formatter.Fail(err)
	}
	r.cli = c
	cmd.SetContext(cli.WithCLI(cmd.Context(), c))
	return nil
}

func (r *root) loadConfig() (*config.Config, error) {
	if r.configPath != "" {
		return config.LoadFrom(r.configPath)
	}
	return config.Load()
}

func (r *root) runBoard(cmd *cobra.Command, _ []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	return r.launch(cmd.Context(), c.App)
}

func (r *root) close() {
	if err := r.cli.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
	if r.logCloser != nil {
		_ = r.logCloser.Close()
	}
}

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context) int {
	return execute(ctx, newRoot(defaultLaunch), os.Args[1:], os.Stderr)
}

func execute(ctx context.Context, r *root, args []string, stderr io.Writer) int {
	defer r.close()

	r.cmd.SetArgs(args)
	err := r.cmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// errors reported by a formatter carry a CodedError; anything else
	// (unknown command, launcher failure) is printed here
	var exitErr *cli.CodedError
	if !errors.As(err, &exitErr) || !exitErr.Reported() {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
