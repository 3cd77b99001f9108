// Package testutil holds helpers shared by the CLI command tests
package testutil

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jai-kanban/internal/app"
	"github.com/thenoetrevino/jai-kanban/internal/cli"
	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/persistence"
)

// SetupCLI returns a CLI over an in-memory snapshot slot loaded from the
// embedded seed, together with the slot so tests can inspect saves
func SetupCLI(t *testing.T, configure ...func(*config.Config)) (*cli.CLI, *persistence.MemorySlot) {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory
	for _, fn := range configure {
		fn(cfg)
	}

	slot := persistence.NewMemorySlot()
	c, err := cli.NewCLI(t.Context(), cfg, app.WithSlot(slot))
	if err != nil {
		t.Fatalf("Failed to create test CLI: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Logf("Warning: CLI close error during cleanup: %v", err)
		}
	})
	return c, slot
}

// ExecuteCommand runs cmd with args and c in its context, capturing stdout
// and stderr
func ExecuteCommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	SetupCobraCommand(cmd, args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(cli.WithCLI(t.Context(), c))
	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
