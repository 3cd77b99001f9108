package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/jai-kanban/internal/app"
	"github.com/thenoetrevino/jai-kanban/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
}

// NewCLI initializes the CLI with the configured snapshot backend and loads the board
func NewCLI(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize board: %w", err)
	}
	return &CLI{App: application}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c == nil || c.App == nil {
		return nil
	}
	return c.App.Close()
}
