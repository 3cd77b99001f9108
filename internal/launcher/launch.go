package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jai-kanban/internal/app"
	"github.com/thenoetrevino/jai-kanban/internal/tui"
)

// Launch runs the terminal board until the user quits or ctx is cancelled.
// Snapshot changes written by other processes reload the board when the
// application was built with watching enabled.
func Launch(ctx context.Context, a *app.App, opts ...tea.ProgramOption) error {
	events, err := a.Watch(ctx)
	if err != nil {
		// live updates are optional
		slog.Warn("Failed to watch snapshot", "error", err)
		slog.Info("Continuing without live updates")
	}

	model := tui.InitialModel(ctx, a.TaskService, a.Config,
		tui.WithEvents(events),
		tui.WithReload(a.Reload),
	)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received, cleaning up")
		p.Kill()
		<-errChan
	}
	return nil
}
