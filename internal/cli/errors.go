package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jai-kanban/internal/models"
	"github.com/thenoetrevino/jai-kanban/internal/persistence"
	"github.com/thenoetrevino/jai-kanban/internal/seed"
	taskservice "github.com/thenoetrevino/jai-kanban/internal/services/task"
)

// ErrNoCLI is returned when a command runs without an initialized CLI in its context
var ErrNoCLI = errors.New("CLI not initialized")

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error

	// reported is set once an OutputFormatter has shown the error
	reported bool
}

func (e *CodedError) Error() string { return e.Err.Error() }
func (e *CodedError) Unwrap() error { return e.Err }

// Reported reports whether the error was already printed to the user
func (e *CodedError) Reported() bool { return e.reported }

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// Usage returns a usage error with exit code ExitUsage
func Usage(format string, args ...any) error {
	return Exit(ExitUsage, fmt.Errorf(format, args...))
}

// ExitCode maps err to a process exit code. An explicit CodedError wins;
// otherwise known sentinel errors pick the code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	code, _ := classify(err)
	return code
}

// classify returns the exit code and the machine-readable error code for err
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return ExitNotFound, "TASK_NOT_FOUND"
	case errors.Is(err, persistence.ErrSlotEmpty):
		return ExitNotFound, "SNAPSHOT_EMPTY"
	case errors.Is(err, seed.ErrRead), errors.Is(err, seed.ErrInvalid):
		return ExitDataErr, "SEED_INVALID"
	case errors.Is(err, taskservice.ErrAlreadyFirstColumn):
		return ExitValidation, "NO_PREV_COLUMN"
	case errors.Is(err, taskservice.ErrAlreadyLastColumn):
		return ExitValidation, "NO_NEXT_COLUMN"
	case errors.Is(err, models.ErrActiveLimitReached):
		return ExitValidation, "ACTIVE_LIMIT_REACHED"
	case errors.Is(err, models.ErrUnknownStatus),
		errors.Is(err, models.ErrInvalidPriority),
		errors.Is(err, models.ErrUnknownAssignee),
		errors.Is(err, models.ErrUnknownTag),
		errors.Is(err, models.ErrUnknownProject),
		errors.Is(err, models.ErrEmptyTitle),
		errors.Is(err, taskservice.ErrEmptyUpdate),
		errors.Is(err, taskservice.ErrInvalidTaskID):
		return ExitValidation, "VALIDATION_ERROR"
	case errors.Is(err, taskservice.ErrNotPersisted):
		return ExitError, "NOT_SAVED"
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) && exitErr.Code == ExitUsage {
		return ExitUsage, "USAGE_ERROR"
	}
	return ExitError, "ERROR"
}

// suggestion returns a hint for errors the user can act on
func suggestion(err error) string {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return "Run 'jai-kanban task list' to see task IDs"
	case errors.Is(err, models.ErrUnknownStatus):
		return "Valid columns: queue, active, review, done"
	case errors.Is(err, models.ErrInvalidPriority):
		return "Valid priorities: high, medium, low"
	case errors.Is(err, taskservice.ErrEmptyUpdate):
		return "Pass at least one field flag, e.g. --assignee"
	case errors.Is(err, persistence.ErrSlotEmpty):
		return "Nothing saved yet; drop --raw to export the seed board"
	case errors.Is(err, seed.ErrRead), errors.Is(err, seed.ErrInvalid):
		return "Check seed_path in the config file"
	}
	return ""
}

// ExactArgs is cobra.ExactArgs reporting a usage error
func ExactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

// NoArgs is cobra.NoArgs reporting a usage error
func NoArgs(cmd *cobra.Command, args []string) error {
	return usageArgs(cobra.NoArgs)(cmd, args)
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return Exit(ExitUsage, check(cmd, args))
	}
}
