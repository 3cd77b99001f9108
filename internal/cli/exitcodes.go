package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, save failures, or any error that doesn't fit
	// the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, unknown flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: an unreadable seed document or one that fails its schema.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: unknown status, priority, assignee, tag or project, a full
	// active column, or a move past the first or last column.
	ExitValidation = 5
)
