package models

import "errors"

// Domain-specific errors for board mutations
var (
	// ErrUnknownStatus indicates a status that is not one of the board's columns
	ErrUnknownStatus = errors.New("status is not a board column")

	// ErrInvalidPriority indicates a priority outside high/medium/low
	ErrInvalidPriority = errors.New("priority must be high, medium or low")

	// ErrUnknownAssignee indicates an assignee missing from the board's assignee list
	ErrUnknownAssignee = errors.New("assignee is not a known board assignee")

	// ErrUnknownTag indicates a tag missing from the board's tag list
	ErrUnknownTag = errors.New("tag is not a known board tag")

	// ErrUnknownProject indicates a project missing from the board's project list
	ErrUnknownProject = errors.New("project is not a known board project")

	// ErrActiveLimitReached indicates the active column is already at maxActive
	ErrActiveLimitReached = errors.New("active column is at capacity")

	// ErrEmptyTitle indicates a title update to an empty string
	ErrEmptyTitle = errors.New("task title cannot be empty")
)
