package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrEmptyUpdate   = errors.New("update changes no fields")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
	ErrNotLoaded    = errors.New("board not loaded")

	// ErrNotPersisted wraps a save failure; the in-memory board already holds the change
	ErrNotPersisted = errors.New("change applied but not saved")
)

// Movement-related errors
var (
	// ErrAlreadyLastColumn indicates that the task is already in the last column
	ErrAlreadyLastColumn = errors.New("task is already in the last column")

	// ErrAlreadyFirstColumn indicates that the task is already in the first column
	ErrAlreadyFirstColumn = errors.New("task is already in the first column")
)
