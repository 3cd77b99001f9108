package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Status is the column a task currently sits in
type Status string

const (
	StatusQueue  Status = "queue"
	StatusActive Status = "active"
	StatusReview Status = "review"
	StatusDone   Status = "done"
)

// DefaultColumns is the fixed column order of every board
var DefaultColumns = []Status{StatusQueue, StatusActive, StatusReview, StatusDone}

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Priority is the urgency of a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every valid priority, most urgent first
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// ============================================================================
// BOARD DEFAULTS
// ============================================================================

// FilterAll is the filter key that matches every task
const FilterAll = "all"

// DefaultMaxActive is the displayed capacity of the active column when the
// document does not set maxActive
const DefaultMaxActive = 5

// DefaultSlotKey names the snapshot slot the board is persisted under
const DefaultSlotKey = "jai-kanban-data"
