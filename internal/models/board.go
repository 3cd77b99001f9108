package models

import "slices"

// Board is the whole kanban document: metadata plus the ordered task list
type Board struct {
	LastUpdated Timestamp `json:"lastUpdated"`
	Columns     []Status  `json:"columns"`
	MaxActive   *int      `json:"maxActive,omitempty"`
	Tags        []string  `json:"tags"`
	Projects    []string  `json:"projects"`
	Assignees   []string  `json:"assignees"`
	Tasks       []Task    `json:"tasks"`
}

// HasColumn reports whether status is one of the board's columns
func (b Board) HasColumn(status Status) bool {
	for _, col := range b.Columns {
		if col == status {
			return true
		}
	}
	return false
}

// Clone returns a board whose slices can be modified without touching b.
// Task slices (tags, subtasks) are shared; mutations replace them instead
// of editing in place.
func (b Board) Clone() Board {
	out := b
	out.Columns = slices.Clone(b.Columns)
	out.Tags = slices.Clone(b.Tags)
	out.Projects = slices.Clone(b.Projects)
	out.Assignees = slices.Clone(b.Assignees)
	out.Tasks = slices.Clone(b.Tasks)
	if b.MaxActive != nil {
		limit := *b.MaxActive
		out.MaxActive = &limit
	}
	return out
}
