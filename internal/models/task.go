package models

// Task represents a single card on the kanban board
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Project     string    `json:"project,omitempty"` // empty means no project
	Status      Status    `json:"status"`
	Assignee    string    `json:"assignee"`
	Priority    Priority  `json:"priority"`
	Created     Timestamp `json:"created"`
	Spec        string    `json:"spec,omitempty"`
	Subtasks    []string  `json:"subtasks,omitempty"`
}

// GetID returns the task's identifier
func (t Task) GetID() string { return t.ID }

// HasTag reports whether the task carries the given tag
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// TaskPatch is a shallow field update for a task.
// Fields with pointers are optional - nil means don't update.
// A non-nil empty Project clears the task's project.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Project     *string   `json:"project,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Assignee    *string   `json:"assignee,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Spec        *string   `json:"spec,omitempty"`
	Subtasks    *[]string `json:"subtasks,omitempty"`
}

// IsEmpty reports whether the patch touches no field
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Tags == nil &&
		p.Project == nil && p.Status == nil && p.Assignee == nil &&
		p.Priority == nil && p.Spec == nil && p.Subtasks == nil
}

// Apply returns a copy of t with every set field of the patch overwritten.
// Slices are copied so the result never aliases the patch.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Tags != nil {
		t.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.Project != nil {
		t.Project = *p.Project
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Spec != nil {
		t.Spec = *p.Spec
	}
	if p.Subtasks != nil {
		t.Subtasks = append([]string{}, (*p.Subtasks)...)
	}
	return t
}
