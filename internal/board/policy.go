package board

import (
	"fmt"

	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// Policy selects the optional hardening rules applied before a mutation
type Policy struct {
	// Strict requires assignee, project and tags to be members of the board's known sets
	Strict bool `yaml:"strict"`

	// EnforceActiveLimit rejects moves into active once maxActive tasks are there
	EnforceActiveLimit bool `yaml:"enforce_active_limit"`
}

// ValidatePatch checks a patch against the board's invariants. Status and
// priority are always checked; membership only under a strict policy.
func ValidatePatch(b models.Board, patch models.TaskPatch, policy Policy) error {
	if patch.Title != nil && *patch.Title == "" {
		return models.ErrEmptyTitle
	}
	if patch.Status != nil && !b.HasColumn(*patch.Status) {
		return fmt.Errorf("%w: %q", models.ErrUnknownStatus, *patch.Status)
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidPriority, *patch.Priority)
	}

	if !policy.Strict {
		return nil
	}
	if patch.Assignee != nil && !contains(b.Assignees, *patch.Assignee) {
		return fmt.Errorf("%w: %q", models.ErrUnknownAssignee, *patch.Assignee)
	}
	if patch.Project != nil && *patch.Project != "" && !contains(b.Projects, *patch.Project) {
		return fmt.Errorf("%w: %q", models.ErrUnknownProject, *patch.Project)
	}
	if patch.Tags != nil {
		for _, tag := range *patch.Tags {
			if !contains(b.Tags, tag) {
				return fmt.Errorf("%w: %q", models.ErrUnknownTag, tag)
			}
		}
	}
	return nil
}

// CheckCapacity rejects a move of task id into active when the policy enforces
// the limit and the column is already full. Tasks already active never count
// against themselves.
func CheckCapacity(b models.Board, id string, status models.Status, policy Policy) error {
	if !policy.EnforceActiveLimit || status != models.StatusActive {
		return nil
	}
	if task, idx := FindTask(b, id); idx >= 0 && task.Status == models.StatusActive {
		return nil
	}
	if ActiveCount(b) >= ActiveLimit(b) {
		return fmt.Errorf("%w (%d/%d)", models.ErrActiveLimitReached, ActiveCount(b), ActiveLimit(b))
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
