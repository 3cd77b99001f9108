package board

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// UpdateTask returns a new board in which the task with the given id has the
// patch applied and lastUpdated set to now. The input board is not modified.
// An unknown id leaves the tasks untouched; only the timestamp moves.
func UpdateTask(b models.Board, id string, patch models.TaskPatch, now time.Time) models.Board {
	out := b.Clone()
	out.LastUpdated = models.NewTimestamp(now)

	if _, idx := FindTask(b, id); idx >= 0 {
		out.Tasks[idx] = patch.Apply(b.Tasks[idx])
	}
	return out
}

// MoveTask sets only the task's status. The status must be one of the board's
// columns; anything else is rejected and the board is returned unchanged.
func MoveTask(b models.Board, id string, status models.Status, now time.Time) (models.Board, error) {
	if !b.HasColumn(status) {
		return b, fmt.Errorf("%w: %q", models.ErrUnknownStatus, status)
	}
	return UpdateTask(b, id, models.TaskPatch{Status: &status}, now), nil
}

// NextStatus returns the column after current, and false when current is last
// or not a column
func NextStatus(b models.Board, current models.Status) (models.Status, bool) {
	for i, col := range b.Columns {
		if col == current && i+1 < len(b.Columns) {
			return b.Columns[i+1], true
		}
	}
	return "", false
}

// PrevStatus returns the column before current, and false when current is first
// or not a column
func PrevStatus(b models.Board, current models.Status) (models.Status, bool) {
	for i, col := range b.Columns {
		if col == current && i > 0 {
			return b.Columns[i-1], true
		}
	}
	return "", false
}
