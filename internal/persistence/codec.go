package persistence

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bytedance/sonic"

	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// ErrCorruptSnapshot indicates stored bytes that do not decode to a board
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// Encode serializes the full board
func Encode(b models.Board) ([]byte, error) {
	data, err := sonic.ConfigStd.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot. Anything that is not a JSON object with a task
// list, or whose tasks sit outside the columns or carry an unknown priority,
// is reported as ErrCorruptSnapshot.
func Decode(data []byte) (models.Board, error) {
	var probe struct {
		Tasks *[]models.Task `json:"tasks"`
	}
	if err := sonic.ConfigStd.Unmarshal(data, &probe); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if probe.Tasks == nil {
		return models.Board{}, fmt.Errorf("%w: missing tasks", ErrCorruptSnapshot)
	}

	var b models.Board
	if err := sonic.ConfigStd.Unmarshal(data, &b); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if err := checkTasks(b); err != nil {
		return models.Board{}, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return b, nil
}

func checkTasks(b models.Board) error {
	columns := b.Columns
	if len(columns) == 0 {
		columns = models.DefaultColumns
	}
	for _, task := range b.Tasks {
		if !slices.Contains(columns, task.Status) {
			return fmt.Errorf("task %q: %w %q", task.ID, models.ErrUnknownStatus, task.Status)
		}
		if !task.Priority.Valid() {
			return fmt.Errorf("task %q: %w %q", task.ID, models.ErrInvalidPriority, task.Priority)
		}
	}
	return nil
}
