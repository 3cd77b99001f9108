// Package board holds the pure operations over a kanban board: filtering,
// grouping by column, and the field/status mutations. Nothing here performs I/O.
package board

import (
	"slices"

	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// FilterTasks returns the tasks matching key, in board order.
// "all" matches every task; any other key matches a task whose tags contain it
// or whose project equals it. An unknown key matches nothing.
func FilterTasks(b models.Board, key string) []models.Task {
	if key == models.FilterAll || key == "" {
		return slices.Clone(b.Tasks)
	}

	out := make([]models.Task, 0, len(b.Tasks))
	for _, task := range b.Tasks {
		if task.HasTag(key) || (task.Project != "" && task.Project == key) {
			out = append(out, task)
		}
	}
	return out
}

// FilterKeys returns the selectable filter keys: "all", then tags, then
// projects, without duplicates.
func FilterKeys(b models.Board) []string {
	keys := []string{models.FilterAll}
	seen := map[string]bool{models.FilterAll: true}
	for _, group := range [][]string{b.Tags, b.Projects} {
		for _, k := range group {
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// FindTask returns the task with the given id and its index, or -1 when absent
func FindTask(b models.Board, id string) (models.Task, int) {
	for i, task := range b.Tasks {
		if task.ID == id {
			return task, i
		}
	}
	return models.Task{}, -1
}
