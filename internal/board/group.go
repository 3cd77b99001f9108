package board

import "github.com/thenoetrevino/jai-kanban/internal/models"

// GroupByColumn partitions tasks by status, keeping their relative order.
// Every column is present in the result; a column with no tasks maps to an
// empty slice. Tasks whose status is not one of columns are left out.
func GroupByColumn(tasks []models.Task, columns []models.Status) map[models.Status][]models.Task {
	grouped := make(map[models.Status][]models.Task, len(columns))
	for _, col := range columns {
		grouped[col] = []models.Task{}
	}
	for _, task := range tasks {
		if _, ok := grouped[task.Status]; ok {
			grouped[task.Status] = append(grouped[task.Status], task)
		}
	}
	return grouped
}

// Column is one rendered column: its status and the tasks in it
type Column struct {
	Status models.Status `json:"name"`
	Tasks  []models.Task `json:"tasks"`
}

// View is the derived, filtered board that renderers and the HTTP API show
type View struct {
	Filter      string           `json:"filter"`
	LastUpdated models.Timestamp `json:"lastUpdated"`
	Columns     []Column         `json:"columns"`
	ActiveCount int              `json:"activeCount"`
	ActiveLimit int              `json:"activeLimit"`
}

// BuildView filters the board by key and groups the result in column order
func BuildView(b models.Board, key string) View {
	if key == "" {
		key = models.FilterAll
	}
	grouped := GroupByColumn(FilterTasks(b, key), b.Columns)

	view := View{
		Filter:      key,
		LastUpdated: b.LastUpdated,
		Columns:     make([]Column, 0, len(b.Columns)),
		ActiveLimit: ActiveLimit(b),
	}
	for _, col := range b.Columns {
		view.Columns = append(view.Columns, Column{Status: col, Tasks: grouped[col]})
	}
	view.ActiveCount = len(grouped[models.StatusActive])
	return view
}

// ActiveCount returns the number of tasks in the active column across the whole board
func ActiveCount(b models.Board) int {
	count := 0
	for _, task := range b.Tasks {
		if task.Status == models.StatusActive {
			count++
		}
	}
	return count
}

// ActiveLimit returns maxActive, or DefaultMaxActive when the board leaves it unset
func ActiveLimit(b models.Board) int {
	if b.MaxActive != nil && *b.MaxActive > 0 {
		return *b.MaxActive
	}
	return models.DefaultMaxActive
}
