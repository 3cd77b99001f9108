package board

import "github.com/thenoetrevino/jai-kanban/internal/models"

// Normalize fills the optional collections of a freshly loaded document so the
// rest of the program can rely on them:
//   - missing columns default to queue/active/review/done
//   - missing projects default to the projects used by tasks
//   - missing assignees default to the assignees used by tasks
//   - nil tag lists become empty lists
//
// Normalize is idempotent.
func Normalize(b models.Board) models.Board {
	out := b.Clone()

	if len(out.Columns) == 0 {
		out.Columns = append([]models.Status(nil), models.DefaultColumns...)
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if out.Projects == nil {
		out.Projects = distinct(out.Tasks, func(t models.Task) string { return t.Project })
	}
	if out.Assignees == nil {
		out.Assignees = distinct(out.Tasks, func(t models.Task) string { return t.Assignee })
	}
	if out.Tasks == nil {
		out.Tasks = []models.Task{}
	}
	for i := range out.Tasks {
		if out.Tasks[i].Tags == nil {
			out.Tasks[i].Tags = []string{}
		}
	}
	return out
}

// distinct collects the non-empty values of field across tasks in first-seen order
func distinct(tasks []models.Task, field func(models.Task) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, task := range tasks {
		v := field(task)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
