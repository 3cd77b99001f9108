package board

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func sampleBoard(t *testing.T) models.Board {
	t.Helper()
	created, err := models.ParseTimestamp("2026-01-30")
	require.NoError(t, err)
	updated, err := models.ParseTimestamp("2026-02-01T10:00:00Z")
	require.NoError(t, err)

	limit := 2
	return models.Board{
		LastUpdated: updated,
		Columns:     append([]models.Status(nil), models.DefaultColumns...),
		MaxActive:   &limit,
		Tags:        []string{"dev", "research", "strategy"},
		Projects:    []string{"site", "infra"},
		Assignees:   []string{"jai", "kai"},
		Tasks: []models.Task{
			{ID: "t1", Title: "Wire API", Tags: []string{"dev"}, Project: "infra", Status: models.StatusQueue, Assignee: "jai", Priority: models.PriorityHigh, Created: created},
			{ID: "t2", Title: "Read papers", Tags: []string{"research"}, Status: models.StatusActive, Assignee: "kai", Priority: models.PriorityLow, Created: created},
			{ID: "t3", Title: "Landing page", Tags: []string{"dev", "strategy"}, Project: "site", Status: models.StatusReview, Assignee: "jai", Priority: models.PriorityMedium, Created: created, Subtasks: []string{"copy", "hero"}},
			{ID: "t4", Title: "Roadmap", Tags: []string{"strategy"}, Project: "site", Status: models.StatusDone, Assignee: "kai", Priority: models.PriorityMedium, Created: created},
			{ID: "t5", Title: "Fix build", Tags: []string{}, Project: "research", Status: models.StatusQueue, Assignee: "kai", Priority: models.PriorityHigh, Created: created},
		},
	}
}

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

// ============================================================================
// FILTER
// ============================================================================

func TestFilterTasks_AllReturnsEverythingInOrder(t *testing.T) {
	b := sampleBoard(t)
	got := FilterTasks(b, models.FilterAll)
	assert.Equal(t, b.Tasks, got)
}

func TestFilterTasks_TagOrProject(t *testing.T) {
	b := sampleBoard(t)

	tests := []struct {
		name string
		key  string
		want []string
	}{
		{"tag", "dev", []string{"t1", "t3"}},
		{"project", "site", []string{"t3", "t4"}},
		{"tag and project with same name", "research", []string{"t2", "t5"}},
		{"unknown key", "design", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterTasks(b, tt.key)))
		})
	}
}

func TestFilterTasks_EveryResultMatchesKey(t *testing.T) {
	b := sampleBoard(t)
	for _, key := range b.Tags {
		for _, task := range FilterTasks(b, key) {
			assert.True(t, task.HasTag(key) || task.Project == key,
				"task %s does not match filter %s", task.ID, key)
		}
	}
}

func TestFilterKeys(t *testing.T) {
	b := sampleBoard(t)
	b.Projects = append(b.Projects, "dev") // duplicates a tag name
	assert.Equal(t, []string{"all", "dev", "research", "strategy", "site", "infra"}, FilterKeys(b))
}

// ============================================================================
// GROUP
// ============================================================================

func TestGroupByColumn_EachTaskInItsStatusColumn(t *testing.T) {
	b := sampleBoard(t)
	grouped := GroupByColumn(b.Tasks, b.Columns)

	total := 0
	for col, tasks := range grouped {
		for _, task := range tasks {
			assert.Equal(t, col, task.Status)
		}
		total += len(tasks)
	}
	assert.Equal(t, len(b.Tasks), total)
	assert.Equal(t, []string{"t1", "t5"}, ids(grouped[models.StatusQueue]))
}

func TestGroupByColumn_EmptyColumnsPresent(t *testing.T) {
	grouped := GroupByColumn(nil, models.DefaultColumns)
	require.Len(t, grouped, 4)
	for _, col := range models.DefaultColumns {
		assert.NotNil(t, grouped[col])
		assert.Empty(t, grouped[col])
	}
}

func TestGroupByColumn_UnknownFilterYieldsEmptyColumns(t *testing.T) {
	b := sampleBoard(t)
	grouped := GroupByColumn(FilterTasks(b, "design"), b.Columns)
	for _, col := range b.Columns {
		assert.Empty(t, grouped[col], "column %s", col)
	}
}

func TestBuildView(t *testing.T) {
	b := sampleBoard(t)
	view := BuildView(b, "")

	assert.Equal(t, models.FilterAll, view.Filter)
	require.Len(t, view.Columns, 4)
	assert.Equal(t, models.StatusQueue, view.Columns[0].Status)
	assert.Equal(t, 1, view.ActiveCount)
	assert.Equal(t, 2, view.ActiveLimit)
}

func TestActiveLimit_DefaultsWhenUnset(t *testing.T) {
	b := sampleBoard(t)
	b.MaxActive = nil
	assert.Equal(t, models.DefaultMaxActive, ActiveLimit(b))
}

// ============================================================================
// MUTATIONS
// ============================================================================

func TestUpdateTask_OnlyAssigneeAndTimestampChange(t *testing.T) {
	b := sampleBoard(t)
	before := mustJSON(t, b)

	assignee := "x"
	updated := UpdateTask(b, "t3", models.TaskPatch{Assignee: &assignee}, fixedNow)

	// input untouched
	assert.Equal(t, before, mustJSON(t, b))

	assert.Equal(t, "x", updated.Tasks[2].Assignee)
	assert.Equal(t, "2026-03-01T09:30:00Z", updated.LastUpdated.String())

	// revert the two expected changes and the documents must match exactly
	updated.Tasks[2].Assignee = b.Tasks[2].Assignee
	updated.LastUpdated = b.LastUpdated
	assert.Equal(t, before, mustJSON(t, updated))
}

func TestUpdateTask_UnknownIDOnlyMovesTimestamp(t *testing.T) {
	b := sampleBoard(t)
	title := "nope"
	updated := UpdateTask(b, "missing", models.TaskPatch{Title: &title}, fixedNow)

	assert.Equal(t, b.Tasks, updated.Tasks)
	assert.Equal(t, fixedNow, updated.LastUpdated.Time)
}

func TestMoveTask_QueueToActive(t *testing.T) {
	b := models.Board{
		Columns: models.DefaultColumns,
		Tasks:   []models.Task{{ID: "t1", Status: models.StatusQueue, Tags: []string{"dev"}}},
	}

	moved, err := MoveTask(b, "t1", models.StatusActive, fixedNow)
	require.NoError(t, err)

	grouped := GroupByColumn(moved.Tasks, moved.Columns)
	assert.Equal(t, []string{"t1"}, ids(grouped[models.StatusActive]))
	assert.Empty(t, grouped[models.StatusQueue])
}

func TestMoveTask_RejectsUnknownStatus(t *testing.T) {
	b := sampleBoard(t)
	moved, err := MoveTask(b, "t1", "blocked", fixedNow)
	require.ErrorIs(t, err, models.ErrUnknownStatus)
	assert.Equal(t, b.LastUpdated, moved.LastUpdated)
}

func TestNextPrevStatus(t *testing.T) {
	b := sampleBoard(t)

	next, ok := NextStatus(b, models.StatusQueue)
	assert.True(t, ok)
	assert.Equal(t, models.StatusActive, next)

	_, ok = NextStatus(b, models.StatusDone)
	assert.False(t, ok)

	prev, ok := PrevStatus(b, models.StatusReview)
	assert.True(t, ok)
	assert.Equal(t, models.StatusActive, prev)

	_, ok = PrevStatus(b, models.StatusQueue)
	assert.False(t, ok)
}

// ============================================================================
// NORMALIZE
// ============================================================================

func TestNormalize_FillsMissingCollections(t *testing.T) {
	b := models.Board{
		Tasks: []models.Task{
			{ID: "a", Project: "site", Assignee: "jai"},
			{ID: "b", Project: "site", Assignee: "kai"},
			{ID: "c", Assignee: "jai"},
		},
	}
	n := Normalize(b)

	assert.Equal(t, models.DefaultColumns, n.Columns)
	assert.Equal(t, []string{}, n.Tags)
	assert.Equal(t, []string{"site"}, n.Projects)
	assert.Equal(t, []string{"jai", "kai"}, n.Assignees)
	for _, task := range n.Tasks {
		assert.NotNil(t, task.Tags)
	}
}

func TestNormalize_KeepsExplicitLists(t *testing.T) {
	b := sampleBoard(t)
	b.Projects = []string{}
	n := Normalize(b)
	assert.Equal(t, []string{}, n.Projects)
	assert.Equal(t, b.Assignees, n.Assignees)
}

func TestNormalize_Idempotent(t *testing.T) {
	b := sampleBoard(t)
	b.Projects = nil
	once := Normalize(b)
	twice := Normalize(once)
	assert.Equal(t, mustJSON(t, once), mustJSON(t, twice))
}

// ============================================================================
// POLICY
// ============================================================================

func TestValidatePatch(t *testing.T) {
	b := sampleBoard(t)
	str := func(s string) *string { return &s }
	status := func(s models.Status) *models.Status { return &s }
	prio := func(p models.Priority) *models.Priority { return &p }
	tags := func(t ...string) *[]string { return &t }

	tests := []struct {
		name   string
		patch  models.TaskPatch
		policy Policy
		want   error
	}{
		{"valid status", models.TaskPatch{Status: status(models.StatusDone)}, Policy{}, nil},
		{"unknown status", models.TaskPatch{Status: status("blocked")}, Policy{}, models.ErrUnknownStatus},
		{"bad priority", models.TaskPatch{Priority: prio("urgent")}, Policy{}, models.ErrInvalidPriority},
		{"empty title", models.TaskPatch{Title: str("")}, Policy{}, models.ErrEmptyTitle},
		{"unknown assignee lenient", models.TaskPatch{Assignee: str("zed")}, Policy{}, nil},
		{"unknown assignee strict", models.TaskPatch{Assignee: str("zed")}, Policy{Strict: true}, models.ErrUnknownAssignee},
		{"unknown tag strict", models.TaskPatch{Tags: tags("dev", "ops")}, Policy{Strict: true}, models.ErrUnknownTag},
		{"unknown project strict", models.TaskPatch{Project: str("moon")}, Policy{Strict: true}, models.ErrUnknownProject},
		{"clear project strict", models.TaskPatch{Project: str("")}, Policy{Strict: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePatch(b, tt.patch, tt.policy)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckCapacity(t *testing.T) {
	b := sampleBoard(t) // limit 2, one active task

	assert.NoError(t, CheckCapacity(b, "t1", models.StatusActive, Policy{EnforceActiveLimit: true}))

	b.Tasks[0].Status = models.StatusActive // now 2/2
	assert.ErrorIs(t, CheckCapacity(b, "t5", models.StatusActive, Policy{EnforceActiveLimit: true}), models.ErrActiveLimitReached)
	assert.NoError(t, CheckCapacity(b, "t5", models.StatusActive, Policy{}), "advisory by default")
	assert.NoError(t, CheckCapacity(b, "t2", models.StatusActive, Policy{EnforceActiveLimit: true}), "already active")
	assert.NoError(t, CheckCapacity(b, "t5", models.StatusReview, Policy{EnforceActiveLimit: true}))
}
