package persistence

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jai-kanban/internal/board"
	"github.com/thenoetrevino/jai-kanban/internal/metrics"
	"github.com/thenoetrevino/jai-kanban/internal/models"
	"github.com/thenoetrevino/jai-kanban/internal/seed"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type stubSeed struct {
	board models.Board
	err   error
	calls int
}

func (s *stubSeed) Load() (models.Board, error) {
	s.calls++
	return s.board, s.err
}

func (s *stubSeed) Name() string { return "stub" }

func testBoard() models.Board {
	created, _ := models.ParseTimestamp("2026-01-30")
	return models.Board{
		LastUpdated: models.NewTimestamp(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)),
		Columns:     models.DefaultColumns,
		Tags:        []string{"dev"},
		Projects:    []string{},
		Assignees:   []string{"jai"},
		Tasks: []models.Task{
			{ID: "t1", Title: "One", Tags: []string{"dev"}, Status: models.StatusQueue, Assignee: "jai", Priority: models.PriorityHigh, Created: created},
		},
	}
}

// slotContract exercises the Slot behaviour every backend must share
func slotContract(t *testing.T, slot Slot) {
	t.Helper()
	ctx := context.Background()

	_, err := slot.Read(ctx, "k")
	require.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Write(ctx, "k", []byte(`{"v":1}`)))
	require.NoError(t, slot.Write(ctx, "k", []byte(`{"v":2}`)))

	data, err := slot.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(data))

	_, err = slot.Read(ctx, "other")
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Delete(ctx, "k"))
	require.NoError(t, slot.Delete(ctx, "k"), "deleting twice is fine")
	_, err = slot.Read(ctx, "k")
	assert.ErrorIs(t, err, ErrSlotEmpty)

	assert.NoError(t, slot.Close())
}

// ============================================================================
// SLOT BACKENDS
// ============================================================================

func TestMemorySlot(t *testing.T) {
	slotContract(t, NewMemorySlot())
}

func TestFileSlot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snapshots")
	slot, err := NewFileSlot(dir)
	require.NoError(t, err)
	slotContract(t, slot)
}

func TestFileSlot_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(dir)
	require.NoError(t, err)

	require.NoError(t, slot.Write(context.Background(), "jai-kanban-data", []byte("{}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "jai-kanban-data.json", entries[0].Name())
}

func TestFileSlot_SanitizesKey(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "a_b_c.json", filepath.Base(slot.Path("a/b c")))
}

func TestRedisSlot(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	slot := NewRedisSlot(client, "kanban:")
	slotContract(t, slot)
}

func TestRedisSlot_UsesPrefix(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	slot, err := OpenRedisSlot(context.Background(), "redis://"+mr.Addr(), "kanban:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = slot.Close() })

	require.NoError(t, slot.Write(context.Background(), "board", []byte("x")))
	got, err := mr.Get("kanban:board")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestOpenRedisSlot_BadURL(t *testing.T) {
	_, err := OpenRedisSlot(context.Background(), "not-a-url", "")
	assert.Error(t, err)
}

type fakeTable struct {
	entities map[string][]byte
	failWith error
}

func (f *fakeTable) GetEntity(_ context.Context, pk, rk string, _ *aztables.GetEntityOptions) (aztables.GetEntityResponse, error) {
	if f.failWith != nil {
		return aztables.GetEntityResponse{}, f.failWith
	}
	v, ok := f.entities[pk+"/"+rk]
	if !ok {
		return aztables.GetEntityResponse{}, &azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "ResourceNotFound"}
	}
	return aztables.GetEntityResponse{Value: v}, nil
}

func (f *fakeTable) UpsertEntity(_ context.Context, entity []byte, _ *aztables.UpsertEntityOptions) (aztables.UpsertEntityResponse, error) {
	var ent aztables.Entity
	if err := sonic.ConfigStd.Unmarshal(entity, &ent); err != nil {
		return aztables.UpsertEntityResponse{}, err
	}
	f.entities[ent.PartitionKey+"/"+ent.RowKey] = entity
	return aztables.UpsertEntityResponse{}, nil
}

func (f *fakeTable) DeleteEntity(_ context.Context, pk, rk string, _ *aztables.DeleteEntityOptions) (aztables.DeleteEntityResponse, error) {
	if _, ok := f.entities[pk+"/"+rk]; !ok {
		return aztables.DeleteEntityResponse{}, &azcore.ResponseError{StatusCode: http.StatusNotFound}
	}
	delete(f.entities, pk+"/"+rk)
	return aztables.DeleteEntityResponse{}, nil
}

func TestTableSlot(t *testing.T) {
	slotContract(t, &TableSlot{table: &fakeTable{entities: map[string][]byte{}}})
}

func TestTableSlot_EntityShape(t *testing.T) {
	payload, err := encodeSnapshotEntity("jai-kanban-data", []byte(`{"tasks":[]}`))
	require.NoError(t, err)

	var ent map[string]any
	require.NoError(t, sonic.ConfigStd.Unmarshal(payload, &ent))
	assert.Equal(t, "snapshots", ent["PartitionKey"])
	assert.Equal(t, "jai-kanban-data", ent["RowKey"])
	assert.Equal(t, float64(1), ent["Chunks"])
	assert.Equal(t, `{"tasks":[]}`, ent["Data00"])
}

func TestTableSlot_LargeSnapshotsSpanProperties(t *testing.T) {
	ctx := context.Background()
	slot := &TableSlot{table: &fakeTable{entities: map[string][]byte{}}}
	data := []byte(strings.Repeat("x", 3*maxChunkUnits+10))

	require.NoError(t, slot.Write(ctx, "k", data))
	got, err := slot.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	payload, err := encodeSnapshotEntity("k", data)
	require.NoError(t, err)
	var ent map[string]any
	require.NoError(t, sonic.ConfigStd.Unmarshal(payload, &ent))
	assert.Equal(t, float64(4), ent["Chunks"])
	for i := range 4 {
		assert.LessOrEqual(t, len(ent[chunkProperty(i)].(string)), maxChunkUnits)
	}
}

func TestTableSlot_RejectsOversizedSnapshot(t *testing.T) {
	slot := &TableSlot{table: &fakeTable{entities: map[string][]byte{}}}
	data := []byte(strings.Repeat("x", maxChunks*maxChunkUnits+1))

	err := slot.Write(context.Background(), "k", data)
	assert.ErrorIs(t, err, ErrSnapshotTooLarge)
}

func TestSplitUTF16(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  []string
	}{
		{"empty", "", 3, nil},
		{"fits", "abc", 3, []string{"abc"}},
		{"ascii", "abcdefg", 3, []string{"abc", "def", "g"}},
		{"surrogate pair stays whole", "ab😀c", 3, []string{"ab", "😀c"}},
		{"multibyte is one unit", "éééé", 2, []string{"éé", "éé"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitUTF16(tt.in, tt.limit))
		})
	}
}

func TestTableSlot_PropagatesServiceErrors(t *testing.T) {
	slot := &TableSlot{table: &fakeTable{failWith: &azcore.ResponseError{StatusCode: http.StatusForbidden}}}
	_, err := slot.Read(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSlotEmpty))
}

// ============================================================================
// ADAPTER
// ============================================================================

func TestAdapter_EmptySlotLoadsSeed(t *testing.T) {
	src := &stubSeed{board: testBoard()}
	a := NewAdapter(NewMemorySlot(), "", src)

	b, origin, err := a.LoadWithOrigin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FromSeed, origin)
	assert.Equal(t, "t1", b.Tasks[0].ID)
	assert.Equal(t, models.DefaultSlotKey, a.Key())
}

func TestAdapter_SaveThenLoadRoundTrips(t *testing.T) {
	ctx := context.Background()
	src := &stubSeed{board: testBoard()}
	a := NewAdapter(NewMemorySlot(), "", src)

	first, err := a.Load(ctx)
	require.NoError(t, err)

	assignee := "kai"
	edited := board.UpdateTask(first, "t1", models.TaskPatch{Assignee: &assignee}, time.Now())
	require.NoError(t, a.Save(ctx, edited))

	loaded, origin, err := a.LoadWithOrigin(ctx)
	require.NoError(t, err)
	assert.Equal(t, FromSnapshot, origin)

	want, err := Encode(edited)
	require.NoError(t, err)
	got, err := Encode(loaded)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	// a second save/load cycle changes nothing
	require.NoError(t, a.Save(ctx, loaded))
	again, err := a.Load(ctx)
	require.NoError(t, err)
	gotAgain, err := Encode(again)
	require.NoError(t, err)
	assert.Equal(t, string(got), string(gotAgain))
}

func TestAdapter_CorruptSnapshotFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	m := metrics.New(nil)
	a := NewAdapter(slot, "k", &stubSeed{board: testBoard()}, WithMetrics(m))

	corrupt := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"array", `[]`},
		{"missing tasks", `{"columns":["queue"]}`},
		{"status outside columns", `{"columns":["queue","active","review","done"],"tasks":[{"id":"t1","title":"One","status":"blocked","priority":"high"}]}`},
		{"unknown priority", `{"tasks":[{"id":"t1","title":"One","status":"queue","priority":"urgent"}]}`},
		{"status not in custom columns", `{"columns":["queue","done"],"tasks":[{"id":"t1","title":"One","status":"review","priority":"low"}]}`},
	}

	for _, tt := range corrupt {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, slot.Write(ctx, "k", []byte(tt.data)))
			b, origin, err := a.LoadWithOrigin(ctx)
			require.NoError(t, err)
			assert.Equal(t, FromSeed, origin)
			require.Len(t, b.Tasks, 1)
			assert.Equal(t, models.StatusQueue, b.Tasks[0].Status)
		})
	}
	assert.Equal(t, float64(len(corrupt)), testutil.ToFloat64(m.SnapshotCorrupt))
}

func TestAdapter_SeedFailureIsReturned(t *testing.T) {
	boom := errors.New("boom")
	a := NewAdapter(NewMemorySlot(), "", &stubSeed{err: boom})
	_, err := a.Load(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAdapter_ResetRestoresSeed(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemorySlot(), "", &stubSeed{board: testBoard()})

	require.NoError(t, a.Save(ctx, testBoard()))
	_, err := a.Export(ctx)
	require.NoError(t, err)

	require.NoError(t, a.Reset(ctx))
	_, err = a.Export(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	_, origin, err := a.LoadWithOrigin(ctx)
	require.NoError(t, err)
	assert.Equal(t, FromSeed, origin)
}

func TestAdapter_EmbeddedSeedByDefault(t *testing.T) {
	a := NewAdapter(NewMemorySlot(), "", nil)
	b, err := a.Load(context.Background())
	require.NoError(t, err)

	want, err := seed.New("").Load()
	require.NoError(t, err)
	assert.Len(t, b.Tasks, len(want.Tasks))
}

func TestAdapter_SaveCountsFailures(t *testing.T) {
	m := metrics.New(nil)
	a := NewAdapter(failingSlot{}, "", &stubSeed{board: testBoard()}, WithMetrics(m))

	err := a.Save(context.Background(), testBoard())
	require.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SnapshotSaves.WithLabelValues("error")))
}

type failingSlot struct{}

func (failingSlot) Read(context.Context, string) ([]byte, error) { return nil, errors.New("down") }
func (failingSlot) Write(context.Context, string, []byte) error  { return errors.New("down") }
func (failingSlot) Delete(context.Context, string) error         { return errors.New("down") }
func (failingSlot) Close() error                                 { return nil }

func TestAdapter_SaveHookReceivesStoredBytes(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	var hooked []byte
	a := NewAdapter(slot, "", &stubSeed{board: testBoard()}, WithSaveHook(func(data []byte) { hooked = data }))

	require.NoError(t, a.Save(ctx, testBoard()))

	stored, err := slot.Read(ctx, models.DefaultSlotKey)
	require.NoError(t, err)
	assert.Equal(t, stored, hooked)
}

func TestDecode_RejectsTasksOutsideColumns(t *testing.T) {
	_, err := Decode([]byte(`{"tasks":[{"id":"t1","status":"blocked","priority":"high"}]}`))
	require.ErrorIs(t, err, ErrCorruptSnapshot)
	assert.ErrorIs(t, err, models.ErrUnknownStatus)

	_, err = Decode([]byte(`{"tasks":[{"id":"t1","status":"queue","priority":"urgent"}]}`))
	require.ErrorIs(t, err, ErrCorruptSnapshot)
	assert.ErrorIs(t, err, models.ErrInvalidPriority)

	data, err := Encode(testBoard())
	require.NoError(t, err)
	_, err = Decode(data)
	assert.NoError(t, err)
}
