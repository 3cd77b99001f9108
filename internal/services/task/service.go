package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/jai-kanban/internal/board"
	"github.com/thenoetrevino/jai-kanban/internal/metrics"
	"github.com/thenoetrevino/jai-kanban/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	Board(ctx context.Context) (models.Board, error)
	View(ctx context.Context, filter string) (board.View, error)
	GetTask(ctx context.Context, taskID string) (models.Task, error)

	// Write operations
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (models.Task, error)

	// Task movements
	MoveTaskToColumn(ctx context.Context, taskID string, status models.Status) (models.Task, error)
	MoveTaskToNextColumn(ctx context.Context, taskID string) (models.Task, error)
	MoveTaskToPrevColumn(ctx context.Context, taskID string) (models.Task, error)

	// Snapshot lifecycle
	Reload(ctx context.Context) error
	Reset(ctx context.Context) error
}

// Store loads and saves the whole board
type Store interface {
	Load(ctx context.Context) (models.Board, error)
	Save(ctx context.Context, b models.Board) error
	Reset(ctx context.Context) error
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID string
	models.TaskPatch
}

// Option configures the service
type Option func(*service)

// WithPolicy sets the validation policy applied to mutations
func WithPolicy(p board.Policy) Option {
	return func(s *service) { s.policy = p }
}

// WithMetrics records mutations on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *service) { s.metrics = m }
}

// WithClock replaces time.Now for lastUpdated stamps
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// service implements Service interface
type service struct {
	store   Store
	policy  board.Policy
	metrics *metrics.Metrics
	now     func() time.Time

	// guards board; the TUI loop and the snapshot watcher both reach it
	mu     sync.RWMutex
	board  models.Board
	loaded bool
}

// NewService creates a new task service. The board is empty until Reload.
func NewService(store Store, opts ...Option) Service {
	s := &service{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Board(_ context.Context) (models.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return models.Board{}, ErrNotLoaded
	}
	return s.board.Clone(), nil
}

func (s *service) View(_ context.Context, filter string) (board.View, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return board.View{}, ErrNotLoaded
	}
	return board.BuildView(s.board, filter), nil
}

func (s *service) GetTask(_ context.Context, taskID string) (models.Task, error) {
	if taskID == "" {
		return models.Task{}, ErrInvalidTaskID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, idx := board.FindTask(s.board, taskID)
	if idx < 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return task, nil
}

// UpdateTask validates and applies a field update, then persists the board
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (models.Task, error) {
	if req.TaskID == "" {
		return models.Task{}, ErrInvalidTaskID
	}
	if req.IsEmpty() {
		return models.Task{}, ErrEmptyUpdate
	}
	task, err := s.mutate(ctx, "update", req.TaskID, func(b models.Board, current models.Task) (models.Board, error) {
		if err := board.ValidatePatch(b, req.TaskPatch, s.policy); err != nil {
			return b, err
		}
		if req.Status != nil {
			if err := board.CheckCapacity(b, current.ID, *req.Status, s.policy); err != nil {
				return b, err
			}
		}
		return board.UpdateTask(b, req.TaskID, req.TaskPatch, s.now()), nil
	})
	return task, err
}

func (s *service) MoveTaskToColumn(ctx context.Context, taskID string, status models.Status) (models.Task, error) {
	if taskID == "" {
		return models.Task{}, ErrInvalidTaskID
	}
	return s.mutate(ctx, "move", taskID, func(b models.Board, current models.Task) (models.Board, error) {
		if err := board.CheckCapacity(b, current.ID, status, s.policy); err != nil {
			return b, err
		}
		return board.MoveTask(b, taskID, status, s.now())
	})
}

func (s *service) MoveTaskToNextColumn(ctx context.Context, taskID string) (models.Task, error) {
	return s.moveRelative(ctx, taskID, board.NextStatus, ErrAlreadyLastColumn)
}

func (s *service) MoveTaskToPrevColumn(ctx context.Context, taskID string) (models.Task, error) {
	return s.moveRelative(ctx, taskID, board.PrevStatus, ErrAlreadyFirstColumn)
}

func (s *service) moveRelative(
	ctx context.Context,
	taskID string,
	step func(models.Board, models.Status) (models.Status, bool),
	edgeErr error,
) (models.Task, error) {
	if taskID == "" {
		return models.Task{}, ErrInvalidTaskID
	}
	return s.mutate(ctx, "move", taskID, func(b models.Board, current models.Task) (models.Board, error) {
		target, ok := step(b, current.Status)
		if !ok {
			return b, edgeErr
		}
		if err := board.CheckCapacity(b, current.ID, target, s.policy); err != nil {
			return b, err
		}
		return board.MoveTask(b, taskID, target, s.now())
	})
}

// mutate runs fn against the current board under the write lock. An unknown
// id is a no-op reported as ErrTaskNotFound. A failed save keeps the change
// in memory and returns ErrNotPersisted alongside the updated task.
func (s *service) mutate(
	ctx context.Context,
	op, taskID string,
	fn func(models.Board, models.Task) (models.Board, error),
) (task models.Task, err error) {
	defer func() { s.metrics.ObserveMutation(op, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return models.Task{}, ErrNotLoaded
	}
	current, idx := board.FindTask(s.board, taskID)
	if idx < 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}

	next, err := fn(s.board, current)
	if err != nil {
		return current, err
	}

	s.board = next
	s.metrics.SetActiveTasks(board.ActiveCount(next))
	updated := next.Tasks[idx]

	if err := s.store.Save(ctx, next); err != nil {
		slog.Error("Failed to save board", "op", op, "task", taskID, "error", err)
		return updated, fmt.Errorf("%w: %v", ErrNotPersisted, err)
	}
	slog.Debug("Task updated", "op", op, "task", taskID, "status", updated.Status)
	return updated, nil
}

// Reload replaces the in-memory board with the stored snapshot (or the seed)
func (s *service) Reload(ctx context.Context) error {
	b, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}

	s.mu.Lock()
	s.board = b
	s.loaded = true
	s.mu.Unlock()

	s.metrics.SetActiveTasks(board.ActiveCount(b))
	return nil
}

// Reset drops the snapshot and reloads from the seed
func (s *service) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	return s.Reload(ctx)
}
