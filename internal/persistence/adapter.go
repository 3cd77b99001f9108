package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/jai-kanban/internal/board"
	"github.com/thenoetrevino/jai-kanban/internal/metrics"
	"github.com/thenoetrevino/jai-kanban/internal/models"
	"github.com/thenoetrevino/jai-kanban/internal/seed"
)

// Origin reports where a loaded board came from
type Origin string

const (
	FromSnapshot Origin = metrics.OriginSnapshot
	FromSeed     Origin = metrics.OriginSeed
)

// SeedSource yields the document the board falls back to
type SeedSource interface {
	Load() (models.Board, error)
	Name() string
}

// Adapter loads and saves the board under one slot key
type Adapter struct {
	slot    Slot
	key     string
	seed    SeedSource
	metrics *metrics.Metrics
	onSave  func(data []byte)
}

// Option configures an Adapter
type Option func(*Adapter)

// WithMetrics records loads and saves on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Adapter) { a.metrics = m }
}

// WithSaveHook calls fn with the exact bytes of every successful save
func WithSaveHook(fn func(data []byte)) Option {
	return func(a *Adapter) { a.onSave = fn }
}

// NewAdapter returns an adapter over slot. An empty key selects the default slot name.
func NewAdapter(slot Slot, key string, src SeedSource, opts ...Option) *Adapter {
	if key == "" {
		key = models.DefaultSlotKey
	}
	if src == nil {
		src = seed.New("")
	}
	a := &Adapter{slot: slot, key: key, seed: src}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the slot name the adapter reads and writes
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the stored snapshot when one exists and parses, and the seed
// document otherwise. Only a seed failure is returned as an error.
func (a *Adapter) Load(ctx context.Context) (models.Board, error) {
	b, _, err := a.LoadWithOrigin(ctx)
	return b, err
}

// LoadWithOrigin is Load that also reports which source won
func (a *Adapter) LoadWithOrigin(ctx context.Context) (models.Board, Origin, error) {
	data, err := a.slot.Read(ctx, a.key)
	switch {
	case err == nil:
		b, decodeErr := Decode(data)
		if decodeErr == nil {
			a.metrics.ObserveLoad(metrics.OriginSnapshot)
			return board.Normalize(b), FromSnapshot, nil
		}
		slog.Warn("Snapshot is unreadable, falling back to seed", "slot", a.key, "error", decodeErr)
		a.metrics.IncCorrupt()
	case errors.Is(err, ErrSlotEmpty):
		slog.Debug("No snapshot stored, using seed", "slot", a.key)
	default:
		slog.Warn("Failed to read snapshot, falling back to seed", "slot", a.key, "error", err)
	}

	b, err := a.seed.Load()
	if err != nil {
		slog.Error("Failed to load seed document", "source", a.seed.Name(), "error", err)
		return models.Board{}, FromSeed, fmt.Errorf("load seed: %w", err)
	}
	a.metrics.ObserveLoad(metrics.OriginSeed)
	return board.Normalize(b), FromSeed, nil
}

// Save overwrites the slot with the full board. The last writer wins.
func (a *Adapter) Save(ctx context.Context, b models.Board) error {
	data, err := Encode(b)
	if err == nil {
		err = a.slot.Write(ctx, a.key, data)
	}
	a.metrics.ObserveSave(err)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", a.key, err)
	}
	if a.onSave != nil {
		a.onSave(data)
	}
	return nil
}

// Export returns the stored snapshot bytes, or ErrSlotEmpty
func (a *Adapter) Export(ctx context.Context) ([]byte, error) {
	return a.slot.Read(ctx, a.key)
}

// Reset deletes the snapshot so the next Load returns the seed
func (a *Adapter) Reset(ctx context.Context) error {
	if err := a.slot.Delete(ctx, a.key); err != nil {
		return fmt.Errorf("reset snapshot %s: %w", a.key, err)
	}
	slog.Info("Snapshot reset", "slot", a.key)
	return nil
}

// Close releases the underlying slot
func (a *Adapter) Close() error {
	return a.slot.Close()
}
