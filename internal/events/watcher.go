package events

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by SendEvent after Stop
var ErrWatcherClosed = errors.New("watcher closed")

// WatcherConfig configures the snapshot watcher
type WatcherConfig struct {
	// Path is the snapshot file to watch
	Path string

	// DebounceDelay is how long to wait for more changes before processing
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Watcher reports changes to one snapshot file made by other processes.
// It watches the parent directory because snapshots are replaced by rename.
type Watcher struct {
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changes before processing
	pendingMu sync.Mutex
	pending   bool

	// Hash of the content last seen or written by this process
	hashMu sync.Mutex
	hash   string

	seq    atomic.Int64
	closed atomic.Bool
	events chan Event
}

// NewWatcher creates a new snapshot watcher
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	if config.Path == "" {
		return nil, errors.New("watcher: empty path")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	w := &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		events:  make(chan Event, 16),
	}
	if data, err := os.ReadFile(config.Path); err == nil {
		w.hash = HashContent(data)
	}
	return w, nil
}

// Events returns the channel of change events
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins watching the snapshot's directory
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.config.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Snapshot watcher started",
		"path", w.config.Path,
		"debounce", w.config.DebounceDelay)
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	if w.closed.Swap(true) {
		return nil
	}
	return w.watcher.Close()
}

// SendEvent records writes made by this process so they are not reported
// back as external changes
func (w *Watcher) SendEvent(event Event) error {
	if w.closed.Load() {
		return ErrWatcherClosed
	}
	if event.Type == EventSnapshotSaved {
		w.setHash(event.Hash)
	}
	return nil
}

func (w *Watcher) setHash(hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hash = hash
}

// swapHash stores hash and reports whether it differs from the previous one
func (w *Watcher) swapHash(hash string) bool {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	changed := w.hash != hash
	w.hash = hash
	return changed
}

// processEvents handles fsnotify events with debouncing
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.config.Path) {
				continue
			}
			w.pendingMu.Lock()
			w.pending = true
			w.pendingMu.Unlock()
			w.logger.Debug("Snapshot change detected", "op", event.Op.String())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// flushPending compares the file with the last known content and emits at
// most one event per debounce window
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	if !w.pending {
		w.pendingMu.Unlock()
		return
	}
	w.pending = false
	w.pendingMu.Unlock()

	event := Event{Path: w.config.Path, Timestamp: time.Now()}

	data, err := os.ReadFile(w.config.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if !w.swapHash("") {
			return
		}
		event.Type = EventSnapshotRemoved
	case err != nil:
		w.logger.Warn("Failed to read snapshot", "path", w.config.Path, "error", err)
		return
	default:
		hash := HashContent(data)
		if !w.swapHash(hash) {
			return // our own write, or content unchanged
		}
		event.Type = EventSnapshotChanged
		event.Hash = hash
	}

	event.SequenceID = w.seq.Add(1)
	w.sendEvent(event)
}

// sendEvent sends an event to the output channel
func (w *Watcher) sendEvent(event Event) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent snapshot event", "type", event.Type, "seq", event.SequenceID)
	default:
		w.logger.Warn("Event channel full, dropping event", "type", event.Type)
	}
}
