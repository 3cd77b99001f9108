package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/jai-kanban/internal/config"
	"github.com/thenoetrevino/jai-kanban/internal/database"
	"github.com/thenoetrevino/jai-kanban/internal/persistence"
)

// openSlot connects the configured snapshot backend. For the file backend it
// also returns the path of the snapshot file so it can be watched.
func openSlot(ctx context.Context, storage config.StorageConfig) (persistence.Slot, string, error) {
	switch storage.Backend {
	case config.BackendFile:
		slot, err := persistence.NewFileSlot(storage.Dir)
		if err != nil {
			return nil, "", err
		}
		return slot, slot.Path(storage.Slot), nil

	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(storage.SQLitePath), 0o700); err != nil {
			return nil, "", fmt.Errorf("failed to create database directory: %w", err)
		}
		db, err := database.InitDB(ctx, storage.SQLitePath)
		if err != nil {
			return nil, "", err
		}
		return database.NewSnapshotRepo(db), "", nil

	case config.BackendRedis:
		slot, err := persistence.OpenRedisSlot(ctx, storage.RedisURL, storage.RedisPrefix)
		if err != nil {
			return nil, "", err
		}
		return slot, "", nil

	case config.BackendAzTables:
		slot, err := persistence.OpenTableSlot(ctx, storage.AzureConnectionString, storage.AzureTable)
		if err != nil {
			return nil, "", err
		}
		return slot, "", nil

	case config.BackendMemory:
		return persistence.NewMemorySlot(), "", nil
	}
	return nil, "", fmt.Errorf("unknown storage backend %q", storage.Backend)
}
