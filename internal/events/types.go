// Package events carries snapshot change notifications between the process
// that saves the board and the views that display it.
package events

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventSnapshotChanged is emitted when the snapshot on disk changes
	EventSnapshotChanged EventType = "snapshot_changed"

	// EventSnapshotSaved is sent by this process after it writes the snapshot
	EventSnapshotSaved EventType = "snapshot_saved"

	// EventSnapshotRemoved is emitted when the snapshot file disappears
	EventSnapshotRemoved EventType = "snapshot_removed"
)

// Event represents a snapshot change notification
type Event struct {
	Type       EventType
	Path       string    // snapshot file the event refers to
	Hash       string    // content hash after the change, empty for removals
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// HashContent returns the hex sha256 of a snapshot's bytes
func HashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
