package events

// EventPublisher receives change notifications
type EventPublisher interface {
	// SendEvent delivers an event without blocking
	SendEvent(event Event) error
}

// Compile-time verification that *Watcher implements EventPublisher
var _ EventPublisher = (*Watcher)(nil)
