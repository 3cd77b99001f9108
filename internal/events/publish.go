package events

import (
	"errors"
	"log/slog"
)

// Publish sends event to pub. A nil publisher means nobody is listening and is
// not an error. Sending to a stopped watcher returns ErrWatcherClosed.
func Publish(pub EventPublisher, event Event) error {
	if pub == nil {
		return nil
	}
	err := pub.SendEvent(event)
	switch {
	case err == nil:
	case errors.Is(err, ErrWatcherClosed):
		slog.Debug("Event dropped, watcher closed", "type", event.Type)
	default:
		slog.Warn("Event send failed", "type", event.Type, "error", err)
	}
	return err
}
