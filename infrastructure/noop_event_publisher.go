package infrastructure

import (
	"bettracker/domain/events"
)

// NoopEventPublisher is an event publisher that does nothing.
// Admin commands such as the stats rebuild use it so no announcements go out.
type NoopEventPublisher struct{}

// NewNoopEventPublisher creates a new no-op event publisher
func NewNoopEventPublisher() *NoopEventPublisher {
	return &NoopEventPublisher{}
}

// Publish does nothing with the event
func (n *NoopEventPublisher) Publish(event events.Event) error {
	return nil
}
