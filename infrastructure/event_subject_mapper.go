package infrastructure

import (
	"fmt"

	"bettracker/domain/events"
)

const (
	SubjectUserCreated  = "bettracker.users.created"
	SubjectWagerPlaced  = "bettracker.wagers.placed"
	SubjectWagerSettled = "bettracker.wagers.settled"
	SubjectStatsUpdated = "bettracker.stats.updated"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeUserCreated:
		return SubjectUserCreated
	case events.EventTypeWagerPlaced:
		return SubjectWagerPlaced
	case events.EventTypeWagerSettled:
		return SubjectWagerSettled
	case events.EventTypeStatsUpdated:
		return SubjectStatsUpdated
	default:
		return fmt.Sprintf("bettracker.unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case SubjectUserCreated:
		return events.EventTypeUserCreated
	case SubjectWagerPlaced:
		return events.EventTypeWagerPlaced
	case SubjectWagerSettled:
		return events.EventTypeWagerSettled
	case SubjectStatsUpdated:
		return events.EventTypeStatsUpdated
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		SubjectUserCreated,
		SubjectWagerPlaced,
		SubjectWagerSettled,
		SubjectStatsUpdated,
	}
}
