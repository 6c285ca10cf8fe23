package infrastructure

import (
	"testing"

	"bettracker/domain/events"

	"github.com/stretchr/testify/assert"
)

func TestEventSubjectMapper_RoundTrip(t *testing.T) {
	mapper := NewEventSubjectMapper()

	tests := []struct {
		event   events.Event
		subject string
	}{
		{events.UserCreatedEvent{}, "bettracker.users.created"},
		{events.WagerPlacedEvent{}, "bettracker.wagers.placed"},
		{events.WagerSettledEvent{}, "bettracker.wagers.settled"},
		{events.StatsUpdatedEvent{}, "bettracker.stats.updated"},
	}

	for _, tt := range tests {
		t.Run(string(tt.event.Type()), func(t *testing.T) {
			subject := mapper.MapEventToSubject(tt.event)
			assert.Equal(t, tt.subject, subject)
			assert.Equal(t, tt.event.Type(), mapper.MapSubjectToEventType(subject))
			assert.Contains(t, mapper.GetAllSubjects(), subject)
		})
	}
}

func TestEventSubjectMapper_StreamCoversEverySubject(t *testing.T) {
	mapper := NewEventSubjectMapper()

	for _, subject := range mapper.GetAllSubjects() {
		assert.Regexp(t, `^bettracker\.`, subject)
	}
	assert.Len(t, mapper.GetAllSubjects(), 4)
}
