package infrastructure

import (
	"context"
	"errors"
	"testing"

	"bettracker/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockEventPublisher records published events
type MockEventPublisher struct {
	PublishedEvents []events.Event
	PublishError    error
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	if m.PublishError != nil {
		return m.PublishError
	}
	m.PublishedEvents = append(m.PublishedEvents, event)
	return nil
}

func TestTransactionalPublisher_FlushPublishesInOrder(t *testing.T) {
	mockPublisher := &MockEventPublisher{}
	publisher := NewTransactionalPublisher(mockPublisher)

	placed := events.WagerPlacedEvent{WagerID: 1, DiscordID: 100}
	updated := events.StatsUpdatedEvent{DiscordID: 100, TotalBets: 0}

	require.NoError(t, publisher.Publish(placed))
	require.NoError(t, publisher.Publish(updated))

	// Nothing goes out before the commit
	assert.Empty(t, mockPublisher.PublishedEvents)

	require.NoError(t, publisher.Flush(context.Background()))
	require.Len(t, mockPublisher.PublishedEvents, 2)
	assert.Equal(t, placed, mockPublisher.PublishedEvents[0])
	assert.Equal(t, updated, mockPublisher.PublishedEvents[1])

	// A second flush has nothing left to send
	require.NoError(t, publisher.Flush(context.Background()))
	assert.Len(t, mockPublisher.PublishedEvents, 2)
}

func TestTransactionalPublisher_Discard(t *testing.T) {
	mockPublisher := &MockEventPublisher{}
	publisher := NewTransactionalPublisher(mockPublisher)

	require.NoError(t, publisher.Publish(events.WagerSettledEvent{WagerID: 7}))
	publisher.Discard()

	require.NoError(t, publisher.Flush(context.Background()))
	assert.Empty(t, mockPublisher.PublishedEvents)
}

func TestTransactionalPublisher_FlushIgnoresPublishErrors(t *testing.T) {
	mockPublisher := &MockEventPublisher{PublishError: errors.New("nats unavailable")}
	publisher := NewTransactionalPublisher(mockPublisher)

	require.NoError(t, publisher.Publish(events.UserCreatedEvent{DiscordID: 1}))
	assert.NoError(t, publisher.Flush(context.Background()))
}
