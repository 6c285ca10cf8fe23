package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bettracker/domain/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	subject string
	data    []byte
}

type fakeMessagePublisher struct {
	sent []sentMessage
	err  error
}

func (f *fakeMessagePublisher) Publish(ctx context.Context, subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{subject: subject, data: data})
	return nil
}

func TestNATSEventPublisher_LocalHandlersWithoutNATS(t *testing.T) {
	publisher := NewNATSEventPublisher(nil, NewEventSubjectMapper())

	var received []events.Event
	publisher.RegisterLocalHandler(events.EventTypeStatsUpdated, func(ctx context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})
	publisher.RegisterLocalHandler(events.EventTypeStatsUpdated, func(ctx context.Context, event events.Event) error {
		return errors.New("handler failed")
	})

	event := events.StatsUpdatedEvent{DiscordID: 100, CurrentStreak: 3, PreviousStreak: 2}
	require.NoError(t, publisher.Publish(event))
	require.NoError(t, publisher.Publish(events.WagerPlacedEvent{WagerID: 1}))

	require.Len(t, received, 1)
	assert.Equal(t, event, received[0])
}

func TestNATSEventPublisher_PublishesEnvelope(t *testing.T) {
	publisher := NewNATSEventPublisher(nil, NewEventSubjectMapper())
	client := &fakeMessagePublisher{}
	publisher.client = client

	event := events.WagerSettledEvent{
		WagerID:      42,
		DiscordID:    100,
		GuildID:      555,
		Result:       "won",
		Stake:        decimal.NewFromInt(50),
		ActualReturn: decimal.NewFromInt(125),
	}
	require.NoError(t, publisher.Publish(event))

	require.Len(t, client.sent, 1)
	assert.Equal(t, SubjectWagerSettled, client.sent[0].subject)

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(client.sent[0].data, &envelope))
	assert.Equal(t, "wager_settled", envelope.EventType)
	assert.Equal(t, "bettracker", envelope.SourceService)
	_, err := uuid.Parse(envelope.EventID)
	assert.NoError(t, err)

	var payload events.WagerSettledEvent
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, int64(42), payload.WagerID)
	assert.True(t, payload.ActualReturn.Equal(decimal.NewFromInt(125)))
}

func TestNATSEventPublisher_PublishError(t *testing.T) {
	publisher := NewNATSEventPublisher(nil, NewEventSubjectMapper())
	publisher.client = &fakeMessagePublisher{err: errors.New("no responders")}

	err := publisher.Publish(events.UserCreatedEvent{DiscordID: 1})
	assert.Error(t, err)
}
