package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeUserCreated  EventType = "user_created"
	EventTypeWagerPlaced  EventType = "wager_placed"
	EventTypeWagerSettled EventType = "wager_settled"
	EventTypeStatsUpdated EventType = "stats_updated"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// UserCreatedEvent is emitted the first time a member is seen in a guild
type UserCreatedEvent struct {
	DiscordID int64  `json:"discord_id"`
	GuildID   int64  `json:"guild_id"`
	Username  string `json:"username"`
}

func (e UserCreatedEvent) Type() EventType {
	return EventTypeUserCreated
}

// WagerPlacedEvent is emitted when a new pending wager is logged
type WagerPlacedEvent struct {
	WagerID         int64           `json:"wager_id"`
	DiscordID       int64           `json:"discord_id"`
	GuildID         int64           `json:"guild_id"`
	Sport           string          `json:"sport"`
	BetType         string          `json:"bet_type"`
	OddsAmerican    int             `json:"odds_american"`
	Stake           decimal.Decimal `json:"stake"`
	PotentialReturn decimal.Decimal `json:"potential_return"`
}

func (e WagerPlacedEvent) Type() EventType {
	return EventTypeWagerPlaced
}

// WagerSettledEvent is emitted when a wager reaches its terminal result
type WagerSettledEvent struct {
	WagerID      int64           `json:"wager_id"`
	DiscordID    int64           `json:"discord_id"`
	GuildID      int64           `json:"guild_id"`
	Result       string          `json:"result"`
	Stake        decimal.Decimal `json:"stake"`
	ActualReturn decimal.Decimal `json:"actual_return"`
	SettledAt    time.Time       `json:"settled_at"`
}

func (e WagerSettledEvent) Type() EventType {
	return EventTypeWagerSettled
}

// StatsUpdatedEvent is emitted after a user's stats record was replaced
type StatsUpdatedEvent struct {
	DiscordID     int64           `json:"discord_id"`
	GuildID       int64           `json:"guild_id"`
	TotalBets     int             `json:"total_bets"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ROI           decimal.Decimal `json:"roi"`
	CurrentStreak int             `json:"current_streak"`
	// PreviousStreak is the current streak before this update
	PreviousStreak int `json:"previous_streak"`
}

func (e StatsUpdatedEvent) Type() EventType {
	return EventTypeStatsUpdated
}
