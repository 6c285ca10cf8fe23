package interfaces

import (
	"context"

	"bettracker/domain/entities"
	"bettracker/domain/events"

	"github.com/shopspring/decimal"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByDiscordID retrieves a user by their Discord ID, or nil if unknown
	GetByDiscordID(ctx context.Context, discordID int64) (*entities.User, error)

	// Create creates a new user from a Discord profile
	Create(ctx context.Context, discordID int64, profile entities.UserProfile, verified bool) (*entities.User, error)

	// UpdateProfile refreshes the stored display identity of a user
	UpdateProfile(ctx context.Context, discordID int64, profile entities.UserProfile, verified bool) error
}

// WagerRepository defines the interface for logged wager data access
type WagerRepository interface {
	// Create inserts a pending wager and fills in its ID and timestamps
	Create(ctx context.Context, wager *entities.Wager) error

	// GetByID retrieves a wager by ID, or nil if it does not exist
	GetByID(ctx context.Context, id int64) (*entities.Wager, error)

	// GetByUser returns a user's full history ordered by creation time, then ID
	GetByUser(ctx context.Context, discordID int64) ([]*entities.Wager, error)

	// GetRecentByUser returns up to limit wagers, newest first
	GetRecentByUser(ctx context.Context, discordID int64, limit int) ([]*entities.Wager, error)

	// Settle moves a pending wager to its terminal result. It returns nil
	// when the wager was no longer pending.
	Settle(ctx context.Context, id int64, result entities.WagerResult, actualReturn decimal.Decimal) (*entities.Wager, error)
}

// StatsRepository defines the interface for derived stats records
type StatsRepository interface {
	// GetByDiscordID retrieves the stored stats record, or nil if none exists
	GetByDiscordID(ctx context.Context, discordID int64) (*entities.UserStats, error)

	// GetForUpdate returns the stored record, creating an empty one with the
	// given unit size if needed, and locks it until the transaction ends
	GetForUpdate(ctx context.Context, discordID int64, defaultUnitSize decimal.Decimal) (*entities.UserStats, error)

	// Save replaces every stored field of the record
	Save(ctx context.Context, stats *entities.UserStats) error

	// GetLeaderboardEntries returns all stats records joined with display identity
	GetLeaderboardEntries(ctx context.Context) ([]*entities.LeaderboardEntry, error)

	// ListDiscordIDs returns the users that have a stats record or a logged wager
	ListDiscordIDs(ctx context.Context) ([]int64, error)
}

// GuildRepository lists guilds across scopes
type GuildRepository interface {
	// ListGuildIDs returns every guild with at least one registered user
	ListGuildIDs(ctx context.Context) ([]int64, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher queues events until the surrounding
// transaction commits
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush publishes all queued events
	Flush(ctx context.Context) error

	// Discard drops all queued events
	Discard()
}
