package interfaces

import (
	"context"

	"bettracker/domain/entities"

	"github.com/shopspring/decimal"
)

// UserService defines the interface for user operations
type UserService interface {
	// GetOrCreateUser retrieves a user or registers them, keeping their profile current
	GetOrCreateUser(ctx context.Context, discordID int64, profile entities.UserProfile) (*entities.User, error)
}

// WagerService defines the interface for logging and settling wagers
type WagerService interface {
	// PlaceWager validates and logs a new pending wager
	PlaceWager(ctx context.Context, req *entities.PlaceWagerRequest) (*entities.Wager, error)

	// SettleWager records the outcome of a pending wager owned by discordID
	// and returns the wager with the user's recomputed stats
	SettleWager(ctx context.Context, discordID, wagerID int64, result entities.WagerResult) (*entities.Wager, *entities.UserStats, error)

	// ListWagers returns a user's most recent wagers, newest first
	ListWagers(ctx context.Context, discordID int64, limit int) ([]*entities.Wager, error)
}

// StatsService defines the interface for stats aggregation and ranking
type StatsService interface {
	// RecomputeStats rebuilds and stores a user's stats record from their history
	RecomputeStats(ctx context.Context, discordID int64) (*entities.UserStats, error)

	// GetUserStats returns a user's stats record, zeroed if they never logged a wager
	GetUserStats(ctx context.Context, discordID int64) (*entities.UserStats, error)

	// SetUnitSize changes a user's unit size and recomputes their unit figures
	SetUnitSize(ctx context.Context, discordID int64, unitSize decimal.Decimal) (*entities.UserStats, error)

	// GetLeaderboard returns the guild leaderboard limited to limit entries
	GetLeaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)

	// RebuildAll recomputes every stats record in the guild and reports drift
	RebuildAll(ctx context.Context) (*entities.RebuildResult, error)
}
