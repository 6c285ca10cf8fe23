package services

import (
	"context"
	"fmt"
	"time"

	"bettracker/domain"
	"bettracker/domain/entities"
	"bettracker/domain/events"
	"bettracker/domain/interfaces"
	"bettracker/domain/stats"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// statsService implements the StatsService interface
type statsService struct {
	guildID         int64
	statsRepo       interfaces.StatsRepository
	wagerRepo       interfaces.WagerRepository
	eventPublisher  interfaces.EventPublisher
	defaultUnitSize decimal.Decimal
	now             func() time.Time
}

// NewStatsService creates a new stats service. Repositories must share one
// transaction so the stats row lock covers the history read.
func NewStatsService(
	guildID int64,
	statsRepo interfaces.StatsRepository,
	wagerRepo interfaces.WagerRepository,
	eventPublisher interfaces.EventPublisher,
	defaultUnitSize decimal.Decimal,
) interfaces.StatsService {
	return &statsService{
		guildID:         guildID,
		statsRepo:       statsRepo,
		wagerRepo:       wagerRepo,
		eventPublisher:  eventPublisher,
		defaultUnitSize: defaultUnitSize,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// RecomputeStats rebuilds and stores a user's stats record from their history
func (s *statsService) RecomputeStats(ctx context.Context, discordID int64) (*entities.UserStats, error) {
	current, err := s.statsRepo.GetForUpdate(ctx, discordID, s.defaultUnitSize)
	if err != nil {
		return nil, fmt.Errorf("failed to lock stats: %w", err)
	}

	return s.replace(ctx, current, current.UnitSize)
}

// GetUserStats returns a user's stats record, zeroed if they never logged a wager
func (s *statsService) GetUserStats(ctx context.Context, discordID int64) (*entities.UserStats, error) {
	record, err := s.statsRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	if record != nil {
		return record, nil
	}

	empty, err := stats.Aggregate(discordID, s.guildID, nil, s.defaultUnitSize)
	if err != nil {
		return nil, err
	}
	return empty, nil
}

// SetUnitSize changes a user's unit size and recomputes their unit figures
func (s *statsService) SetUnitSize(ctx context.Context, discordID int64, unitSize decimal.Decimal) (*entities.UserStats, error) {
	if !unitSize.IsPositive() {
		return nil, fmt.Errorf("unit size must be positive: %w", domain.ErrInvalidInput)
	}

	current, err := s.statsRepo.GetForUpdate(ctx, discordID, s.defaultUnitSize)
	if err != nil {
		return nil, fmt.Errorf("failed to lock stats: %w", err)
	}

	return s.replace(ctx, current, unitSize)
}

// GetLeaderboard returns the guild leaderboard limited to limit entries.
// A zero limit selects the default size.
func (s *statsService) GetLeaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	if limit == 0 {
		limit = stats.DefaultLeaderboardLimit
	}

	entries, err := s.statsRepo.GetLeaderboardEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard entries: %w", err)
	}

	return stats.RankLeaderboard(entries, limit)
}

// RebuildAll recomputes every stats record in the guild. Records that already
// match their history are left untouched.
func (s *statsService) RebuildAll(ctx context.Context) (*entities.RebuildResult, error) {
	discordIDs, err := s.statsRepo.ListDiscordIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with stats: %w", err)
	}

	result := &entities.RebuildResult{GuildID: s.guildID}
	for _, discordID := range discordIDs {
		current, err := s.statsRepo.GetForUpdate(ctx, discordID, s.defaultUnitSize)
		if err != nil {
			return nil, fmt.Errorf("failed to lock stats for user %d: %w", discordID, err)
		}
		result.UsersChecked++

		rebuilt, err := s.aggregate(ctx, current, current.UnitSize)
		if err != nil {
			return nil, err
		}
		if rebuilt.SameAggregate(current) {
			continue
		}

		result.Drifted++
		log.WithFields(log.Fields{
			"discord_id":     discordID,
			"guild_id":       s.guildID,
			"stored_total":   current.TotalBets,
			"rebuilt_total":  rebuilt.TotalBets,
			"stored_profit":  current.NetProfit.String(),
			"rebuilt_profit": rebuilt.NetProfit.String(),
		}).Warn("Stats record drifted from wager history")

		if err := s.save(ctx, current, rebuilt); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// replace aggregates the user's history with unitSize and stores the result
func (s *statsService) replace(ctx context.Context, current *entities.UserStats, unitSize decimal.Decimal) (*entities.UserStats, error) {
	rebuilt, err := s.aggregate(ctx, current, unitSize)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, current, rebuilt); err != nil {
		return nil, err
	}
	return rebuilt, nil
}

func (s *statsService) aggregate(ctx context.Context, current *entities.UserStats, unitSize decimal.Decimal) (*entities.UserStats, error) {
	wagers, err := s.wagerRepo.GetByUser(ctx, current.DiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wager history: %w", err)
	}

	rebuilt, err := stats.Aggregate(current.DiscordID, s.guildID, wagers, unitSize)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats for user %d: %w", current.DiscordID, err)
	}
	return rebuilt, nil
}

func (s *statsService) save(ctx context.Context, previous, rebuilt *entities.UserStats) error {
	rebuilt.UpdatedAt = s.now()
	if err := s.statsRepo.Save(ctx, rebuilt); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	if err := s.eventPublisher.Publish(events.StatsUpdatedEvent{
		DiscordID:      rebuilt.DiscordID,
		GuildID:        rebuilt.GuildID,
		TotalBets:      rebuilt.TotalBets,
		NetProfit:      rebuilt.NetProfit,
		ROI:            rebuilt.ROI,
		CurrentStreak:  rebuilt.CurrentStreak,
		PreviousStreak: previous.CurrentStreak,
	}); err != nil {
		return fmt.Errorf("failed to publish stats updated event: %w", err)
	}
	return nil
}
