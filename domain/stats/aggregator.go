// Package stats derives per-user performance records from wager history
// and ranks them into guild leaderboards.
package stats

import (
	"fmt"
	"sort"

	"bettracker/domain"
	"bettracker/domain/entities"

	"github.com/shopspring/decimal"
)

// RatePlaces is the number of fractional digits kept for ROI, win rate,
// average odds and unit figures
const RatePlaces int32 = 4

var hundred = decimal.NewFromInt(100)

// Aggregate recomputes a user's stats record from their complete wager history.
//
// The result depends only on the wagers and unit size; UpdatedAt is left zero
// for the caller to stamp. Wagers are ordered by creation time with the wager
// ID breaking ties, so the order of the input slice does not matter. A
// non-positive unit size is only an error once there is settled history to
// divide.
func Aggregate(discordID, guildID int64, wagers []*entities.Wager, unitSize decimal.Decimal) (*entities.UserStats, error) {
	ordered := make([]*entities.Wager, len(wagers))
	copy(ordered, wagers)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	stats := &entities.UserStats{
		DiscordID:     discordID,
		GuildID:       guildID,
		TotalStaked:   decimal.Zero,
		TotalReturned: decimal.Zero,
		NetProfit:     decimal.Zero,
		ROI:           decimal.Zero,
		WinRate:       decimal.Zero,
		AverageOdds:   decimal.Zero,
		UnitSize:      unitSize,
		UnitsWagered:  decimal.Zero,
		UnitsWon:      decimal.Zero,
	}

	settled := make([]*entities.Wager, 0, len(ordered))
	for _, w := range ordered {
		switch {
		case w.Result == entities.WagerResultPending:
			stats.Pending++
		case w.Result.IsSettled():
			if w.ActualReturn == nil {
				return nil, fmt.Errorf("settled wager %d has no actual return: %w", w.ID, domain.ErrInvalidInput)
			}
			settled = append(settled, w)
		default:
			return nil, fmt.Errorf("wager %d has unknown result %q: %w", w.ID, w.Result, domain.ErrInvalidInput)
		}
	}

	if len(settled) == 0 {
		return stats, nil
	}
	if !unitSize.IsPositive() {
		return nil, fmt.Errorf("unit size must be positive, got %s: %w", unitSize, domain.ErrConfiguration)
	}

	var (
		oddsSum int64
		streaks StreakTracker
	)
	for _, w := range settled {
		stats.TotalBets++
		switch w.Result {
		case entities.WagerResultWon:
			stats.Wins++
		case entities.WagerResultLost:
			stats.Losses++
		case entities.WagerResultPush:
			stats.Pushes++
		}

		stats.TotalStaked = stats.TotalStaked.Add(w.Stake)
		stats.TotalReturned = stats.TotalReturned.Add(*w.ActualReturn)
		oddsSum += int64(w.OddsAmerican)
		streaks.Apply(w.Result)
	}

	stats.NetProfit = stats.TotalReturned.Sub(stats.TotalStaked)
	if stats.TotalStaked.IsPositive() {
		stats.ROI = stats.NetProfit.Mul(hundred).DivRound(stats.TotalStaked, RatePlaces)
	}
	if decided := stats.Decided(); decided > 0 {
		stats.WinRate = decimal.NewFromInt(int64(stats.Wins)).Mul(hundred).DivRound(decimal.NewFromInt(int64(decided)), RatePlaces)
	}
	stats.AverageOdds = decimal.NewFromInt(oddsSum).DivRound(decimal.NewFromInt(int64(len(settled))), RatePlaces)

	stats.CurrentStreak = streaks.Current
	stats.BestStreak = streaks.Best
	stats.WorstStreak = streaks.Worst

	stats.UnitsWagered = stats.TotalStaked.DivRound(unitSize, RatePlaces)
	stats.UnitsWon = stats.NetProfit.DivRound(unitSize, RatePlaces)

	lastBetAt := settled[len(settled)-1].CreatedAt
	stats.LastBetAt = &lastBetAt

	return stats, nil
}
