package stats

import (
	"fmt"
	"sort"

	"bettracker/domain"
	"bettracker/domain/entities"
)

const (
	// DefaultLeaderboardLimit is used when a caller does not ask for a size
	DefaultLeaderboardLimit = 50
	// MaxLeaderboardLimit caps how many entries a leaderboard returns
	MaxLeaderboardLimit = 100
)

// RankLeaderboard orders a guild's stats records and assigns ranks 1..n.
//
// Users without a settled wager are skipped. Entries are ordered by ROI
// descending, then net profit descending, then earliest last bet, then
// Discord ID, and the first limit entries are returned. The input slice
// and its entries are not modified.
func RankLeaderboard(entries []*entities.LeaderboardEntry, limit int) ([]*entities.LeaderboardEntry, error) {
	if limit < 1 || limit > MaxLeaderboardLimit {
		return nil, fmt.Errorf("leaderboard limit must be between 1 and %d, got %d: %w", MaxLeaderboardLimit, limit, domain.ErrInvalidInput)
	}

	ranked := make([]*entities.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.Stats == nil || e.Stats.TotalBets < 1 {
			continue
		}
		entry := *e
		ranked = append(ranked, &entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankedBefore(ranked[i].Stats, ranked[j].Stats)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked, nil
}

// rankedBefore reports whether a belongs above b
func rankedBefore(a, b *entities.UserStats) bool {
	if c := a.ROI.Cmp(b.ROI); c != 0 {
		return c > 0
	}
	if c := a.NetProfit.Cmp(b.NetProfit); c != 0 {
		return c > 0
	}
	switch {
	case a.LastBetAt != nil && b.LastBetAt == nil:
		return true
	case a.LastBetAt == nil && b.LastBetAt != nil:
		return false
	case a.LastBetAt != nil && !a.LastBetAt.Equal(*b.LastBetAt):
		return a.LastBetAt.Before(*b.LastBetAt)
	}
	return a.DiscordID < b.DiscordID
}
