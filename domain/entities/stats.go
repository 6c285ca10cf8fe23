package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnitSize is the unit size used until a user configures their own
var DefaultUnitSize = decimal.NewFromInt(100)

// UserStats is the derived performance record of one user in one guild.
// Every field except UpdatedAt is a function of the user's wager history
// and unit size.
type UserStats struct {
	DiscordID     int64           `db:"discord_id"`
	GuildID       int64           `db:"guild_id"`
	TotalBets     int             `db:"total_bets"`
	Wins          int             `db:"wins"`
	Losses        int             `db:"losses"`
	Pushes        int             `db:"pushes"`
	Pending       int             `db:"pending"`
	TotalStaked   decimal.Decimal `db:"total_staked"`
	TotalReturned decimal.Decimal `db:"total_returned"`
	NetProfit     decimal.Decimal `db:"net_profit"`
	ROI           decimal.Decimal `db:"roi"`      // percent
	WinRate       decimal.Decimal `db:"win_rate"` // percent of decided wagers
	AverageOdds   decimal.Decimal `db:"average_odds"`
	CurrentStreak int             `db:"current_streak"`
	BestStreak    int             `db:"best_streak"`
	WorstStreak   int             `db:"worst_streak"`
	UnitSize      decimal.Decimal `db:"unit_size"`
	UnitsWagered  decimal.Decimal `db:"units_wagered"`
	UnitsWon      decimal.Decimal `db:"units_won"`
	LastBetAt     *time.Time      `db:"last_bet_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// Decided returns the number of wagers that ended in a win or a loss
func (s *UserStats) Decided() int {
	return s.Wins + s.Losses
}

// Voids returns settled wagers that were neither won, lost nor pushed
func (s *UserStats) Voids() int {
	return s.TotalBets - s.Wins - s.Losses - s.Pushes
}

// SameAggregate reports whether two records carry the same derived values,
// ignoring UpdatedAt.
func (s *UserStats) SameAggregate(other *UserStats) bool {
	if s == nil || other == nil {
		return s == other
	}
	if (s.LastBetAt == nil) != (other.LastBetAt == nil) {
		return false
	}
	if s.LastBetAt != nil && !s.LastBetAt.Equal(*other.LastBetAt) {
		return false
	}
	return s.DiscordID == other.DiscordID &&
		s.GuildID == other.GuildID &&
		s.TotalBets == other.TotalBets &&
		s.Wins == other.Wins &&
		s.Losses == other.Losses &&
		s.Pushes == other.Pushes &&
		s.Pending == other.Pending &&
		s.TotalStaked.Equal(other.TotalStaked) &&
		s.TotalReturned.Equal(other.TotalReturned) &&
		s.NetProfit.Equal(other.NetProfit) &&
		s.ROI.Equal(other.ROI) &&
		s.WinRate.Equal(other.WinRate) &&
		s.AverageOdds.Equal(other.AverageOdds) &&
		s.CurrentStreak == other.CurrentStreak &&
		s.BestStreak == other.BestStreak &&
		s.WorstStreak == other.WorstStreak &&
		s.UnitSize.Equal(other.UnitSize) &&
		s.UnitsWagered.Equal(other.UnitsWagered) &&
		s.UnitsWon.Equal(other.UnitsWon)
}

// LeaderboardEntry is a ranked stats record together with display identity
type LeaderboardEntry struct {
	Rank        int
	Stats       *UserStats
	Username    string
	DisplayName *string
	AvatarURL   *string
	IsVerified  bool
}

// Name returns the display name, falling back to the username
func (e *LeaderboardEntry) Name() string {
	if e.DisplayName != nil && *e.DisplayName != "" {
		return *e.DisplayName
	}
	return e.Username
}

// RebuildResult summarizes a full stats rebuild of one guild
type RebuildResult struct {
	GuildID      int64
	UsersChecked int
	// Drifted counts records whose stored values differed from the rebuild
	Drifted int
}
