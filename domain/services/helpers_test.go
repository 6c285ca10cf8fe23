package services

import (
	"testing"
	"time"

	"bettracker/domain/entities"
	"bettracker/domain/odds"
	"bettracker/domain/testhelpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Test constants for consistent test data
const (
	TestGuildID  = int64(555555555)
	TestUser1ID  = int64(100)
	TestUser2ID  = int64(200)
	TestWagerID  = int64(42)
	TestUsername = "sharpshooter"
)

var testBaseTime = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

// TestMocks aggregates all repository mocks for testing
type TestMocks struct {
	UserRepo       *testhelpers.MockUserRepository
	WagerRepo      *testhelpers.MockWagerRepository
	StatsRepo      *testhelpers.MockStatsRepository
	StatsService   *testhelpers.MockStatsService
	EventPublisher *testhelpers.MockEventPublisher
}

// NewTestMocks creates a new set of mocks
func NewTestMocks() *TestMocks {
	return &TestMocks{
		UserRepo:       &testhelpers.MockUserRepository{},
		WagerRepo:      &testhelpers.MockWagerRepository{},
		StatsRepo:      &testhelpers.MockStatsRepository{},
		StatsService:   &testhelpers.MockStatsService{},
		EventPublisher: &testhelpers.MockEventPublisher{},
	}
}

// AssertAllExpectations verifies all mock expectations were met
func (m *TestMocks) AssertAllExpectations(t *testing.T) {
	m.UserRepo.AssertExpectations(t)
	m.WagerRepo.AssertExpectations(t)
	m.StatsRepo.AssertExpectations(t)
	m.StatsService.AssertExpectations(t)
	m.EventPublisher.AssertExpectations(t)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decimalEq matches a decimal argument by value
func decimalEq(want string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(dec(want))
	})
}

// buildWager creates a wager for discordID settled to result
func buildWager(t *testing.T, id, discordID int64, minutes int, stake string, americanOdds int, result entities.WagerResult) *entities.Wager {
	t.Helper()

	potential, err := odds.PotentialReturn(dec(stake), americanOdds)
	require.NoError(t, err)
	decimalOdds, err := odds.ToDecimalOdds(americanOdds)
	require.NoError(t, err)

	w := &entities.Wager{
		ID:              id,
		DiscordID:       discordID,
		GuildID:         TestGuildID,
		Sport:           "NFL",
		BetType:         entities.BetTypeSpread,
		Description:     "Chiefs -3.5",
		OddsAmerican:    americanOdds,
		OddsDecimal:     decimalOdds,
		Stake:           dec(stake),
		PotentialReturn: potential,
		Result:          result,
		CreatedAt:       testBaseTime.Add(time.Duration(minutes) * time.Minute),
		UpdatedAt:       testBaseTime.Add(time.Duration(minutes) * time.Minute),
	}
	if result.IsSettled() {
		actual, err := odds.ActualReturn(w.Stake, potential, result)
		require.NoError(t, err)
		settledAt := w.CreatedAt.Add(3 * time.Hour)
		w.ActualReturn = &actual
		w.SettledAt = &settledAt
	}
	return w
}

// emptyStats returns a freshly created stats row
func emptyStats(discordID int64, unitSize string) *entities.UserStats {
	return &entities.UserStats{
		DiscordID:     discordID,
		GuildID:       TestGuildID,
		TotalStaked:   decimal.Zero,
		TotalReturned: decimal.Zero,
		NetProfit:     decimal.Zero,
		ROI:           decimal.Zero,
		WinRate:       decimal.Zero,
		AverageOdds:   decimal.Zero,
		UnitSize:      dec(unitSize),
		UnitsWagered:  decimal.Zero,
		UnitsWon:      decimal.Zero,
	}
}
