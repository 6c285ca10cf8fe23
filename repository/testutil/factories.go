package testutil

import (
	"time"

	"bettracker/domain/entities"
	"bettracker/domain/odds"

	"github.com/shopspring/decimal"
)

// CreateTestProfile creates a profile with only a username
func CreateTestProfile(username string) entities.UserProfile {
	return entities.UserProfile{Username: username}
}

// CreateTestWager creates a pending wager with derived odds filled in
func CreateTestWager(discordID int64, stake string, americanOdds int) *entities.Wager {
	stakeAmount := decimal.RequireFromString(stake)
	potential, err := odds.PotentialReturn(stakeAmount, americanOdds)
	if err != nil {
		panic(err)
	}
	decimalOdds, err := odds.ToDecimalOdds(americanOdds)
	if err != nil {
		panic(err)
	}

	gameDate := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	return &entities.Wager{
		DiscordID:       discordID,
		Sport:           "NFL",
		BetType:         entities.BetTypeSpread,
		Description:     "Chiefs -3.5",
		OddsAmerican:    americanOdds,
		OddsDecimal:     decimalOdds,
		Stake:           stakeAmount,
		PotentialReturn: potential,
		Result:          entities.WagerResultPending,
		GameDate:        &gameDate,
		Tags:            []string{"test"},
	}
}
