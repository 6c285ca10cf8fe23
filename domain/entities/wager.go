package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WagerResult is the outcome state of a logged wager
type WagerResult string

const (
	WagerResultPending WagerResult = "pending"
	WagerResultWon     WagerResult = "won"
	WagerResultLost    WagerResult = "lost"
	WagerResultPush    WagerResult = "push"
	WagerResultVoid    WagerResult = "void"
)

// IsSettled reports whether the result is one of the terminal outcomes
func (r WagerResult) IsSettled() bool {
	switch r {
	case WagerResultWon, WagerResultLost, WagerResultPush, WagerResultVoid:
		return true
	}
	return false
}

// ParseSettlementResult parses a terminal result. Pending is rejected since
// a wager can only move out of pending.
func ParseSettlementResult(s string) (WagerResult, error) {
	r := WagerResult(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsSettled() {
		return "", fmt.Errorf("unknown settlement result %q", s)
	}
	return r, nil
}

// BetType categorizes the market a wager was placed on
type BetType string

const (
	BetTypeMoneyline BetType = "moneyline"
	BetTypeSpread    BetType = "spread"
	BetTypeTotal     BetType = "total"
	BetTypeProp      BetType = "prop"
	BetTypeParlay    BetType = "parlay"
	BetTypeTeaser    BetType = "teaser"
)

// AllBetTypes lists bet types in display order
var AllBetTypes = []BetType{
	BetTypeMoneyline,
	BetTypeSpread,
	BetTypeTotal,
	BetTypeProp,
	BetTypeParlay,
	BetTypeTeaser,
}

// Wager is a single logged sports bet
type Wager struct {
	ID              int64            `db:"id"`
	DiscordID       int64            `db:"discord_id"`
	GuildID         int64            `db:"guild_id"`
	Sport           string           `db:"sport"`
	League          *string          `db:"league"`
	BetType         BetType          `db:"bet_type"`
	Description     string           `db:"description"`
	OddsAmerican    int              `db:"odds_american"`
	OddsDecimal     decimal.Decimal  `db:"odds_decimal"`
	Stake           decimal.Decimal  `db:"stake"`
	PotentialReturn decimal.Decimal  `db:"potential_return"`
	Result          WagerResult      `db:"result"`
	ActualReturn    *decimal.Decimal `db:"actual_return"` // Set iff Result is settled
	Sportsbook      *string          `db:"sportsbook"`
	GameDate        *time.Time       `db:"game_date"`
	Notes           *string          `db:"notes"`
	Tags            []string         `db:"tags"`
	CreatedAt       time.Time        `db:"created_at"`
	SettledAt       *time.Time       `db:"settled_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

// IsPending returns true if the wager has not been settled yet
func (w *Wager) IsPending() bool {
	return w.Result == WagerResultPending
}

// NetProfit returns actual return minus stake, or zero while pending
func (w *Wager) NetProfit() decimal.Decimal {
	if w.ActualReturn == nil {
		return decimal.Zero
	}
	return w.ActualReturn.Sub(w.Stake)
}

// PlaceWagerRequest carries the user supplied fields of a new wager
type PlaceWagerRequest struct {
	DiscordID    int64           `validate:"required"`
	Sport        string          `validate:"required,max=50"`
	League       string          `validate:"omitempty,max=100"`
	BetType      BetType         `validate:"required,oneof=moneyline spread total prop parlay teaser"`
	Description  string          `validate:"required,max=500"`
	OddsAmerican int             `validate:"required"`
	Stake        decimal.Decimal `validate:"-"`
	Sportsbook   string          `validate:"omitempty,max=100"`
	GameDate     *time.Time
	Notes        string   `validate:"omitempty,max=1000"`
	Tags         []string `validate:"max=10,dive,required,max=30"`
}
