// Package odds converts American odds and computes wager returns.
//
// All functions are pure. Money is carried as decimal.Decimal; products are
// exact and divisions that do not terminate are rounded to DivisionPlaces
// fractional digits, so the same inputs always give the same value.
package odds

import (
	"fmt"

	"bettracker/domain"
	"bettracker/domain/entities"

	"github.com/shopspring/decimal"
)

// StakePlaces is the finest currency precision a stake may carry
const StakePlaces int32 = 2

// DivisionPlaces is the number of fractional digits kept by non-terminating divisions
const DivisionPlaces int32 = 20

var hundred = decimal.NewFromInt(100)

// PotentialReturn returns the profit (excluding stake) a winning wager pays.
// Positive odds pay stake*odds/100; negative odds pay stake*100/|odds|.
func PotentialReturn(stake decimal.Decimal, americanOdds int) (decimal.Decimal, error) {
	if !stake.IsPositive() {
		return decimal.Zero, fmt.Errorf("stake must be positive, got %s: %w", stake, domain.ErrInvalidInput)
	}
	if !stake.Equal(stake.Truncate(StakePlaces)) {
		return decimal.Zero, fmt.Errorf("stake must be in whole cents, got %s: %w", stake, domain.ErrInvalidInput)
	}
	if americanOdds == 0 {
		return decimal.Zero, fmt.Errorf("odds must be non-zero: %w", domain.ErrInvalidInput)
	}

	o := decimal.NewFromInt(int64(americanOdds))
	if americanOdds > 0 {
		return stake.Mul(o).Shift(-2), nil
	}
	return stake.Mul(hundred).DivRound(o.Abs(), DivisionPlaces), nil
}

// ToDecimalOdds converts American odds to decimal odds (total payout per unit staked)
func ToDecimalOdds(americanOdds int) (decimal.Decimal, error) {
	if americanOdds == 0 {
		return decimal.Zero, fmt.Errorf("odds must be non-zero: %w", domain.ErrInvalidInput)
	}

	o := decimal.NewFromInt(int64(americanOdds))
	if americanOdds > 0 {
		return o.Shift(-2).Add(decimal.NewFromInt(1)), nil
	}
	return hundred.DivRound(o.Abs(), DivisionPlaces).Add(decimal.NewFromInt(1)), nil
}

// ActualReturn returns the total amount paid back for a settled result.
// A win returns stake plus profit, a loss nothing, a push or void the stake.
func ActualReturn(stake, potentialReturn decimal.Decimal, result entities.WagerResult) (decimal.Decimal, error) {
	switch result {
	case entities.WagerResultWon:
		return stake.Add(potentialReturn), nil
	case entities.WagerResultLost:
		return decimal.Zero, nil
	case entities.WagerResultPush, entities.WagerResultVoid:
		return stake, nil
	default:
		return decimal.Zero, fmt.Errorf("cannot compute return for result %q: %w", result, domain.ErrInvalidInput)
	}
}

// FormatAmerican renders American odds with an explicit sign, e.g. "+150" or "-110"
func FormatAmerican(americanOdds int) string {
	if americanOdds > 0 {
		return fmt.Sprintf("+%d", americanOdds)
	}
	return fmt.Sprintf("%d", americanOdds)
}
