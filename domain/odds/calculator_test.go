package odds

import (
	"testing"

	"bettracker/domain"
	"bettracker/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPotentialReturn(t *testing.T) {
	tests := []struct {
		name  string
		stake string
		odds  int
		want  string
	}{
		{"plus money", "100", 150, "150"},
		{"even money plus", "50", 100, "50"},
		{"even money minus", "50", -100, "50"},
		{"standard juice", "110", -110, "100"},
		{"heavy favorite", "300", -300, "100"},
		{"long shot", "10", 2500, "250"},
		{"fractional stake", "12.34", 200, "24.68"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PotentialReturn(dec(tt.stake), tt.odds)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "expected %s, got %s", tt.want, got)
		})
	}

	t.Run("non-terminating division is rounded deterministically", func(t *testing.T) {
		first, err := PotentialReturn(dec("100"), -110)
		require.NoError(t, err)
		second, err := PotentialReturn(dec("100"), -110)
		require.NoError(t, err)

		assert.True(t, first.Equal(second))
		assert.Equal(t, "90.91", first.StringFixed(2))
		assert.LessOrEqual(t, -first.Exponent(), DivisionPlaces)
	})

	t.Run("rejects zero odds", func(t *testing.T) {
		_, err := PotentialReturn(dec("100"), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects non-positive stake", func(t *testing.T) {
		_, err := PotentialReturn(decimal.Zero, 150)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = PotentialReturn(dec("-5"), -110)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects stakes finer than a cent", func(t *testing.T) {
		_, err := PotentialReturn(dec("0.000000000000000000001"), -200)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = PotentialReturn(dec("10.005"), 150)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("trailing zeros are whole cents", func(t *testing.T) {
		got, err := PotentialReturn(dec("0.0100"), -10000)
		require.NoError(t, err)
		assert.True(t, got.IsPositive())
	})
}

func TestToDecimalOdds(t *testing.T) {
	tests := []struct {
		odds int
		want string
	}{
		{150, "2.5"},
		{100, "2"},
		{-100, "2"},
		{-200, "1.5"},
		{-400, "1.25"},
		{1000, "11"},
	}

	for _, tt := range tests {
		t.Run(FormatAmerican(tt.odds), func(t *testing.T) {
			got, err := ToDecimalOdds(tt.odds)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "expected %s, got %s", tt.want, got)
		})
	}

	t.Run("minus 110 is about 1.909", func(t *testing.T) {
		got, err := ToDecimalOdds(-110)
		require.NoError(t, err)
		assert.Equal(t, "1.909", got.StringFixed(3))
	})

	t.Run("rejects zero odds", func(t *testing.T) {
		_, err := ToDecimalOdds(0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestActualReturn(t *testing.T) {
	stake := dec("100")
	potential := dec("150")

	tests := []struct {
		result entities.WagerResult
		want   string
	}{
		{entities.WagerResultWon, "250"},
		{entities.WagerResultLost, "0"},
		{entities.WagerResultPush, "100"},
		{entities.WagerResultVoid, "100"},
	}

	for _, tt := range tests {
		t.Run(string(tt.result), func(t *testing.T) {
			got, err := ActualReturn(stake, potential, tt.result)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "expected %s, got %s", tt.want, got)
		})
	}

	t.Run("pending has no return", func(t *testing.T) {
		_, err := ActualReturn(stake, potential, entities.WagerResultPending)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown result", func(t *testing.T) {
		_, err := ActualReturn(stake, potential, entities.WagerResult("cashed_out"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSettlementFlow(t *testing.T) {
	stake := dec("50")

	potential, err := PotentialReturn(stake, 150)
	require.NoError(t, err)
	assert.Equal(t, "75.00", potential.StringFixed(2))

	won, err := ActualReturn(stake, potential, entities.WagerResultWon)
	require.NoError(t, err)
	assert.Equal(t, "125.00", won.StringFixed(2))

	push, err := ActualReturn(stake, potential, entities.WagerResultPush)
	require.NoError(t, err)
	assert.Equal(t, "50.00", push.StringFixed(2))
}

func TestCalculatorProperties(t *testing.T) {
	stakes := []decimal.Decimal{dec("0.01"), dec("1"), dec("7.77"), dec("110"), dec("2500.50")}

	for o := -5000; o <= 5000; o += 7 {
		if o == 0 {
			continue
		}

		decimalOdds, err := ToDecimalOdds(o)
		require.NoError(t, err)
		require.True(t, decimalOdds.GreaterThan(decimal.NewFromInt(1)), "decimal odds for %d = %s", o, decimalOdds)

		for _, s := range stakes {
			potential, err := PotentialReturn(s, o)
			require.NoError(t, err)
			require.True(t, potential.IsPositive(), "potential return for stake %s odds %d = %s", s, o, potential)

			won, err := ActualReturn(s, potential, entities.WagerResultWon)
			require.NoError(t, err)
			require.True(t, won.Sub(s).Equal(potential), "won return minus stake must equal potential return")
		}
	}
}

func TestFormatAmerican(t *testing.T) {
	assert.Equal(t, "+150", FormatAmerican(150))
	assert.Equal(t, "-110", FormatAmerican(-110))
}
