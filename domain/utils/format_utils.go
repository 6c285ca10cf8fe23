package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// FormatCurrency formats an amount with two decimals and thousands separators (e.g. -$1,234.50)
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "$" + groupThousands(amount.Abs().StringFixed(2))
}

// FormatSignedCurrency is FormatCurrency with an explicit plus sign for gains
func FormatSignedCurrency(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return "+" + FormatCurrency(amount)
	}
	return FormatCurrency(amount)
}

// FormatShortCurrency formats an amount using short notation (e.g. $12k instead of $12,500)
func FormatShortCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	abs := amount.Abs()

	switch {
	case abs.GreaterThanOrEqual(million):
		return fmt.Sprintf("%s$%sM", sign, abs.Div(million).StringFixed(2))
	case abs.GreaterThanOrEqual(thousand.Mul(decimal.NewFromInt(10))):
		// No decimal places between 10k and 1M
		return fmt.Sprintf("%s$%sk", sign, abs.Div(thousand).Truncate(0).String())
	case abs.GreaterThanOrEqual(thousand):
		return fmt.Sprintf("%s$%sk", sign, abs.Div(thousand).Truncate(1).StringFixed(1))
	default:
		return fmt.Sprintf("%s$%s", sign, abs.StringFixed(2))
	}
}

// FormatPercentage formats a rate stored in percent units (10.4167 -> "10.42%")
func FormatPercentage(rate decimal.Decimal) string {
	return rate.StringFixed(2) + "%"
}

// FormatUnits formats a unit figure with an explicit sign (e.g. +1.50u)
func FormatUnits(units decimal.Decimal) string {
	if units.IsPositive() {
		return "+" + units.StringFixed(2) + "u"
	}
	return units.StringFixed(2) + "u"
}

// FormatStreak renders a signed streak as W3, L2 or a dash when there is none
func FormatStreak(streak int) string {
	switch {
	case streak > 0:
		return fmt.Sprintf("W%d", streak)
	case streak < 0:
		return fmt.Sprintf("L%d", -streak)
	default:
		return "-"
	}
}

func groupThousands(fixed string) string {
	intPart, frac, _ := strings.Cut(fixed, ".")
	if len(intPart) <= 3 {
		return fixed
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
