// Package money provides display formatting for monetary amounts.
//
// Amounts are plain decimals everywhere in the backend; the profile's
// currency code only matters when an amount is rendered for a user.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Symbol returns the display symbol for a 3-letter ISO 4217 currency code.
// Codes that cannot be resolved fall back to the dollar sign.
func Symbol(code string) string {
	switch strings.ToUpper(code) {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "ILS":
		return "₪"
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "$"
	}

	return fmt.Sprintf("%s", currency.NarrowSymbol(unit))
}

// Format renders an amount as "<symbol><amount>" with two decimal places.
func Format(amount decimal.Decimal, code string) string {
	return Symbol(code) + amount.StringFixed(2)
}

// Percentage returns part of whole as a percentage, rounded to two decimal
// places. A zero whole returns 0 instead of dividing by zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}

	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2)
}
