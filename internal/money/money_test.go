package money_test

import (
	"testing"

	"github.com/hearthledger/backend/internal/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"USD", "$"},
		{"usd", "$"},
		{"EUR", "€"},
		{"ILS", "₪"},
		{"not-a-code", "$"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, money.Symbol(tt.code), "wrong symbol for %s", tt.code)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$12.50", money.Format(decimal.NewFromFloat(12.5), "USD"))
	assert.Equal(t, "€0.00", money.Format(decimal.Zero, "EUR"))
	assert.Equal(t, "₪1000.99", money.Format(decimal.NewFromFloat(1000.99), "ILS"))
}

func TestPercentage(t *testing.T) {
	assert.True(t, decimal.NewFromInt(50).Equal(money.Percentage(decimal.NewFromInt(1000), decimal.NewFromInt(2000))))
	assert.True(t, decimal.NewFromFloat(33.33).Equal(money.Percentage(decimal.NewFromInt(1), decimal.NewFromInt(3))))

	// A zero budget means nothing is used, not a division by zero
	assert.True(t, decimal.Zero.Equal(money.Percentage(decimal.NewFromInt(10), decimal.Zero)))
}
