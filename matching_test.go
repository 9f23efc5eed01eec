package trading

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	buy := newTestOrder(t, Buy, "0.95", 10)
	sellBelow := newTestOrder(t, Sell, "0.94", 10)
	sellEqual := newTestOrder(t, Sell, "0.95", 10)
	sellAbove := newTestOrder(t, Sell, "0.96", 10)

	assert.True(t, Matches(buy, sellBelow))
	assert.True(t, Matches(buy, sellEqual))
	assert.False(t, Matches(buy, sellAbove))

	// the predicate is symmetric across the side flip
	assert.True(t, Matches(sellBelow, buy))
	assert.True(t, Matches(sellEqual, buy))
	assert.False(t, Matches(sellAbove, buy))
}

func TestMatchesRejectsSameSide(t *testing.T) {
	a := newTestOrder(t, Buy, "0.95", 10)
	b := newTestOrder(t, Buy, "0.90", 10)

	assert.False(t, Matches(a, b))
	assert.False(t, Matches(b, a))
}

func TestMatchesRejectsDifferentPair(t *testing.T) {
	buy := newTestOrder(t, Buy, "0.95", 10)

	sell, err := NewOrder(NewCurrencyPair("GBP", "EUR"), Sell, decimal.RequireFromString("0.90"), decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.False(t, Matches(buy, sell))
}

func TestMatchesRejectsClosedOrders(t *testing.T) {
	buy := newTestOrder(t, Buy, "0.95", 10)
	sell := newTestOrder(t, Sell, "0.94", 10)

	sell.RemainingAmount = decimal.Zero

	assert.False(t, Matches(buy, sell))
	assert.False(t, Matches(sell, buy))
}
