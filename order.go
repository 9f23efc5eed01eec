package trading

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/shopspring/decimal"
)

type Side int8

const (
	Buy  Side = 1
	Sell Side = 2
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Opposite returns the counter side: Sell for Buy and vice versa.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// Order is the mutable record of one resting or filling order.
//
// Identity is the ID assigned at construction; every other field except
// RemainingAmount is fixed for the order's lifetime. RemainingAmount starts
// at Amount and only ever decreases, and only the engine that owns the
// order's book may mutate it, under that engine's lock.
type Order struct {
	ID              string          `json:"id"`
	Pair            CurrencyPair    `json:"pair"`
	Side            Side            `json:"side"`
	Price           decimal.Decimal `json:"price"`
	Amount          decimal.Decimal `json:"amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`

	// Intrusive links used by LinkedScanBook (ignored by JSON)
	next *Order
	prev *Order
}

// NewOrder creates an open order with a fresh process-unique id.
// Price and amount must both be positive.
func NewOrder(pair CurrencyPair, side Side, price, amount decimal.Decimal) (*Order, error) {
	if side != Buy && side != Sell {
		return nil, fmt.Errorf("%w: side %d", ErrInvalidParam, side)
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price %s", ErrInvalidParam, price)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount %s", ErrInvalidParam, amount)
	}

	return &Order{
		ID:              xid.New().String(),
		Pair:            pair,
		Side:            side,
		Price:           price,
		Amount:          amount,
		RemainingAmount: amount,
	}, nil
}

// IsClosed reports whether the order is fully filled.
// A closed order is never reopened.
func (o *Order) IsClosed() bool {
	return o.RemainingAmount.IsZero()
}

func (o *Order) String() string {
	return fmt.Sprintf("%s %s %s @ %s, %s of %s remaining",
		o.Side, o.Pair, o.ID, o.Price, o.RemainingAmount, o.Amount)
}
