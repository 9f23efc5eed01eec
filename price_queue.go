package trading

import (
	"fmt"
	"strings"

	"github.com/huandu/skiplist"
	"github.com/shopspring/decimal"
)

// orderKey sorts queue entries by price ascending, then by order id.
// The id component only keeps the key total-order well-defined; it is not
// a time-priority guarantee, so equal-priced orders are not matched FIFO
// here (the scan books are the storages that preserve arrival order).
type orderKey struct {
	price decimal.Decimal
	id    string
}

func compareOrderKeys(lhs, rhs any) int {
	k1, _ := lhs.(orderKey)
	k2, _ := rhs.(orderKey)

	if c := k1.price.Cmp(k2.price); c != 0 {
		return c
	}
	return strings.Compare(k1.id, k2.id)
}

// PriceQueue holds the resting orders of exactly one (currency pair, side),
// totally ordered by (price, id). Insert and remove are O(log n); peeking
// the best order is O(1) and never mutates the queue.
type PriceQueue struct {
	pair   CurrencyPair
	side   Side
	orders *skiplist.SkipList
}

// NewPriceQueue creates an empty queue keyed to one pair and side.
func NewPriceQueue(pair CurrencyPair, side Side) *PriceQueue {
	return &PriceQueue{
		pair:   pair,
		side:   side,
		orders: skiplist.New(skiplist.GreaterThanFunc(compareOrderKeys)),
	}
}

func (q *PriceQueue) Pair() CurrencyPair {
	return q.pair
}

func (q *PriceQueue) Side() Side {
	return q.side
}

// Add inserts an order into the queue. Orders whose pair or side differ
// from the queue's key are rejected with ErrQueueMismatch; that is a
// caller programming error, not a matching-path condition.
func (q *PriceQueue) Add(order *Order) error {
	if order.Pair != q.pair {
		return fmt.Errorf("%w: order pair is %s but queue is for %s", ErrQueueMismatch, order.Pair, q.pair)
	}
	if order.Side != q.side {
		return fmt.Errorf("%w: order side is %s but queue is for %s", ErrQueueMismatch, order.Side, q.side)
	}

	q.orders.Set(orderKey{price: order.Price, id: order.ID}, order)
	return nil
}

// Remove deletes the order by its (price, id) key. Removing an absent
// order is a no-op.
func (q *PriceQueue) Remove(order *Order) {
	q.orders.Remove(orderKey{price: order.Price, id: order.ID})
}

// Peek returns the best order without removing it: the lowest-priced order
// for a Sell queue (best ask), the highest-priced for a Buy queue (best
// bid), or nil if the queue is empty.
func (q *PriceQueue) Peek() *Order {
	var el *skiplist.Element
	if q.side == Sell {
		el = q.orders.Front()
	} else {
		el = q.orders.Back()
	}

	if el == nil {
		return nil
	}

	order, _ := el.Value.(*Order)
	return order
}

func (q *PriceQueue) IsEmpty() bool {
	return q.orders.Len() == 0
}

func (q *PriceQueue) Len() int {
	return q.orders.Len()
}

// Snapshot returns the queue's orders in (price, id) order. It is used by
// the durable store to serialize queue state.
func (q *PriceQueue) Snapshot() []*Order {
	snapshot := make([]*Order, 0, q.orders.Len())

	for el := q.orders.Front(); el != nil; el = el.Next() {
		order, _ := el.Value.(*Order)
		snapshot = append(snapshot, order)
	}

	return snapshot
}
