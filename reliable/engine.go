// Package reliable provides the durable TradingEngine variant: the same
// price-queue matching algorithm as trading.QueueEngine, with queue state
// living in a pebble-backed QueueStore instead of process memory. A
// restarted engine over the same store resurfaces every order that was
// still resting.
package reliable

import (
	"sync"

	"github.com/shopspring/decimal"

	trading "github.com/quantex-io/trading-engine"
)

// Engine applies the double-checked matching algorithm across the store's
// transaction boundary. One engine-wide mutex serializes placements, making
// the whole Place call the transaction, so the in-memory engines' inner
// lock dance collapses here; the loop shape and stop conditions are the
// same. Queue mutations reach disk in two commits per placement: the
// order's own insert, then the matched state of both queues in one batch.
type Engine struct {
	trading.Notifier

	mu    sync.Mutex
	store *QueueStore
}

func NewEngine(store *QueueStore) *Engine {
	return &Engine{store: store}
}

// Place implements trading.TradingEngine.
func (e *Engine) Place(order *trading.Order) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	own, err := e.store.Load(order.Pair, order.Side)
	if err != nil {
		return err
	}
	if err := own.Add(order); err != nil {
		return err
	}
	if err := e.store.Save(own); err != nil {
		return err
	}

	e.NotifyOpened(order)

	return e.closeOrders(order, own)
}

func (e *Engine) closeOrders(order *trading.Order, own *trading.PriceQueue) error {
	opposite, err := e.store.Load(order.Pair, order.Side.Opposite())
	if err != nil {
		return err
	}
	if opposite.IsEmpty() {
		return nil
	}

	for {
		oppositeOrder := opposite.Peek()
		if oppositeOrder == nil {
			break
		}

		if !trading.Matches(order, oppositeOrder) {
			break
		}

		e.fill(order, own, oppositeOrder, opposite)

		if order.IsClosed() || opposite.IsEmpty() {
			break
		}
	}

	return e.store.SaveBoth(own, opposite)
}

func (e *Engine) fill(a *trading.Order, aQueue *trading.PriceQueue, b *trading.Order, bQueue *trading.PriceQueue) {
	quantity := decimal.Min(a.RemainingAmount, b.RemainingAmount)

	a.RemainingAmount = a.RemainingAmount.Sub(quantity)
	b.RemainingAmount = b.RemainingAmount.Sub(quantity)

	if a.IsClosed() {
		aQueue.Remove(a)
		e.NotifyClosed(a)
	}
	if b.IsClosed() {
		bQueue.Remove(b)
		e.NotifyClosed(b)
	}
}
