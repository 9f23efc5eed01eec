package trading

import (
	"sync"

	"github.com/shopspring/decimal"
)

// QueueEngine matches against per-(pair, side) PriceQueues, so the best
// opposite price is always considered first. Time priority within a price
// level is not guaranteed here; the queue tie-breaks equal prices by order
// id (see PriceQueue).
//
// The close loop uses double-checked locking: the best opposite order is
// peeked under the lock, the matching predicate is evaluated outside it as
// an optimistic pre-check, and re-evaluated under the lock immediately
// before any mutation. When the recheck fails the loop re-peeks instead of
// stopping: the queue's best order may have changed, and giving up there
// would strand matchable orders. Lock hold time is bounded by the
// constant-size fill computation, never a scan.
type QueueEngine struct {
	Notifier

	mu       sync.Mutex
	registry *BookRegistry
}

func NewQueueEngine() *QueueEngine {
	return &QueueEngine{
		registry: NewBookRegistry(),
	}
}

// Place implements TradingEngine.
func (e *QueueEngine) Place(order *Order) error {
	e.mu.Lock()
	queue := e.registry.GetOrCreate(order.Pair, order.Side)
	err := queue.Add(order)
	e.mu.Unlock()

	if err != nil {
		logger.Error("order rejected", "order_id", order.ID, "error", err)
		return err
	}

	e.NotifyOpened(order)

	e.closeOrders(order)
	return nil
}

func (e *QueueEngine) closeOrders(order *Order) {
	e.mu.Lock()
	opposite := e.registry.GetOrCreateOpposite(order)
	empty := opposite.IsEmpty()
	e.mu.Unlock()

	if empty {
		return
	}

	for {
		e.mu.Lock()
		oppositeOrder := opposite.Peek()
		e.mu.Unlock()

		if oppositeOrder == nil {
			return
		}

		// optimistic pre-check, no lock held
		matched := Matches(order, oppositeOrder)
		if matched {
			e.mu.Lock()
			matched = Matches(order, oppositeOrder)
			if !matched {
				// another placement got here first; re-peek the queue
				e.mu.Unlock()
				continue
			}
			e.fill(order, oppositeOrder)
			e.mu.Unlock()
		}

		e.mu.Lock()
		stop := order.IsClosed() || !matched || opposite.IsEmpty()
		e.mu.Unlock()

		if stop {
			return
		}
	}
}

// fill subtracts the common fillable quantity from both orders and retires
// the ones that reach zero from their own queues. Caller holds e.mu, and
// has re-validated the match under it, so the quantity is always positive.
func (e *QueueEngine) fill(a, b *Order) {
	quantity := decimal.Min(a.RemainingAmount, b.RemainingAmount)

	a.RemainingAmount = a.RemainingAmount.Sub(quantity)
	b.RemainingAmount = b.RemainingAmount.Sub(quantity)

	if a.IsClosed() {
		e.registry.GetOrCreate(a.Pair, a.Side).Remove(a)
		e.NotifyClosed(a)
	}
	if b.IsClosed() {
		e.registry.GetOrCreate(b.Pair, b.Side).Remove(b)
		e.NotifyClosed(b)
	}
}
