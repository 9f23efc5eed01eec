package trading

import (
	"sync"

	"github.com/shopspring/decimal"
)

// FifoEngine matches orders in strict arrival order: the earliest resting
// order that satisfies the predicate fills first, regardless of how much
// better another price might be. It works against either scan-based Book
// (LinearScanBook or LinkedScanBook), chosen at construction.
//
// Each fill happens inside one global critical section; the scan that
// finds the next candidate runs outside it, so a rescan may transiently
// miss a match under concurrent removal and simply end this placement's
// matching pass.
type FifoEngine struct {
	Notifier

	book Book
	mu   sync.Mutex
}

// NewFifoEngine creates an engine over the given scan book.
func NewFifoEngine(book Book) *FifoEngine {
	return &FifoEngine{
		book: book,
	}
}

// Place implements TradingEngine.
func (e *FifoEngine) Place(order *Order) error {
	e.book.Add(order)
	e.NotifyOpened(order)

	e.closeOrders(order)
	return nil
}

func (e *FifoEngine) closeOrders(order *Order) {
	for {
		// Rescan from the start each pass: the only way the loop
		// continues is when the previous match closed and left the book,
		// which invalidates any cursor into it.
		match := e.book.FindNextMatch(nil, order)
		if match == nil {
			return
		}

		e.mu.Lock()
		e.fill(match, order)
		e.mu.Unlock()

		if order.IsClosed() {
			return
		}
	}
}

// fill subtracts the common fillable quantity from both orders and retires
// the ones that reach zero. Caller holds e.mu.
func (e *FifoEngine) fill(a, b *Order) {
	quantity := decimal.Min(a.RemainingAmount, b.RemainingAmount)
	if quantity.IsZero() {
		// the candidate closed between the scan and this lock; the next
		// scan will skip it
		return
	}

	a.RemainingAmount = a.RemainingAmount.Sub(quantity)
	b.RemainingAmount = b.RemainingAmount.Sub(quantity)

	if a.IsClosed() {
		e.book.Remove(a)
		e.NotifyClosed(a)
	}
	if b.IsClosed() {
		e.book.Remove(b)
		e.NotifyClosed(b)
	}
}
