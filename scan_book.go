package trading

import "sync"

// Book is the capability interface shared by the scan-based storages.
// An implementation owns every resting order of one engine instance,
// without partitioning by side or pair.
type Book interface {
	// Add stores a new resting order.
	Add(order *Order)

	// Remove deletes the order by identity. Absent orders are a no-op.
	Remove(order *Order)

	// FindNextMatch scans from the position after cursor (or from the
	// start when cursor is nil) and returns the first resting order that
	// matches target, or nil. A nil result may be a transient false
	// negative when the book shrinks under a concurrent removal.
	FindNextMatch(cursor, target *Order) *Order
}

// LinearScanBook stores resting orders in submission order and matches by
// scanning front to back, giving true first-in-first-matched semantics
// across the whole book regardless of price level.
//
// Every element access takes its own short-lived lock rather than holding
// one lock across the scan, so a removal can land mid-scan; the scan then
// stops and reports no match instead of faulting.
type LinearScanBook struct {
	mu     sync.Mutex
	orders []*Order
}

func NewLinearScanBook() *LinearScanBook {
	return &LinearScanBook{}
}

func (b *LinearScanBook) Add(order *Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append(b.orders, order)
}

func (b *LinearScanBook) Remove(order *Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, candidate := range b.orders {
		if candidate.ID == order.ID {
			b.orders = append(b.orders[:i], b.orders[i+1:]...)
			return
		}
	}
}

func (b *LinearScanBook) FindNextMatch(cursor, target *Order) *Order {
	i := 0
	if cursor != nil {
		idx := b.indexOf(cursor)
		if idx < 0 {
			// cursor was removed while we were away
			return nil
		}
		i = idx + 1
	}

	for ; i < b.size(); i++ {
		candidate, ok := b.at(i)
		if !ok {
			// the book shrank mid-scan; report no match this pass
			return nil
		}
		if Matches(candidate, target) {
			return candidate
		}
	}

	return nil
}

// Size returns the number of resting orders.
func (b *LinearScanBook) Size() int {
	return b.size()
}

func (b *LinearScanBook) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.orders)
}

func (b *LinearScanBook) at(i int) (*Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.orders) {
		return nil, false
	}
	return b.orders[i], true
}

func (b *LinearScanBook) indexOf(order *Order) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, candidate := range b.orders {
		if candidate.ID == order.ID {
			return i
		}
	}
	return -1
}
