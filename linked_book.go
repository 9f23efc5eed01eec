package trading

import "sync"

// LinkedScanBook has the same contract as LinearScanBook but keeps the
// resting orders on an intrusive doubly-linked list indexed by order id,
// so removal and resume-from-cursor are O(1).
//
// Unlike LinearScanBook, the whole find call runs under one coarse lock:
// removal efficiency is bought with a longer lock hold during scans.
type LinkedScanBook struct {
	mu     sync.Mutex
	orders map[string]*Order
	head   *Order
	tail   *Order
}

func NewLinkedScanBook() *LinkedScanBook {
	return &LinkedScanBook{
		orders: make(map[string]*Order),
	}
}

func (b *LinkedScanBook) Add(order *Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	order.prev = b.tail
	order.next = nil

	if b.tail != nil {
		b.tail.next = order
	} else {
		b.head = order
	}
	b.tail = order

	b.orders[order.ID] = order
}

func (b *LinkedScanBook) Remove(order *Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	node, ok := b.orders[order.ID]
	if !ok {
		return
	}

	if node.prev != nil {
		node.prev.next = node.next
	} else {
		b.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		b.tail = node.prev
	}

	node.next = nil
	node.prev = nil
	delete(b.orders, order.ID)
}

func (b *LinkedScanBook) FindNextMatch(cursor, target *Order) *Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := b.head
	if cursor != nil {
		node, ok := b.orders[cursor.ID]
		if !ok {
			return nil
		}
		start = node.next
	}

	for candidate := start; candidate != nil; candidate = candidate.next {
		if Matches(candidate, target) {
			return candidate
		}
	}

	return nil
}

// Size returns the number of resting orders.
func (b *LinkedScanBook) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.orders)
}
