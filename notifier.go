package trading

import "sync"

// OrderHandler observes an order lifecycle event. The order is passed by
// reference as a snapshot at the moment of notification; handlers must not
// mutate it.
type OrderHandler func(order *Order)

// Notifier is the synchronous opened/closed notification fan-out shared by
// all engines. Handlers run on the placing goroutine, in registration
// order, inside the same critical path as the state change they report.
type Notifier struct {
	mu     sync.RWMutex
	opened []OrderHandler
	closed []OrderHandler
}

// OnOrderOpened registers a handler invoked once for every order accepted
// into a book.
func (n *Notifier) OnOrderOpened(handler OrderHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.opened = append(n.opened, handler)
}

// OnOrderClosed registers a handler invoked once when an order becomes
// fully filled and leaves its book.
func (n *Notifier) OnOrderClosed(handler OrderHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = append(n.closed, handler)
}

// NotifyOpened fans the opened event out to all registered handlers.
func (n *Notifier) NotifyOpened(order *Order) {
	n.mu.RLock()
	handlers := n.opened
	n.mu.RUnlock()

	for _, handler := range handlers {
		handler(order)
	}
}

// NotifyClosed fans the closed event out to all registered handlers.
func (n *Notifier) NotifyClosed(order *Order) {
	n.mu.RLock()
	handlers := n.closed
	n.mu.RUnlock()

	for _, handler := range handlers {
		handler(order)
	}
}

// OrderRecorder collects opened and closed notifications.
// It is used by the tests and the playground to observe engine behavior.
type OrderRecorder struct {
	mu     sync.Mutex
	opened []*Order
	closed []*Order
}

func NewOrderRecorder() *OrderRecorder {
	return &OrderRecorder{}
}

// Attach subscribes the recorder to both notification kinds of the engine.
func (r *OrderRecorder) Attach(engine TradingEngine) {
	engine.OnOrderOpened(r.recordOpened)
	engine.OnOrderClosed(r.recordClosed)
}

func (r *OrderRecorder) recordOpened(order *Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = append(r.opened, order)
}

func (r *OrderRecorder) recordClosed(order *Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = append(r.closed, order)
}

// Opened returns a copy of all orders seen in opened notifications.
func (r *OrderRecorder) Opened() []*Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Order, len(r.opened))
	copy(out, r.opened)
	return out
}

// Closed returns a copy of all orders seen in closed notifications.
func (r *OrderRecorder) Closed() []*Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Order, len(r.closed))
	copy(out, r.closed)
	return out
}

func (r *OrderRecorder) OpenedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.opened)
}

func (r *OrderRecorder) ClosedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.closed)
}

// OpenOrders returns the orders that were opened but never closed.
func (r *OrderRecorder) OpenOrders() []*Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	closedIDs := make(map[string]struct{}, len(r.closed))
	for _, order := range r.closed {
		closedIDs[order.ID] = struct{}{}
	}

	var open []*Order
	for _, order := range r.opened {
		if _, ok := closedIDs[order.ID]; !ok {
			open = append(open, order)
		}
	}
	return open
}
