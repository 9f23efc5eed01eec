package trading

// QueueKey identifies one PriceQueue: a currency pair on one side.
type QueueKey struct {
	Pair CurrencyPair
	Side Side
}

// BookRegistry lazily creates and looks up one PriceQueue per
// (currency pair, side). It is not internally synchronized; the engine
// that owns it also owns the locking discipline around every access.
type BookRegistry struct {
	queues map[QueueKey]*PriceQueue
}

func NewBookRegistry() *BookRegistry {
	return &BookRegistry{
		queues: make(map[QueueKey]*PriceQueue),
	}
}

// GetOrCreate returns the queue for the key, creating it on first
// reference. There is never more than one queue per key.
func (r *BookRegistry) GetOrCreate(pair CurrencyPair, side Side) *PriceQueue {
	key := QueueKey{Pair: pair, Side: side}

	queue, ok := r.queues[key]
	if !ok {
		queue = NewPriceQueue(pair, side)
		r.queues[key] = queue
	}

	return queue
}

// GetOrCreateOpposite returns the queue the order would match against:
// same pair, opposite side.
func (r *BookRegistry) GetOrCreateOpposite(order *Order) *PriceQueue {
	return r.GetOrCreate(order.Pair, order.Side.Opposite())
}
