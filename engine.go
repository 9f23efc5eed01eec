package trading

// TradingEngine accepts orders for placement and matches them against
// resting counter-orders. Any number of goroutines may call Place
// concurrently on the same instance; Place runs to completion (the order
// fully filled or no further match) before returning. There is no
// cancellation: once placed, an order rests until fully matched.
type TradingEngine interface {
	// Place records the order as opened, publishes the opened
	// notification, then fills it against compatible counter-orders until
	// it closes or no match remains. Each order that becomes fully filled
	// leaves its book and publishes a closed notification.
	Place(order *Order) error

	// OnOrderOpened registers an opened-notification handler.
	OnOrderOpened(handler OrderHandler)

	// OnOrderClosed registers a closed-notification handler.
	OnOrderClosed(handler OrderHandler)
}
