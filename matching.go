package trading

// Matches reports whether two orders may trade against each other:
// both still open, same currency pair, opposite sides, and the sell price
// does not exceed the buy price.
//
// The predicate is pure and safe to call without holding any lock; the
// engines use it as an optimistic pre-check and re-evaluate it under lock
// before mutating anything.
func Matches(a, b *Order) bool {
	if a.IsClosed() || b.IsClosed() {
		return false
	}

	if a.Pair != b.Pair {
		return false
	}

	// a Buy matches a Sell priced at or below it
	if a.Side == Buy && b.Side == Sell && b.Price.LessThanOrEqual(a.Price) {
		return true
	}

	// and the mirror case
	if a.Side == Sell && b.Side == Buy && b.Price.GreaterThanOrEqual(a.Price) {
		return true
	}

	return false
}
