package trading

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// GenerateOrders produces pairs of random Buy and Sell orders for one
// currency pair, 2*pairs orders in total. Prices are uniform in
// [minPrice, maxPrice) rounded to 4 decimal places; amounts are integers
// in [1, 100). Used by the playground and the randomized tests.
func GenerateOrders(pairs int, base, quote string, minPrice, maxPrice float64) []*Order {
	currencyPair := NewCurrencyPair(base, quote)
	orders := make([]*Order, 0, pairs*2)

	for i := 0; i < pairs; i++ {
		for _, side := range []Side{Buy, Sell} {
			price := decimal.NewFromFloat(minPrice + rand.Float64()*(maxPrice-minPrice)).Round(4)
			amount := decimal.NewFromInt(rand.Int63n(99) + 1)

			order, err := NewOrder(currencyPair, side, price, amount)
			if err != nil {
				// price and amount ranges guarantee validity
				continue
			}
			orders = append(orders, order)
		}
	}

	return orders
}
