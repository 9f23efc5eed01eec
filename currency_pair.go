package trading

// CurrencyPair identifies the market an order trades on, e.g. USD/EUR.
// It is an immutable value type compared by value, and is used as a
// book-partitioning key.
type CurrencyPair struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// NewCurrencyPair creates a currency pair from its two currency codes.
func NewCurrencyPair(base, quote string) CurrencyPair {
	return CurrencyPair{Base: base, Quote: quote}
}

func (p CurrencyPair) String() string {
	return p.Base + "/" + p.Quote
}
