package market

// PricePair is the latest price of one trading pair as reported by the exchange.
type PricePair struct {
	Symbol string  `json:"symbol"` // Exchange ticker identifier (e.g., "BTCUSDT")
	Price  float64 `json:"price"`  // Last traded price in quote currency
}

// Order selects the direction TopN ranks prices in.
type Order string

const (
	Ascending  Order = "asc"  // cheapest first
	Descending Order = "desc" // most expensive first
)
