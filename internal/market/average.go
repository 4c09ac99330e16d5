package market

// AveragePrice returns the arithmetic mean of all prices, summed in input order.
// The result is NaN for an empty slice.
func AveragePrice(pairs []PricePair) float64 {
	var total float64
	for _, p := range pairs {
		total += p.Price
	}
	return total / float64(len(pairs))
}
