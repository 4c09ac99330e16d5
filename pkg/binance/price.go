package binance

import (
	"math"
	"strconv"

	"tickerreport/internal/market"
)

// ParsePriceList converts Binance ticker prices to []market.PricePair, preserving order.
// A price that is not a valid decimal becomes NaN instead of failing the whole list.
func ParsePriceList(raw []TickerPrice) []market.PricePair {
	out := make([]market.PricePair, 0, len(raw))
	for _, t := range raw {
		price, err := strconv.ParseFloat(t.Price, 64)
		if err != nil {
			price = math.NaN()
		}
		out = append(out, market.PricePair{
			Symbol: t.Symbol,
			Price:  price,
		})
	}
	return out
}
