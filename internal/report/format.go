package report

import (
	"math"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a price with exactly two decimal places, rounding half away from zero.
func FormatPrice(price float64) string {
	switch {
	case math.IsNaN(price):
		return "NaN"
	case math.IsInf(price, 1):
		return "Infinity"
	case math.IsInf(price, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(price).StringFixed(2)
}
