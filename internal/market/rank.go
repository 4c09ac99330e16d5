package market

import (
	"cmp"
	"math"
	"slices"
)

// TopN returns the first count pairs of a stable, price-ordered copy of pairs.
// Pairs with equal prices keep their input order. NaN prices sort after every
// numeric price regardless of order. A negative count yields an empty result.
func TopN(pairs []PricePair, count int, order Order) []PricePair {
	if count <= 0 || len(pairs) == 0 {
		return []PricePair{}
	}

	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b PricePair) int {
		aNaN, bNaN := math.IsNaN(a.Price), math.IsNaN(b.Price)
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return 1
		case bNaN:
			return -1
		}
		if order == Descending {
			return cmp.Compare(b.Price, a.Price)
		}
		return cmp.Compare(a.Price, b.Price)
	})

	return sorted[:min(count, len(sorted))]
}
