package browser

import (
	"math"

	"github.com/aleksi/catalog-browser/internal/catalog"
)

// priceBuffer widens the price bounds a little past the actual price
// extremes so the limits sit on round numbers outside the data.
const priceBuffer = 2

// PriceRange holds the bounds the price command works within and the
// currently selected ceiling.
type PriceRange struct {
	Min      float64
	Max      float64
	Selected float64
}

// NewPriceRange derives price bounds from a product list: ceil(max)+2 on
// top, floor(min)-2 on the bottom, with the selection starting at half the
// maximum.
func NewPriceRange(products []catalog.Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{}
	}

	min := products[0].Price
	max := products[0].Price
	for _, p := range products[1:] {
		min = math.Min(min, p.Price)
		max = math.Max(max, p.Price)
	}

	maxBound := math.Ceil(max + priceBuffer)
	minBound := math.Floor(min - priceBuffer)

	return PriceRange{
		Min:      minBound,
		Max:      maxBound,
		Selected: maxBound / 2,
	}
}
