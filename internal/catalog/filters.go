package catalog

import (
	"math"
	"sort"
	"strings"
)

// searchMinLength gates title search: queries shorter than this match
// nothing, so one- and two-character input cannot match most of the
// catalog.
const searchMinLength = 3

// LookupByID returns the bucket's product for id, or nothing when the id
// is not in the bucket.
func LookupByID(b Bucket, id ProductID) Maybe[Product] {
	p, ok := b.Products[id]
	if !ok {
		return None[Product]()
	}
	return Just(p)
}

// ProductList flattens the bucket back into a product slice following the
// id order. Ids without a mapping entry are skipped; with an intact bucket
// that never happens.
func (b Bucket) ProductList() []Product {
	products := make([]Product, 0, len(b.IDs))
	for _, id := range b.IDs {
		if p, ok := LookupByID(b, id).Get(); ok {
			products = append(products, p)
		}
	}
	return products
}

// AllProducts flattens every bucket in the model's fixed category order
// into a single product list.
func AllProducts(m Model) []Product {
	all := make([]Product, 0)
	for _, c := range m.Order {
		all = append(all, m.BucketFor(c).ProductList()...)
	}
	return all
}

// FilterByPriceCeiling keeps products whose price, rounded up to the next
// integer, is at most limit, sorted ascending by price. The ceiling means
// 10.01 is out at limit 10 but in at limit 11. The sort is stable, so
// equal-priced products keep their relative order.
func FilterByPriceCeiling(products []Product, limit float64) []Product {
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if math.Ceil(p.Price) <= limit {
			kept = append(kept, p)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Price < kept[j].Price
	})
	return kept
}

// SearchByTitle returns the products whose title contains query,
// case-insensitively, in input order. Queries shorter than three
// characters return nothing.
func SearchByTitle(query string, products []Product) []Product {
	found := make([]Product, 0)
	if len(query) < searchMinLength {
		return found
	}
	q := strings.ToUpper(query)
	for _, p := range products {
		if strings.Contains(strings.ToUpper(p.Title), q) {
			found = append(found, p)
		}
	}
	return found
}
