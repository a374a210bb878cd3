package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupByID(t *testing.T) {
	m := BuildModel(sampleProducts())

	p, ok := LookupByID(m.Smartphones, 1).Get()
	assert.True(t, ok)
	assert.Equal(t, "Phone A", p.Title)

	assert.True(t, LookupByID(m.Smartphones, 2).IsNothing())
	assert.True(t, LookupByID(m.Smartphones, 999).IsNothing())
}

func TestProductListPreservesIDOrder(t *testing.T) {
	m := BuildModel(sampleProducts())

	got := m.Smartphones.ProductList()

	assert.Len(t, got, 2)
	assert.Equal(t, ProductID(1), got[0].ID)
	assert.Equal(t, ProductID(3), got[1].ID)
}

func TestProductListSkipsDanglingIDs(t *testing.T) {
	// Should not occur with a bucket built by BuildModel, but flattening
	// is defensive about it.
	b := Bucket{
		IDs:      []ProductID{1, 2},
		Products: map[ProductID]Product{1: {ID: 1, Title: "only one"}},
	}

	got := b.ProductList()

	assert.Len(t, got, 1)
	assert.Equal(t, ProductID(1), got[0].ID)
}

func TestAllProductsFollowsCategoryOrder(t *testing.T) {
	m := BuildModel(sampleProducts())

	got := AllProducts(m)

	ids := make([]ProductID, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	// Smartphones first, then laptops, then fragrances.
	assert.Equal(t, []ProductID{1, 3, 2, 5}, ids)
}

func TestFilterByPriceCeiling(t *testing.T) {
	products := []Product{{ID: 1, Title: "x", Price: 10.01}}

	assert.Empty(t, FilterByPriceCeiling(products, 10))
	assert.Len(t, FilterByPriceCeiling(products, 11), 1)
}

func TestFilterByPriceCeilingSortsAscending(t *testing.T) {
	products := []Product{
		{ID: 1, Price: 30},
		{ID: 2, Price: 10},
		{ID: 3, Price: 20},
		{ID: 4, Price: 99},
	}

	got := FilterByPriceCeiling(products, 50)

	assert.Len(t, got, 3)
	assert.Equal(t, ProductID(2), got[0].ID)
	assert.Equal(t, ProductID(3), got[1].ID)
	assert.Equal(t, ProductID(1), got[2].ID)
}

func TestFilterByPriceCeilingStableOnTies(t *testing.T) {
	products := []Product{
		{ID: 1, Price: 10},
		{ID: 2, Price: 10},
		{ID: 3, Price: 5},
		{ID: 4, Price: 10},
	}

	got := FilterByPriceCeiling(products, 20)

	ids := make([]ProductID, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []ProductID{3, 1, 2, 4}, ids)
}

func TestSearchByTitle(t *testing.T) {
	products := []Product{
		{ID: 1, Title: "Laptop Pro"},
		{ID: 2, Title: "Phone X"},
		{ID: 3, Title: "Gaming laptop"},
	}

	got := SearchByTitle("lap", products)
	assert.Len(t, got, 2)
	assert.Equal(t, ProductID(1), got[0].ID)
	assert.Equal(t, ProductID(3), got[1].ID)

	got = SearchByTitle("LAPTOP P", products)
	assert.Len(t, got, 1)
	assert.Equal(t, ProductID(1), got[0].ID)
}

func TestSearchByTitleMinimumLength(t *testing.T) {
	products := []Product{{ID: 1, Title: "ab"}}

	assert.Empty(t, SearchByTitle("", products))
	assert.Empty(t, SearchByTitle("a", products))
	assert.Empty(t, SearchByTitle("ab", products))
	assert.Len(t, SearchByTitle("abc", []Product{{ID: 1, Title: "xabcx"}}), 1)
}

func TestSearchByTitleNoMatch(t *testing.T) {
	products := []Product{{ID: 1, Title: "Laptop Pro"}}

	assert.Empty(t, SearchByTitle("phone", products))
}
