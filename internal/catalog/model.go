package catalog

// Bucket pairs a category's ordered product ids with an id-keyed lookup
// table. Both sides are built from the same filtered list and stay in sync
// because buckets are never mutated after construction.
type Bucket struct {
	IDs      []ProductID
	Products map[ProductID]Product
}

func newBucket(products []Product) Bucket {
	b := Bucket{
		IDs:      make([]ProductID, 0, len(products)),
		Products: make(map[ProductID]Product, len(products)),
	}
	for _, p := range products {
		b.IDs = append(b.IDs, p.ID)
		b.Products[p.ID] = p
	}
	return b
}

// Model is the categorized snapshot of one catalog load: one bucket per
// known department plus the fixed traversal order. A model is built once
// per fetch and replaced wholesale by the next one; the query layer treats
// it as read-only.
type Model struct {
	Smartphones    Bucket
	Laptops        Bucket
	Fragrances     Bucket
	Groceries      Bucket
	HomeDecoration Bucket

	// Order fixes the category traversal order of AllProducts.
	Order []Category
}

// BuildModel partitions products into per-category buckets, preserving the
// input order within each bucket. Products that resolved to Unassigned end
// up in no bucket at all and are unreachable through the model.
func BuildModel(products []Product) Model {
	forCategory := func(c Category) Bucket {
		matching := make([]Product, 0)
		for _, p := range products {
			if p.Category == c {
				matching = append(matching, p)
			}
		}
		return newBucket(matching)
	}

	return Model{
		Smartphones:    forCategory(Smartphones),
		Laptops:        forCategory(Laptops),
		Fragrances:     forCategory(Fragrances),
		Groceries:      forCategory(Groceries),
		HomeDecoration: forCategory(HomeDecoration),
		Order:          append([]Category(nil), Known...),
	}
}

// BucketFor returns the bucket holding c's products. Unassigned has no
// bucket, so it maps to an empty one.
func (m Model) BucketFor(c Category) Bucket {
	switch c {
	case Smartphones:
		return m.Smartphones
	case Laptops:
		return m.Laptops
	case Fragrances:
		return m.Fragrances
	case Groceries:
		return m.Groceries
	case HomeDecoration:
		return m.HomeDecoration
	default:
		return Bucket{Products: map[ProductID]Product{}}
	}
}
