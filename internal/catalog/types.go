// Package catalog turns the raw product payload of the catalog API into a
// validated, categorized in-memory model and provides the pure query
// functions the browser shell runs against it.
package catalog

// ProductID identifies a product within one loaded catalog.
type ProductID int

// RawProduct mirrors one element of the API payload after field-level
// validation. Fields that were missing or wrong-typed in the payload hold
// their zero value.
type RawProduct struct {
	ID        ProductID `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Thumbnail string    `json:"thumbnail"`
}

// Product is a validated catalog entry with its category resolved.
type Product struct {
	ID        ProductID `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Category  Category  `json:"category"`
	Thumbnail string    `json:"thumbnail"`
}
