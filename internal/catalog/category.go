package catalog

import (
	"encoding/json"
	"strings"
)

// Category is the closed set of catalog departments. API category strings
// that match none of the known departments resolve to Unassigned.
type Category int

const (
	Unassigned Category = iota
	Smartphones
	Laptops
	Fragrances
	Groceries
	HomeDecoration
)

// Known lists the real departments in the order the model lays out its
// buckets. Unassigned is deliberately not in it: unassigned products have
// no bucket.
var Known = []Category{Smartphones, Laptops, Fragrances, Groceries, HomeDecoration}

var categoryBySlug = map[string]Category{
	"smartphones":     Smartphones,
	"laptops":         Laptops,
	"fragrances":      Fragrances,
	"groceries":       Groceries,
	"home-decoration": HomeDecoration,
}

// ParseCategory resolves an API category string to a Category. Matching is
// case-insensitive and total: unrecognized strings, including the empty
// string, resolve to Unassigned rather than failing.
func ParseCategory(raw string) Category {
	if c, ok := categoryBySlug[strings.ToLower(raw)]; ok {
		return c
	}
	return Unassigned
}

// Slug returns the lower-case API form of the category.
func (c Category) Slug() string {
	switch c {
	case Smartphones:
		return "smartphones"
	case Laptops:
		return "laptops"
	case Fragrances:
		return "fragrances"
	case Groceries:
		return "groceries"
	case HomeDecoration:
		return "home-decoration"
	default:
		return "unassigned"
	}
}

// String returns the canonical upper-case tag for the category.
func (c Category) String() string {
	return strings.ToUpper(c.Slug())
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ParseCategory(s)
	return nil
}
