package catalog

// isValidRecord is the record validity rule: every field must be non-zero.
// Inherited as-is, which means a price of 0 or an id of 0 rejects the
// record even though either could be legitimate data. Kept for fidelity
// instead of special-casing zeroes; see DESIGN.md.
func isValidRecord(r RawProduct) bool {
	switch {
	case r.ID == 0:
		return false
	case r.Price == 0:
		return false
	case r.Category == "":
		return false
	case r.Thumbnail == "":
		return false
	case r.Title == "":
		return false
	default:
		return true
	}
}

// Normalize drops records failing the validity rule and resolves each
// survivor's category. Input order is preserved.
func Normalize(raw []RawProduct) []Product {
	products := make([]Product, 0, len(raw))
	for _, r := range raw {
		if !isValidRecord(r) {
			continue
		}
		products = append(products, Product{
			ID:        r.ID,
			Title:     r.Title,
			Price:     r.Price,
			Category:  ParseCategory(r.Category),
			Thumbnail: r.Thumbnail,
		})
	}
	return products
}

// ValidProducts runs field validation and normalization on a raw payload.
func ValidProducts(data []byte) []Product {
	return Normalize(ValidateRaw(data))
}
