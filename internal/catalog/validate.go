package catalog

import (
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// ValidateRaw extracts the products list from an untrusted API payload. A
// payload without a products array yields an empty slice and a warning,
// never an error. Each element is validated field by field: a value is
// kept only when its JSON type matches the expected one, otherwise the
// field defaults to 0 or "". Records that end up all-default are still
// emitted here; Normalize is where empty records are dropped.
func ValidateRaw(data []byte) []RawProduct {
	products := gjson.GetBytes(data, "products")
	if !products.IsArray() {
		log.Warn().
			Str("products", products.Raw).
			Msg("api error: expected a list of products")
		return []RawProduct{}
	}

	items := products.Array()
	raw := make([]RawProduct, 0, len(items))
	for _, item := range items {
		raw = append(raw, RawProduct{
			ID:        ProductID(numberField(item, "id")),
			Title:     stringField(item, "title"),
			Price:     numberField(item, "price"),
			Category:  stringField(item, "category"),
			Thumbnail: stringField(item, "thumbnail"),
		})
	}
	return raw
}

func numberField(item gjson.Result, key string) float64 {
	v := item.Get(key)
	if v.Type != gjson.Number {
		return 0
	}
	return v.Float()
}

func stringField(item gjson.Result, key string) string {
	v := item.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}
