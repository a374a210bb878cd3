// Package render produces what the browser shell shows: sanitized HTML
// exports of the product grid and styled terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/aleksi/catalog-browser/internal/catalog"
)

// policy allowlists the markup the grid templates generate and nothing
// else: list items with a class, anchors with href/data-category/id,
// images with src/alt/class. Everything rendered into an export goes
// through it, so product titles or thumbnail URLs straight from the API
// cannot smuggle markup in.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("ul", "li", "a", "img")
	p.AllowAttrs("class").OnElements("li")
	p.AllowAttrs("src", "alt", "class").OnElements("img")
	p.AllowAttrs("href", "data-category", "id").OnElements("a")
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)
	return p
}

// Sanitize strips everything outside the allowlisted markup.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}

// GridHTML renders products as the catalog grid: a linked thumbnail per
// item with title and price beneath it, already sanitized.
func GridHTML(products []catalog.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, `<li class="grid-item">
  <a id="%d" data-category="%s" href="#">
    <img class="grid-item-img-mini" src="%s" alt="img" />
  </a>
  <ul>
    <li>%s</li>
    <li class="product-price">$%v</li>
  </ul>
</li>
`, p.ID, p.Category, p.Thumbnail, p.Title, p.Price)
	}
	return Sanitize(b.String())
}

// TitleListHTML renders products as a plain list of title links, the shape
// search results take.
func TitleListHTML(products []catalog.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, `<li>
  <a href="#" id="%d" data-category="%s">%s</a>
</li>
`, p.ID, p.Category, p.Title)
	}
	return Sanitize(b.String())
}

// PopupHTML renders the single-product detail view: full-size image with
// title and price.
func PopupHTML(p catalog.Product) string {
	html := fmt.Sprintf(`<img class="grid-item-img-maxi" src="%s" alt="img" />
<ul>
  <li>%s</li>
  <li class="product-price">$%v</li>
</ul>
`, p.Thumbnail, p.Title, p.Price)
	return Sanitize(html)
}
