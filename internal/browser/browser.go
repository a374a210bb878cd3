// Package browser is the interactive shell around the catalog model. It
// owns the live model and the selected category and maps each command to
// one of the pure query functions.
package browser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog/log"

	"github.com/aleksi/catalog-browser/internal/catalog"
	"github.com/aleksi/catalog-browser/internal/render"
)

// Fetcher reloads the catalog model. Satisfied by *catalog.Client.
type Fetcher interface {
	FetchModel(ctx context.Context) (catalog.Model, error)
}

// Browser dispatches shell commands against the current model. Unassigned
// doubles as "no category selected": every command then works on the whole
// catalog. The model is only ever replaced wholesale, by fetch.
type Browser struct {
	model    catalog.Model
	selected catalog.Category
	prices   PriceRange
	fetcher  Fetcher
	out      io.Writer
}

func New(model catalog.Model, fetcher Fetcher, out io.Writer) *Browser {
	b := &Browser{
		model:    model,
		selected: catalog.Unassigned,
		fetcher:  fetcher,
		out:      out,
	}
	b.prices = NewPriceRange(b.scope())
	return b
}

const helpText = `
	Commands:
	  all              show every product
	  cat <name>       show one category (smartphones, laptops, fragrances,
	                   groceries, home-decoration) or "cat all"
	  price <n>        products up to price n, cheapest first
	  search <text>    search titles in the current view (3 chars minimum)
	  show <id>        product details
	  html <file>      export the current view as sanitized HTML
	  fetch            reload the catalog
	  help             this text
	  quit             exit`

// Run prints the full grid and then reads commands line by line until EOF
// or quit.
func (b *Browser) Run(ctx context.Context, in io.Reader) error {
	b.printGrid(b.scope())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(b.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(b.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := b.Handle(ctx, line); quit {
			return nil
		}
	}
}

// Handle dispatches one command line and reports whether the shell should
// exit.
func (b *Browser) Handle(ctx context.Context, line string) bool {
	cmd, args := parseCommand(line)
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(b.out, strings.TrimSpace(dedent.Dedent(helpText)))
	case "all":
		b.selectCategory(catalog.Unassigned)
	case "cat":
		b.handleCategory(strings.Join(args, " "))
	case "price":
		b.handlePrice(strings.Join(args, ""))
	case "search":
		b.handleSearch(strings.Join(args, " "))
	case "show":
		b.handleShow(strings.Join(args, ""))
	case "html":
		b.handleExport(strings.Join(args, " "))
	case "fetch":
		b.handleFetch(ctx)
	default:
		fmt.Fprintf(b.out, "unknown command %q, try help\n", cmd)
	}
	return false
}

// Selected returns the currently selected category.
func (b *Browser) Selected() catalog.Category {
	return b.selected
}

// Prices returns the current price range state.
func (b *Browser) Prices() PriceRange {
	return b.prices
}

// scope returns the products commands operate on: the selected category's
// bucket, or the whole catalog when no category is selected.
func (b *Browser) scope() []catalog.Product {
	if b.selected == catalog.Unassigned {
		return catalog.AllProducts(b.model)
	}
	return b.model.BucketFor(b.selected).ProductList()
}

func (b *Browser) selectCategory(c catalog.Category) {
	b.selected = c
	products := b.scope()
	b.prices = NewPriceRange(products)
	b.printGrid(products)
}

func (b *Browser) handleCategory(name string) {
	if name == "" || name == "all" {
		b.selectCategory(catalog.Unassigned)
		return
	}

	c := catalog.ParseCategory(name)
	if c == catalog.Unassigned {
		log.Warn().Str("category", name).Msg("not a known category, no products to list")
		return
	}
	b.selectCategory(c)
}

func (b *Browser) handlePrice(arg string) {
	limit, ok := catalog.ParseFloat(arg).Get()
	if !ok {
		log.Warn().Str("input", arg).Msg("expected a number for the price limit")
		return
	}

	b.prices.Selected = limit
	b.printGrid(catalog.FilterByPriceCeiling(b.scope(), limit))
}

func (b *Browser) handleSearch(query string) {
	found := catalog.SearchByTitle(query, b.scope())
	if len(found) == 0 {
		fmt.Fprintln(b.out, "no matches")
		return
	}
	fmt.Fprintln(b.out, render.Rows(found))
}

func (b *Browser) handleShow(arg string) {
	id, ok := catalog.ParseFloat(arg).Get()
	if !ok {
		log.Warn().Str("input", arg).Msg("expected a product id")
		return
	}

	for _, c := range b.model.Order {
		if p, ok := catalog.LookupByID(b.model.BucketFor(c), catalog.ProductID(id)).Get(); ok {
			fmt.Fprintln(b.out, render.Detail(p))
			return
		}
	}
	log.Warn().Float64("id", id).Msg("product not found")
}

func (b *Browser) handleExport(path string) {
	if path == "" {
		fmt.Fprintln(b.out, "usage: html <file>")
		return
	}

	html := render.GridHTML(b.scope())
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to write export")
		return
	}
	fmt.Fprintf(b.out, "wrote %s\n", path)
}

func (b *Browser) handleFetch(ctx context.Context) {
	if b.fetcher == nil {
		fmt.Fprintln(b.out, "no catalog endpoint configured")
		return
	}

	model, err := b.fetcher.FetchModel(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload catalog")
		return
	}

	b.model = model
	b.selectCategory(catalog.Unassigned)
}

func (b *Browser) printGrid(products []catalog.Product) {
	if len(products) == 0 {
		fmt.Fprintln(b.out, "no products")
		return
	}
	fmt.Fprintln(b.out, render.Rows(products))
	fmt.Fprintln(b.out, render.Summary(len(products), b.prices.Min, b.prices.Max, b.prices.Selected))
}

func parseCommand(s string) (string, []string) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}
