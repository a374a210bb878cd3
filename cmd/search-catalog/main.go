package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aleksi/catalog-browser/config"
	"github.com/aleksi/catalog-browser/internal/catalog"
	"github.com/aleksi/catalog-browser/internal/render"
)

// Fetches the catalog and runs a one-shot title search.
func main() {
	config.LoadEnvFile()

	baseURL := flag.String("url", config.CatalogURL(), "Catalog base URL")
	category := flag.String("cat", "", "Limit search to one category")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: search-catalog [-url <base>] [-cat <category>] <query>")
		os.Exit(1)
	}
	query := strings.Join(flag.Args(), " ")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := catalog.NewClient(catalog.ClientOpts{BaseURL: *baseURL})
	model, err := client.FetchModel(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching catalog: %v\n", err)
		os.Exit(1)
	}

	products := catalog.AllProducts(model)
	if *category != "" {
		c := catalog.ParseCategory(*category)
		if c == catalog.Unassigned {
			fmt.Fprintf(os.Stderr, "Unknown category %q\n", *category)
			os.Exit(1)
		}
		products = model.BucketFor(c).ProductList()
	}

	found := catalog.SearchByTitle(query, products)
	if len(found) == 0 {
		fmt.Println("no matches")
		return
	}
	fmt.Println(render.Rows(found))
}
