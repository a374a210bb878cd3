package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aleksi/catalog-browser/config"
	"github.com/aleksi/catalog-browser/internal/catalog"
)

// Fetches the catalog and prints the normalized products as JSON.
func main() {
	config.LoadEnvFile()

	baseURL := flag.String("url", config.CatalogURL(), "Catalog base URL")
	raw := flag.Bool("raw", false, "Print the raw API body instead of normalized products")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := catalog.NewClient(catalog.ClientOpts{BaseURL: *baseURL})
	body, err := client.FetchRaw(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching catalog: %v\n", err)
		os.Exit(1)
	}

	if *raw {
		os.Stdout.Write(body)
		fmt.Println()
		return
	}

	products := catalog.ValidProducts(body)
	out, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding products: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
