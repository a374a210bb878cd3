package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRaw(t *testing.T) {
	var req *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[]}`))
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	body, err := client.FetchRaw(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, `{"products":[]}`, string(body))
	assert.Equal(t, "/products", req.URL.Path)
}

func TestFetchRawErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	_, err := client.FetchRaw(context.Background())

	assert.ErrorContains(t, err, "status: 500")
}

func TestFetchModel(t *testing.T) {
	b, err := os.ReadFile("testdata/products.json")
	require.NoError(t, err)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(b)
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	model, err := client.FetchModel(context.Background())
	require.NoError(t, err)

	// The fixture holds five well-formed products in known categories, one
	// in an unknown category, one with an empty title and one with
	// wrong-typed id/price.
	assert.Equal(t, []ProductID{1}, model.Smartphones.IDs)
	assert.Equal(t, []ProductID{6}, model.Laptops.IDs)
	assert.Equal(t, []ProductID{11}, model.Fragrances.IDs)
	assert.Equal(t, []ProductID{16}, model.Groceries.IDs)
	assert.Equal(t, []ProductID{26}, model.HomeDecoration.IDs)
	assert.Len(t, AllProducts(model), 5)

	p, ok := LookupByID(model.Laptops, 6).Get()
	assert.True(t, ok)
	assert.Equal(t, Product{
		ID:        6,
		Title:     "MacBook Pro",
		Price:     1749,
		Category:  Laptops,
		Thumbnail: "https://cdn.dummyjson.com/product-images/6/thumbnail.png",
	}, p)
}

func TestFetchModelMalformedPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"maintenance"}`))
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	model, err := client.FetchModel(context.Background())

	// A delivered but malformed payload is not an error, just an empty
	// model.
	assert.Nil(t, err)
	assert.Empty(t, AllProducts(model))
}
