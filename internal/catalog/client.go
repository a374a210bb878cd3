package catalog

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	ApiBaseUrl = "https://dummyjson.com"

	productsPath = "/products"
)

type ClientOpts struct {
	BaseURL string
}

// Client fetches the product catalog. A single unauthenticated GET returns
// the whole catalog; there is no retry and no pagination handling.
type Client struct {
	httpClient *resty.Client
	baseURL    string
}

func NewClient(opts ClientOpts) *Client {
	c := Client{baseURL: ApiBaseUrl}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	c.httpClient = resty.New().
		SetBaseURL(c.baseURL).
		SetHeader("Accept", "application/json")

	return &c
}

// FetchRaw GETs the product list endpoint and returns the raw body.
func (c *Client) FetchRaw(ctx context.Context) ([]byte, error) {
	res, err := handleError(c.httpClient.
		NewRequest().
		SetContext(ctx).
		Get(productsPath))
	if err != nil {
		return nil, err
	}

	return res.Body(), nil
}

// FetchModel runs the whole pipeline on one fetch: raw payload, field
// validation, normalization, model construction. Only the network layer
// can fail; a malformed but delivered payload yields an empty model and a
// warning, not an error.
func (c *Client) FetchModel(ctx context.Context) (Model, error) {
	body, err := c.FetchRaw(ctx)
	if err != nil {
		return Model{}, err
	}

	return BuildModel(ValidProducts(body)), nil
}

// handleError is a generic error handler for failing responses (>399
// status code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return res, nil
}
