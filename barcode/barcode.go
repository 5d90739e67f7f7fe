// Package barcode looks up packaged products by barcode in the Open Food
// Facts product database.
package barcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Open Food Facts v0 product endpoint.
const DefaultBaseURL = "https://world.openfoodfacts.org/api/v0/product"

// DefaultTimeout bounds a single lookup.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 4 << 20

// ErrNetwork indicates the lookup could not be completed: a transport
// failure, an unexpected HTTP status, or an unreadable response.
var ErrNetwork = errors.New("barcode lookup failed")

// ErrInvalidCode indicates a blank barcode.
var ErrInvalidCode = errors.New("invalid barcode")

// Product is the result of a lookup. Found is false when the database has
// no entry for the code.
type Product struct {
	Found bool   `json:"found"`
	Code  string `json:"code"`
	Name  string `json:"name,omitempty"`
	Brand string `json:"brand,omitempty"`
}

// Options configures a Resolver.
type Options struct {
	// BaseURL is the product endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds each lookup. Defaults to DefaultTimeout.
	Timeout time.Duration

	// HTTPClient performs requests. Defaults to a client with Timeout.
	HTTPClient *http.Client
}

// Resolver resolves barcodes to products.
type Resolver struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewResolver creates a resolver from opts.
func NewResolver(opts Options) *Resolver {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Resolver{baseURL: baseURL, timeout: timeout, client: client}
}

type productResponse struct {
	Status  int              `json:"status"`
	Product *productResource `json:"product"`
}

type productResource struct {
	ProductName string `json:"product_name"`
	Brands      string `json:"brands"`
}

// Lookup fetches the product for code. A code the database does not know
// yields a Product with Found false and a nil error.
func (r *Resolver) Lookup(ctx context.Context, code string) (Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Product{}, ErrInvalidCode
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	endpoint := r.baseURL + "/" + url.PathEscape(code) + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Product{}, fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Product{Code: code}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Product{}, readErrorResponse(resp)
	}

	var payload productResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return Product{}, fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
	}
	if payload.Status != 1 || payload.Product == nil {
		return Product{Code: code}, nil
	}

	return Product{
		Found: true,
		Code:  code,
		Name:  strings.TrimSpace(payload.Product.ProductName),
		Brand: strings.TrimSpace(payload.Product.Brands),
	}, nil
}

func readErrorResponse(resp *http.Response) error {
	var payload struct {
		StatusVerbose string `json:"status_verbose"`
	}
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := decoder.Decode(&payload); err == nil && payload.StatusVerbose != "" {
		return fmt.Errorf("%w: %s: %s", ErrNetwork, resp.Status, payload.StatusVerbose)
	}
	return fmt.Errorf("%w: %s", ErrNetwork, resp.Status)
}
