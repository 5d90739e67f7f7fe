package barcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewResolver(Options{BaseURL: server.URL + "/api/v0/product/"})
}

func TestLookupFound(t *testing.T) {
	var gotPath string
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":1,"product":{"product_name":" Nutella ","brands":"Ferrero"}}`))
	})

	product, err := resolver.Lookup(context.Background(), " 3017620422003 ")
	require.NoError(t, err)

	assert.Equal(t, "/api/v0/product/3017620422003.json", gotPath)
	assert.Equal(t, Product{Found: true, Code: "3017620422003", Name: "Nutella", Brand: "Ferrero"}, product)
}

func TestLookupNotFound(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "status zero",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":0,"status_verbose":"product not found"}`))
			},
		},
		{
			name: "status one without product",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":1}`))
			},
		},
		{
			name: "http 404",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := newTestResolver(t, tc.handler)

			product, err := resolver.Lookup(context.Background(), "0000")
			require.NoError(t, err)
			assert.False(t, product.Found)
			assert.Equal(t, "0000", product.Code)
		})
	}
}

func TestLookupServerError(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status_verbose":"database unavailable"}`))
	})

	_, err := resolver.Lookup(context.Background(), "123")
	require.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestLookupMalformedBody(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})

	_, err := resolver.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestLookupTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	resolver := NewResolver(Options{BaseURL: baseURL, Timeout: time.Second})
	_, err := resolver.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestLookupBlankCode(t *testing.T) {
	resolver := NewResolver(Options{})

	_, err := resolver.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestNewResolverDefaults(t *testing.T) {
	resolver := NewResolver(Options{})

	assert.Equal(t, DefaultBaseURL, resolver.baseURL)
	assert.Equal(t, DefaultTimeout, resolver.timeout)
	assert.Equal(t, DefaultTimeout, resolver.client.Timeout)
}
