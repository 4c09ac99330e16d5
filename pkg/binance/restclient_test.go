package binance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != tickerPricePath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// go test -v --run TestGetTickerPrices
func TestGetTickerPrices(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`[{"symbol":"BTCUSDT","price":"100.00"},{"symbol":"ETHUSDT","price":"50.00"}]`)
	client := NewRESTClient(srv.URL, 5*time.Second)

	prices, err := client.GetTickerPrices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []TickerPrice{
		{Symbol: "BTCUSDT", Price: "100.00"},
		{Symbol: "ETHUSDT", Price: "50.00"},
	}, prices)
}

// go test -v --run TestGetTickerPricesEmptyArray
func TestGetTickerPricesEmptyArray(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, ` [] `)
	client := NewRESTClient(srv.URL, 5*time.Second)

	prices, err := client.GetTickerPrices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prices)
}

// go test -v --run TestGetTickerPricesStatusError
func TestGetTickerPricesStatusError(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `{"code":-1000,"msg":"An unknown error occurred."}`)
	client := NewRESTClient(srv.URL, 5*time.Second)

	_, err := client.GetTickerPrices(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, -1000, apiErr.Code)
	assert.Contains(t, err.Error(), "An unknown error occurred.")
}

// go test -v --run TestGetTickerPricesNotArray
func TestGetTickerPricesNotArray(t *testing.T) {
	for _, body := range []string{`{}`, `null`, `"oops"`, ``} {
		t.Run(body, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, body)
			client := NewRESTClient(srv.URL, 5*time.Second)

			_, err := client.GetTickerPrices(context.Background())
			assert.ErrorIs(t, err, ErrNotArray)
		})
	}
}

// go test -v --run TestGetTickerPricesMalformedJSON
func TestGetTickerPricesMalformedJSON(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `[{"symbol":"BTCUSDT",`)
	client := NewRESTClient(srv.URL, 5*time.Second)

	_, err := client.GetTickerPrices(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotArray)
}

// go test -v --run TestGetTickerPricesTimeout
func TestGetTickerPricesTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client := NewRESTClient(srv.URL, 50*time.Millisecond)

	_, err := client.GetTickerPrices(context.Background())
	assert.Error(t, err)
}

// go test -v --run TestGetTickerPricesConnectionRefused
func TestGetTickerPricesConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewRESTClient(url, time.Second)

	_, err := client.GetTickerPrices(context.Background())
	assert.Error(t, err)
}
