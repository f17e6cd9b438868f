package ratesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRates_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","date":"2025-06-01","rates":{"EUR":0.9,"GBP":0.8}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	table, err := client.FetchRates(context.Background(), "usd")

	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.Equal(t, "2025-06-01", table.Date)
	assert.Equal(t, 0.9, table.Rates["EUR"])
	assert.Equal(t, 0.8, table.Rates["GBP"])
}

func TestFetchRates_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchRates_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchRates(context.Background(), "USD")
	require.Error(t, err)
}

func TestFetchRates_EmptyTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchRates(context.Background(), "USD")
	require.Error(t, err)
}

func TestFetchRates_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.9}}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	_, err := client.FetchRates(ctx, "USD")
	require.Error(t, err)
}
