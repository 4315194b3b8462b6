// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package market

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

func testClient(baseURL string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:           baseURL,
		Timeout:           2 * time.Second,
		RequestsPerSecond: 1000, // don't throttle tests
	})
}

const chartPayload = `{
	"chart": {
		"result": [{
			"meta": {
				"symbol": "AAPL",
				"shortName": "Apple Inc.",
				"regularMarketPrice": 198.11
			},
			"timestamp": [1700000000, 1700086400, 1700172800],
			"indicators": {"quote": [{"close": [191.45, null, 198.11]}]}
		}],
		"error": null
	}
}`

func TestQuoteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		assert.Equal(t, "1y", r.URL.Query().Get("range"))
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		w.Write([]byte(chartPayload))
	}))
	defer srv.Close()

	quote, err := testClient(srv.URL).Quote(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", quote.Ticker)
	assert.Equal(t, "Apple Inc.", quote.Name)
	assert.Equal(t, 198.11, quote.Price)
	// Null holiday bar is dropped
	require.Len(t, quote.History, 2)
	assert.Equal(t, 191.45, quote.History[0].Close)
	assert.Equal(t, 198.11, quote.History[1].Close)
}

func TestQuoteNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Quote(context.Background(), "ZZZZX")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound), "want ErrNotFound, got %v", err)
}

// A 200 payload with a chart-level error block is still a not-found.
func TestQuoteProviderErrorBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Quote(context.Background(), "DELISTED")
	assert.True(t, errors.Is(err, ErrNotFound))
}

// All-null closes means no daily bar for the window: NotFound per contract.
func TestQuoteNoDailyBars(t *testing.T) {
	payload := `{"chart":{"result":[{"meta":{"symbol":"GHOST"},"timestamp":[1700000000],"indicators":{"quote":[{"close":[null]}]}}],"error":null}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Quote(context.Background(), "GHOST")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestQuoteConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := testClient(srv.URL).Quote(context.Background(), "AAPL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnection), "want ErrConnection, got %v", err)
}

func TestQuoteMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Quote(context.Background(), "AAPL")
	require.Error(t, err)

	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, ErrTypeInvalidResponse, clientErr.Type)
}

func TestQuoteFallsBackToLastClose(t *testing.T) {
	payload := `{"chart":{"result":[{"meta":{"symbol":"XYZ"},"timestamp":[1700000000,1700086400],"indicators":{"quote":[{"close":[10.5, 11.25]}]}}],"error":null}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	quote, err := testClient(srv.URL).Quote(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Equal(t, 11.25, quote.Price)
	assert.Equal(t, "XYZ", quote.Name) // no names in meta
}
