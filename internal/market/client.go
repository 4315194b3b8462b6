// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package market provides the HTTP client for the external quote provider.
//
// The provider exposes a chart endpoint keyed by ticker symbol returning the
// latest close price, a display name, and a trailing year of daily closes.
// One request per question, no retries: a transient failure surfaces as the
// answer for that turn.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeNotFound
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeInvalidResponse
)

// ClientError represents an error from the quote client.
type ClientError struct {
	Type    ErrorType
	Ticker  string
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches two ClientErrors by type so errors.Is works against the
// sentinel values below.
func (e *ClientError) Is(target error) bool {
	other, ok := target.(*ClientError)
	return ok && other.Type == e.Type
}

// Sentinel errors for easy checking.
var (
	ErrNotFound   = &ClientError{Type: ErrTypeNotFound, Message: "ticker not found"}
	ErrConnection = &ClientError{Type: ErrTypeConnection, Message: "quote provider unreachable"}
)

// =============================================================================
// DATA TYPES
// =============================================================================

// Bar is a single day's closing price.
type Bar struct {
	Date  time.Time
	Close float64
}

// Quote is the result of a successful lookup.
type Quote struct {
	Ticker  string
	Name    string
	Price   float64
	History []Bar // trailing year, oldest first
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// maxResponseSize bounds the chart response body (daily bars for a year are
// a few hundred KB at most).
const maxResponseSize = 4 * 1024 * 1024

// ClientConfig holds configuration options for the quote client.
type ClientConfig struct {
	// BaseURL is the provider base URL (default: https://query1.finance.yahoo.com)
	BaseURL string

	// Timeout for quote requests (default: 10s)
	Timeout time.Duration

	// RequestsPerSecond caps outbound requests (default: 2)
	RequestsPerSecond float64
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           "https://query1.finance.yahoo.com",
		Timeout:           10 * time.Second,
		RequestsPerSecond: 2,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client fetches quotes from the provider's chart API.
// Safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a quote client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a quote client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://query1.finance.yahoo.com"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.RequestsPerSecond == 0 {
		config.RequestsPerSecond = 2
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1),
	}
}

// =============================================================================
// WIRE FORMAT
// =============================================================================

// chartResponse mirrors the provider's chart payload. Only the fields the
// assistant consumes are declared.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				LongName           string  `json:"longName"`
				ShortName          string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// =============================================================================
// QUOTE LOOKUP
// =============================================================================

// Quote fetches the latest price and trailing-year daily history for ticker.
//
// Returns ErrNotFound (via errors.Is) when the provider has no data for the
// symbol, a connection-typed ClientError for transport failures, and an
// invalid-response error for malformed payloads.
func (c *Client) Quote(ctx context.Context, ticker string) (*Quote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &ClientError{Type: ErrTypeTimeout, Ticker: ticker, Message: "rate limit wait cancelled", Cause: err}
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=1y&interval=1d", c.config.BaseURL, ticker)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Ticker: ticker, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", "finassist/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &ClientError{Type: ErrTypeTimeout, Ticker: ticker, Message: "quote request timed out", Cause: err}
		}
		return nil, &ClientError{Type: ErrTypeConnection, Ticker: ticker, Message: "quote provider unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &ClientError{Type: ErrTypeNotFound, Ticker: ticker,
			Message: fmt.Sprintf("could not find data for ticker symbol %s", ticker)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{Type: ErrTypeConnection, Ticker: ticker,
			Message: fmt.Sprintf("quote provider returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Ticker: ticker, Message: "failed to read response", Cause: err}
	}

	var parsed chartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Ticker: ticker, Message: "malformed chart response", Cause: err}
	}

	if parsed.Chart.Error != nil || len(parsed.Chart.Result) == 0 {
		return nil, &ClientError{Type: ErrTypeNotFound, Ticker: ticker,
			Message: fmt.Sprintf("could not find data for ticker symbol %s", ticker)}
	}

	result := parsed.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Ticker: ticker, Message: "chart response missing quote data"}
	}

	closes := result.Indicators.Quote[0].Close
	history := make([]Bar, 0, len(closes))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			// Market holidays produce null bars, skip them.
			continue
		}
		history = append(history, Bar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}

	// No daily bar at all means the symbol exists but has no tradable data,
	// which the assistant treats the same as an unknown ticker.
	if len(history) == 0 {
		return nil, &ClientError{Type: ErrTypeNotFound, Ticker: ticker,
			Message: fmt.Sprintf("could not find data for ticker symbol %s", ticker)}
	}

	price := result.Meta.RegularMarketPrice
	if price == 0 {
		price = history[len(history)-1].Close
	}

	name := result.Meta.LongName
	if name == "" {
		name = result.Meta.ShortName
	}
	if name == "" {
		name = ticker
	}

	return &Quote{
		Ticker:  ticker,
		Name:    name,
		Price:   price,
		History: history,
	}, nil
}
