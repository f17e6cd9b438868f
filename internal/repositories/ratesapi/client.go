package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/invoxa/invoxa/internal/core/ports/providers"
)

// requestTimeout bounds one rate table fetch when the caller's context
// carries no tighter deadline.
const requestTimeout = 10 * time.Second

// Client fetches exchange rate tables from an ExchangeRate-API style
// endpoint: GET {baseURL}/{BASE} returns the full table for one base
// currency.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rate API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

var _ providers.ExchangeRateProvider = (*Client)(nil)

// ratesPayload is the provider's wire format.
type ratesPayload struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// FetchRates retrieves the latest rate table for the given base currency.
// Any non-2xx status or malformed body is an error; fallback policy lives in
// the converter, not here.
func (c *Client) FetchRates(ctx context.Context, baseCurrency string) (*providers.RateTable, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, strings.ToUpper(baseCurrency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates for %s: %w", baseCurrency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("rate provider returned status %d for %s", resp.StatusCode, baseCurrency)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate response body: %w", err)
	}

	var payload ratesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rate response for %s contains no rates", baseCurrency)
	}

	return &providers.RateTable{
		Base:  payload.Base,
		Date:  payload.Date,
		Rates: payload.Rates,
	}, nil
}
