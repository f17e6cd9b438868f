package providers

import "context"

// RateTable is an exchange rate table for one base currency: target currency
// code to multiplicative rate.
type RateTable struct {
	Base  string
	Date  string
	Rates map[string]float64
}

// ExchangeRateProvider is the outbound port to an external exchange rate API.
// Implementations return an error for any non-2xx response or malformed body;
// the caller owns all fallback behavior.
type ExchangeRateProvider interface {
	// FetchRates retrieves the latest rate table for the given base currency.
	FetchRates(ctx context.Context, baseCurrency string) (*RateTable, error)
}
