package domain

import "time"

// ExchangeRate is a cached conversion rate for a directed currency pair.
// Entries live only in process memory; they are overwritten on refresh and
// removed only by a full cache clear.
type ExchangeRate struct {
	FromCurrencyCode string    `json:"fromCurrencyCode"`
	ToCurrencyCode   string    `json:"toCurrencyCode"`
	Rate             float64   `json:"rate"`
	FetchedAt        time.Time `json:"fetchedAt"`
}

// Valid reports whether the entry is still within its time-to-live at the
// given instant.
func (r ExchangeRate) Valid(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.FetchedAt) < ttl
}
