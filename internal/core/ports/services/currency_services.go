package services

import (
	"context"

	"github.com/invoxa/invoxa/internal/core/domain"
)

// CurrencyOption is a presentation entry for currency selector UIs.
type CurrencyOption struct {
	Value string `json:"value"` // "USD"
	Label string `json:"label"` // "USD - US Dollar ($)"
}

// CurrencyRegistrySvc exposes the static currency registry. Lookups never
// fail: an unknown code falls back to the USD record.
type CurrencyRegistrySvc interface {
	// GetCurrency returns the currency for the given code, case-insensitively.
	GetCurrency(code string) domain.Currency

	// FormatCurrency renders an amount with the currency's own symbol and
	// locale-appropriate grouping, e.g. "€1.234,50" or "¥1,235".
	FormatCurrency(amount float64, code string) string

	// ValidateCurrencyCode reports whether code is a known 3-letter code.
	ValidateCurrencyCode(code string) bool

	// CurrencyOptions lists all currencies for selector UIs, in registry
	// declaration order.
	CurrencyOptions() []CurrencyOption

	// SupportedCodes lists all registered currency codes in declaration order.
	SupportedCodes() []string
}

// CurrencyConverterSvc converts monetary amounts between currencies through a
// time-boxed in-memory rate cache backed by an external provider.
//
// Conversion never fails: on provider failure the converter degrades to a
// reverse-derived rate or, as a last resort, the identity rate 1, logging a
// warning. This trades correctness for availability; acceptable for a
// reporting dashboard, never for settlement.
type CurrencyConverterSvc interface {
	// GetExchangeRate resolves the effective rate for a directed pair.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) float64

	// ConvertCurrency converts a single amount.
	ConvertCurrency(ctx context.Context, amount float64, fromCode, toCode string) float64

	// ConvertMultipleCurrencies converts each amount to the target currency
	// concurrently and returns the sum.
	ConvertMultipleCurrencies(ctx context.Context, amounts []domain.MonetaryAmount, targetCode string) float64

	// ClearCache empties the whole rate cache.
	ClearCache()
}
