package services

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/invoxa/invoxa/internal/core/domain"
	"github.com/invoxa/invoxa/internal/core/ports/providers"
)

// CurrencyConverterService converts amounts between currencies through an
// in-memory exchange rate cache backed by an external rate provider.
//
// Cached entries are keyed "FROM-TO" and live for the configured TTL; a stale
// entry is refreshed in place, and concurrent refreshes of the same pair are
// collapsed into one provider call. When the provider cannot supply a direct
// rate the service derives one from the reverse pair, and when that also
// fails it degrades to the identity rate 1 with a warning instead of failing
// the caller. The identity fallback is never cached, so the next request
// retries the provider.
type CurrencyConverterService struct {
	BaseService
	provider providers.ExchangeRateProvider
	ttl      time.Duration

	mu    sync.RWMutex
	cache map[string]domain.ExchangeRate

	group singleflight.Group
}

// NewCurrencyConverterService creates a converter over the given provider
// with the given cache TTL.
func NewCurrencyConverterService(provider providers.ExchangeRateProvider, ttl time.Duration) *CurrencyConverterService {
	return &CurrencyConverterService{
		provider: provider,
		ttl:      ttl,
		cache:    make(map[string]domain.ExchangeRate),
	}
}

// GetExchangeRate resolves the effective rate for a directed pair. An
// identical pair is always 1; otherwise the cache is consulted first and the
// provider only on a miss or an expired entry.
func (s *CurrencyConverterService) GetExchangeRate(ctx context.Context, fromCode, toCode string) float64 {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if fromCode == toCode {
		return 1
	}

	key := fromCode + "-" + toCode

	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if ok && entry.Valid(time.Now(), s.ttl) {
		return entry.Rate
	}

	// Collapse concurrent refreshes of the same pair into one provider call.
	rate, _, _ := s.group.Do(key, func() (any, error) {
		s.mu.RLock()
		entry, ok := s.cache[key]
		s.mu.RUnlock()
		if ok && entry.Valid(time.Now(), s.ttl) {
			return entry.Rate, nil
		}
		return s.fetchRate(ctx, fromCode, toCode), nil
	})
	return rate.(float64)
}

// fetchRate resolves a fresh rate: direct table first, then a still-valid
// cached reverse pair, then the identity fallback. Successful lookups are
// cached; the fallback is not.
func (s *CurrencyConverterService) fetchRate(ctx context.Context, fromCode, toCode string) float64 {
	table, err := s.provider.FetchRates(ctx, fromCode)
	if err == nil {
		if rate, ok := table.Rates[toCode]; ok && rate > 0 {
			s.store(fromCode, toCode, rate)
			return rate
		}
		s.LogWarn(ctx, "Rate table is missing the target currency",
			slog.String("from", fromCode), slog.String("to", toCode))
	} else {
		s.LogWarn(ctx, "Failed to fetch exchange rates",
			slog.String("from", fromCode), slog.String("to", toCode),
			slog.String("error", err.Error()))
	}

	// Derive from a still-valid cached reverse entry before giving up. No
	// extra provider call is made for the reverse table.
	s.mu.RLock()
	rev, ok := s.cache[toCode+"-"+fromCode]
	s.mu.RUnlock()
	if ok && rev.Valid(time.Now(), s.ttl) && rev.Rate > 0 {
		derived := 1 / rev.Rate
		s.store(fromCode, toCode, derived)
		return derived
	}

	s.LogWarn(ctx, "No exchange rate available, using identity rate",
		slog.String("from", fromCode), slog.String("to", toCode))
	return 1
}

func (s *CurrencyConverterService) store(fromCode, toCode string, rate float64) {
	s.mu.Lock()
	s.cache[fromCode+"-"+toCode] = domain.ExchangeRate{
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             rate,
		FetchedAt:        time.Now(),
	}
	s.mu.Unlock()
}

// ConvertCurrency converts a single amount. A non-finite amount converts to 0.
func (s *CurrencyConverterService) ConvertCurrency(ctx context.Context, amount float64, fromCode, toCode string) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	if strings.EqualFold(fromCode, toCode) {
		return amount
	}
	return amount * s.GetExchangeRate(ctx, fromCode, toCode)
}

// ConvertMultipleCurrencies converts each amount to the target currency
// concurrently and returns the sum. Per-item failures have already degraded
// inside ConvertCurrency, so the sum is always defined.
func (s *CurrencyConverterService) ConvertMultipleCurrencies(ctx context.Context, amounts []domain.MonetaryAmount, targetCode string) float64 {
	if len(amounts) == 0 {
		return 0
	}

	converted := make([]float64, len(amounts))
	var wg sync.WaitGroup
	for i, item := range amounts {
		wg.Add(1)
		go func(i int, item domain.MonetaryAmount) {
			defer wg.Done()
			converted[i] = s.ConvertCurrency(ctx, item.Amount, item.Currency, targetCode)
		}(i, item)
	}
	wg.Wait()

	var total float64
	for _, v := range converted {
		total += v
	}
	return total
}

// ClearCache empties the whole rate cache. There is no per-entry eviction;
// entries otherwise expire in place via the TTL check.
func (s *CurrencyConverterService) ClearCache() {
	s.mu.Lock()
	s.cache = make(map[string]domain.ExchangeRate)
	s.mu.Unlock()
}
