package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoxa/invoxa/internal/core/domain"
	"github.com/invoxa/invoxa/internal/core/ports/providers"
	"github.com/invoxa/invoxa/internal/core/services"
)

// --- Mock ExchangeRateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRates(ctx context.Context, baseCurrency string) (*providers.RateTable, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.RateTable), args.Error(1)
}

// --- Test Suite ---
type CurrencyConverterTestSuite struct {
	suite.Suite
	mockProvider *MockRateProvider
	service      *services.CurrencyConverterService
}

func (suite *CurrencyConverterTestSuite) SetupTest() {
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewCurrencyConverterService(suite.mockProvider, time.Hour)
}

func usdTable() *providers.RateTable {
	return &providers.RateTable{
		Base: "USD",
		Rates: map[string]float64{
			"EUR": 0.9,
			"GBP": 0.8,
			"JPY": 150,
		},
	}
}

// --- Test Cases ---

func (suite *CurrencyConverterTestSuite) TestGetExchangeRate_IdenticalPair() {
	rate := suite.service.GetExchangeRate(context.Background(), "USD", "USD")
	suite.Equal(1.0, rate)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates")
}

func (suite *CurrencyConverterTestSuite) TestGetExchangeRate_FetchesAndCaches() {
	ctx := context.Background()
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(usdTable(), nil).Once()

	rate := suite.service.GetExchangeRate(ctx, "USD", "EUR")
	suite.Equal(0.9, rate)

	// Second lookup inside the TTL is served from the cache.
	rate = suite.service.GetExchangeRate(ctx, "USD", "EUR")
	suite.Equal(0.9, rate)

	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *CurrencyConverterTestSuite) TestGetExchangeRate_NormalizesCase() {
	ctx := context.Background()
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(usdTable(), nil).Once()

	rate := suite.service.GetExchangeRate(ctx, "usd", "eur")
	suite.Equal(0.9, rate)

	// The normalized key is shared with the uppercase form.
	rate = suite.service.GetExchangeRate(ctx, "USD", "EUR")
	suite.Equal(0.9, rate)

	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *CurrencyConverterTestSuite) TestGetExchangeRate_ExpiredEntryRefetches() {
	ctx := context.Background()
	service := services.NewCurrencyConverterService(suite.mockProvider, time.Nanosecond)

	suite.mockProvider.On("FetchRates", ctx, "USD").Return(usdTable(), nil).Twice()

	suite.Equal(0.9, service.GetExchangeRate(ctx, "USD", "EUR"))
	time.Sleep(time.Millisecond)
	suite.Equal(0.9, service.GetExchangeRate(ctx, "USD", "EUR"))

	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *CurrencyConverterTestSuite) TestGetExchangeRate_UsesCachedReversePair() {
	ctx := context.Background()
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(usdTable(), nil).Once()
	suite.mockProvider.On("FetchRates", ctx, "EUR").Return(nil, context.DeadlineExceeded).Once()

	// Prime the forward pair, then ask for the reverse with a dead provider.
	suite.Equal(0.9, suite.service.GetExchangeRate(ctx, "USD", "EUR"))
	rate := suite.service.GetExchangeRate(ctx, "EUR", "USD")
	suite.InDelta(1/0.9, rate, 1e-9)

	// Derived from the cached USD-EUR entry, no second USD fetch.
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *CurrencyConverterTestSuite) TestGetExchangeRate_IdentityFallbackIsNotCached() {
	ctx := context.Background()
	// Only the direct table is fetched. Without a cached reverse pair the
	// provider must not be asked for the reverse table.
	suite.mockProvider.On("FetchRates", ctx, "EUR").Return(nil, context.DeadlineExceeded).Twice()

	suite.Equal(1.0, suite.service.GetExchangeRate(ctx, "EUR", "USD"))

	// The fallback did not poison the cache; the provider is asked again.
	suite.Equal(1.0, suite.service.GetExchangeRate(ctx, "EUR", "USD"))

	suite.mockProvider.AssertExpectations(suite.T())
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates", ctx, "USD")
}

func (suite *CurrencyConverterTestSuite) TestConvertCurrency() {
	ctx := context.Background()
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(usdTable(), nil).Once()

	suite.InDelta(90.0, suite.service.ConvertCurrency(ctx, 100, "USD", "EUR"), 1e-9)
}

func (suite *CurrencyConverterTestSuite) TestConvertCurrency_SameCurrencySkipsProvider() {
	got := suite.service.ConvertCurrency(context.Background(), 123.45, "EUR", "eur")
	suite.Equal(123.45, got)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates")
}

func (suite *CurrencyConverterTestSuite) TestConvertMultipleCurrencies() {
	ctx := context.Background()
	suite.mockProvider.On("FetchRates", ctx, "EUR").Return(&providers.RateTable{
		Base:  "EUR",
		Rates: map[string]float64{"USD": 1.1},
	}, nil)
	suite.mockProvider.On("FetchRates", ctx, "GBP").Return(&providers.RateTable{
		Base:  "GBP",
		Rates: map[string]float64{"USD": 1.25},
	}, nil)

	amounts := []domain.MonetaryAmount{
		{Amount: 100, Currency: "USD"},
		{Amount: 100, Currency: "EUR"},
		{Amount: 100, Currency: "GBP"},
	}

	total := suite.service.ConvertMultipleCurrencies(ctx, amounts, "USD")
	suite.InDelta(100+110+125, total, 1e-9)
}

func (suite *CurrencyConverterTestSuite) TestConvertMultipleCurrencies_Empty() {
	suite.Zero(suite.service.ConvertMultipleCurrencies(context.Background(), nil, "USD"))
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates")
}

func (suite *CurrencyConverterTestSuite) TestClearCache() {
	ctx := context.Background()
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(usdTable(), nil).Twice()

	suite.Equal(0.9, suite.service.GetExchangeRate(ctx, "USD", "EUR"))
	suite.service.ClearCache()
	suite.Equal(0.9, suite.service.GetExchangeRate(ctx, "USD", "EUR"))

	suite.mockProvider.AssertExpectations(suite.T())
}

func TestCurrencyConverterTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyConverterTestSuite))
}
