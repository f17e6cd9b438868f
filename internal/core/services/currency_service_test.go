package services_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/invoxa/invoxa/internal/core/domain"
	"github.com/invoxa/invoxa/internal/core/services"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	service *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.service = services.NewCurrencyService()
}

func (suite *CurrencyServiceTestSuite) TestGetCurrency_KnownCode() {
	cur := suite.service.GetCurrency("EUR")
	suite.Equal("EUR", cur.Code)
	suite.Equal("€", cur.Symbol)
	suite.Equal(2, cur.DecimalPlaces)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrency_CaseInsensitive() {
	cur := suite.service.GetCurrency("gbp")
	suite.Equal("GBP", cur.Code)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrency_UnknownFallsBackToUSD() {
	cur := suite.service.GetCurrency("XYZ")
	suite.Equal(domain.DefaultCurrencyCode, cur.Code)
	suite.Equal("$", cur.Symbol)
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_USD() {
	suite.Equal("$1,234.50", suite.service.FormatCurrency(1234.5, "USD"))
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_EURUsesGermanGrouping() {
	suite.Equal("€1.234,56", suite.service.FormatCurrency(1234.56, "EUR"))
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_JPYHasNoDecimals() {
	suite.Equal("¥1,235", suite.service.FormatCurrency(1234.56, "JPY"))
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_TiesRoundAwayFromZero() {
	suite.Equal("¥1,235", suite.service.FormatCurrency(1234.5, "JPY"))
	suite.Equal("¥1,234", suite.service.FormatCurrency(1234.4, "JPY"))
	suite.Equal("$0.13", suite.service.FormatCurrency(0.125, "USD"))
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_NaNDegradesToZero() {
	suite.Equal("€0.00", suite.service.FormatCurrency(math.NaN(), "EUR"))
	suite.Equal("$0.00", suite.service.FormatCurrency(math.Inf(1), "USD"))
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_UnknownCurrencyFormatsAsUSD() {
	suite.Equal("$42.00", suite.service.FormatCurrency(42, "XYZ"))
}

func (suite *CurrencyServiceTestSuite) TestValidateCurrencyCode() {
	suite.True(suite.service.ValidateCurrencyCode("USD"))
	suite.True(suite.service.ValidateCurrencyCode("usd"))
	suite.False(suite.service.ValidateCurrencyCode("US"))
	suite.False(suite.service.ValidateCurrencyCode(""))
	suite.False(suite.service.ValidateCurrencyCode("XYZ"))
}

func (suite *CurrencyServiceTestSuite) TestCurrencyOptions_DeclarationOrder() {
	options := suite.service.CurrencyOptions()
	suite.Require().Len(options, len(domain.SupportedCurrencies))
	suite.Equal("USD", options[0].Value)
	suite.Equal("USD - US Dollar ($)", options[0].Label)
	suite.Equal("EUR", options[1].Value)
	suite.Equal("MXN", options[len(options)-1].Value)
}

func (suite *CurrencyServiceTestSuite) TestSupportedCodes() {
	codes := suite.service.SupportedCodes()
	suite.Require().Len(codes, len(domain.SupportedCurrencies))
	suite.Equal("USD", codes[0])

	// Mutating the returned slice must not affect the registry.
	codes[0] = "ZZZ"
	suite.Equal("USD", suite.service.SupportedCodes()[0])
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
