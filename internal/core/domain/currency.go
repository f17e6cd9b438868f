package domain

// DefaultCurrencyCode is the reporting currency used when a company has none
// configured and the API default when a request leaves the currency unset.
const DefaultCurrencyCode = "USD"

// Currency describes a supported currency: its ISO 4217 code, display
// information and formatting precision. Currencies are statically defined,
// immutable, and unique by code.
type Currency struct {
	Code          string `json:"code"`   // 3-letter ISO code, e.g. "USD"
	Name          string `json:"name"`   // e.g. "US Dollar"
	Symbol        string `json:"symbol"` // e.g. "$", "A$", "kr"
	Locale        string `json:"locale"` // BCP 47 tag used for number grouping, e.g. "de-DE"
	DecimalPlaces int    `json:"decimalPlaces"`
}

// SupportedCurrencies is the registry source table, in declaration order.
// The symbol column is authoritative for display: regional dollar variants
// keep their distinguishing prefix (A$, C$, NZ$, ...) instead of a generic $.
var SupportedCurrencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Locale: "en-US", DecimalPlaces: 2},
	{Code: "EUR", Name: "Euro", Symbol: "€", Locale: "de-DE", DecimalPlaces: 2},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Locale: "en-GB", DecimalPlaces: 2},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Locale: "en-CA", DecimalPlaces: 2},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Locale: "en-AU", DecimalPlaces: 2},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Locale: "ja-JP", DecimalPlaces: 0},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Locale: "de-CH", DecimalPlaces: 2},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr", Locale: "sv-SE", DecimalPlaces: 2},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", Locale: "nb-NO", DecimalPlaces: 2},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr", Locale: "da-DK", DecimalPlaces: 2},
	{Code: "PLN", Name: "Polish Złoty", Symbol: "zł", Locale: "pl-PL", DecimalPlaces: 2},
	{Code: "CZK", Name: "Czech Koruna", Symbol: "Kč", Locale: "cs-CZ", DecimalPlaces: 2},
	{Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft", Locale: "hu-HU", DecimalPlaces: 0},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Locale: "en-IN", DecimalPlaces: 2},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", Locale: "en-SG", DecimalPlaces: 2},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$", Locale: "en-HK", DecimalPlaces: 2},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", Locale: "en-NZ", DecimalPlaces: 2},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R", Locale: "en-ZA", DecimalPlaces: 2},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Locale: "pt-BR", DecimalPlaces: 2},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$", Locale: "es-MX", DecimalPlaces: 2},
}

// MonetaryAmount pairs an amount with the currency it is denominated in.
// It is transient: never stored without its currency.
type MonetaryAmount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
