package services

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/invoxa/invoxa/internal/core/domain"
	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
)

// CurrencyService exposes the static currency registry: lookup, validation,
// selector options and locale-aware display formatting. The registry is built
// once from domain.SupportedCurrencies and never mutated, so every method is
// safe for concurrent use without locking.
type CurrencyService struct {
	BaseService
	byCode   map[string]domain.Currency
	order    []string
	printers map[string]*message.Printer
}

// NewCurrencyService builds the registry service from the supported currency
// table.
func NewCurrencyService() *CurrencyService {
	s := &CurrencyService{
		byCode:   make(map[string]domain.Currency, len(domain.SupportedCurrencies)),
		order:    make([]string, 0, len(domain.SupportedCurrencies)),
		printers: make(map[string]*message.Printer, len(domain.SupportedCurrencies)),
	}
	for _, cur := range domain.SupportedCurrencies {
		s.byCode[cur.Code] = cur
		s.order = append(s.order, cur.Code)

		tag, err := language.Parse(cur.Locale)
		if err != nil {
			tag = language.English
		}
		s.printers[cur.Code] = message.NewPrinter(tag)
	}
	return s
}

// GetCurrency returns the currency for the given code, case-insensitively.
// Unknown codes fall back to the USD record so display code never has to
// handle a missing currency.
func (s *CurrencyService) GetCurrency(code string) domain.Currency {
	if cur, ok := s.byCode[strings.ToUpper(code)]; ok {
		return cur
	}
	return s.byCode[domain.DefaultCurrencyCode]
}

// FormatCurrency renders an amount with the currency's own symbol and the
// grouping rules of its locale, at the currency's decimal precision. A
// non-finite amount degrades to the symbol with a zero value.
func (s *CurrencyService) FormatCurrency(amount float64, code string) string {
	cur := s.GetCurrency(code)
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return cur.Symbol + "0.00"
	}

	// Round half away from zero before printing: number.Decimal rounds ties
	// to even, which would turn 1234.5 JPY into ¥1,234 instead of ¥1,235.
	pow := math.Pow10(cur.DecimalPlaces)
	amount = math.Round(amount*pow) / pow

	printer := s.printers[cur.Code]
	formatted := printer.Sprint(number.Decimal(amount, number.Scale(cur.DecimalPlaces)))
	return fmt.Sprintf("%s%s", cur.Symbol, formatted)
}

// ValidateCurrencyCode reports whether code names a supported currency,
// case-insensitively.
func (s *CurrencyService) ValidateCurrencyCode(code string) bool {
	_, ok := s.byCode[strings.ToUpper(code)]
	return ok
}

// CurrencyOptions lists all currencies for selector UIs, in registry
// declaration order.
func (s *CurrencyService) CurrencyOptions() []portssvc.CurrencyOption {
	options := make([]portssvc.CurrencyOption, len(s.order))
	for i, code := range s.order {
		cur := s.byCode[code]
		options[i] = portssvc.CurrencyOption{
			Value: cur.Code,
			Label: fmt.Sprintf("%s - %s (%s)", cur.Code, cur.Name, cur.Symbol),
		}
	}
	return options
}

// SupportedCodes lists all registered currency codes in declaration order.
func (s *CurrencyService) SupportedCodes() []string {
	codes := make([]string, len(s.order))
	copy(codes, s.order)
	return codes
}
