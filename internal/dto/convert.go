package dto

import (
	"time"

	"github.com/invoxa/invoxa/internal/core/domain"
)

// ConvertItem is one amount/currency pair in a batch conversion.
type ConvertItem struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"required,currencycode"`
}

// ConvertRequest is the conversion payload. Either the single-conversion
// fields (amount, fromCurrency, toCurrency) or the batch fields
// (amounts, toCurrency) must be provided.
type ConvertRequest struct {
	Amount       *float64      `json:"amount" binding:"omitempty,gte=0"`
	FromCurrency string        `json:"fromCurrency" binding:"omitempty,currencycode"`
	ToCurrency   string        `json:"toCurrency" binding:"required,currencycode"`
	Amounts      []ConvertItem `json:"amounts" binding:"omitempty,dive"`
}

// ConvertResponse is the result of a single conversion.
type ConvertResponse struct {
	OriginalAmount  float64   `json:"originalAmount"`
	FromCurrency    string    `json:"fromCurrency"`
	ToCurrency      string    `json:"toCurrency"`
	ConvertedAmount float64   `json:"convertedAmount"`
	Timestamp       time.Time `json:"timestamp"`
}

// BatchConvertResponse is the result of a batch conversion: each input pair
// plus the sum of all converted amounts in the target currency.
type BatchConvertResponse struct {
	Amounts        []domain.MonetaryAmount `json:"amounts"`
	ToCurrency     string                  `json:"toCurrency"`
	TotalConverted float64                 `json:"totalConverted"`
	Timestamp      time.Time               `json:"timestamp"`
}
