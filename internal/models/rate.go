package models

import (
	"time"

	"github.com/sbilibin2017/gw-converter/internal/apperrors"
)

// DateLayout is the provider's calendar date format.
const DateLayout = "2006-01-02"

// RateTable holds rates anchored at one base currency:
// 1 unit of Base = Rates[code] units of code. Base never appears in Rates.
// swagger:model RateTable
type RateTable struct {
	Base  CurrencyCode             `json:"base" example:"USD"`
	Date  string                   `json:"date" example:"2024-01-02"`
	Rates map[CurrencyCode]float64 `json:"rates"`
}

// RateSeries is the normalised provider response for a date range.
type RateSeries struct {
	Base      CurrencyCode
	StartDate string
	EndDate   string
	Rates     map[string]map[CurrencyCode]float64 // date -> code -> rate
}

// HistoryPoint is one published rate of a series
// swagger:model HistoryPoint
type HistoryPoint struct {
	Date  string  `json:"date" example:"2024-01-02"`
	Value float64 `json:"value" example:"0.9123"`
}

// HistoryResponse wraps a rate series for charting
// swagger:model HistoryResponse
type HistoryResponse struct {
	Points []HistoryPoint `json:"points"`
}

// ConversionResult is the outcome of a conversion
// swagger:model ConversionResult
type ConversionResult struct {
	Value float64 `json:"value" example:"92.59"`
	Unit  string  `json:"unit" example:"EUR"`
}

// ErrorResponse is returned for every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: invalid date: "2023-13-01" is not a valid YYYY-MM-DD date
	Error string `json:"error"`
}

// ParseDate validates a strict YYYY-MM-DD calendar date.
func ParseDate(field, s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, apperrors.NewValidationError(field, "%q is not a valid YYYY-MM-DD date", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "%q is not a valid YYYY-MM-DD date", s)
	}
	return t, nil
}

// IsSettledDate reports whether date (YYYY-MM-DD) lies strictly before the UTC
// day of now. Rates for settled dates never change; today's may still be published.
func IsSettledDate(date string, now time.Time) bool {
	return date < now.UTC().Format(DateLayout)
}
