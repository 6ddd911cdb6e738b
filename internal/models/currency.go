package models

import (
	"strings"

	"github.com/sbilibin2017/gw-converter/internal/apperrors"
)

// CurrencyCode is an ISO 4217 code from the supported set.
type CurrencyCode string

// Supported currency codes
const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	JPY CurrencyCode = "JPY"
	CHF CurrencyCode = "CHF"
	CAD CurrencyCode = "CAD"
	AUD CurrencyCode = "AUD"
	CNY CurrencyCode = "CNY"
	INR CurrencyCode = "INR"
	BRL CurrencyCode = "BRL"
	MXN CurrencyCode = "MXN"
	SEK CurrencyCode = "SEK"
)

var supportedCurrencies = [...]CurrencyCode{USD, EUR, GBP, JPY, CHF, CAD, AUD, CNY, INR, BRL, MXN, SEK}

// SupportedCurrencies returns the supported codes in display order.
func SupportedCurrencies() []CurrencyCode {
	codes := make([]CurrencyCode, len(supportedCurrencies))
	copy(codes, supportedCurrencies[:])
	return codes
}

// IsSupported reports whether c belongs to the supported set.
func (c CurrencyCode) IsSupported() bool {
	for _, s := range supportedCurrencies {
		if s == c {
			return true
		}
	}
	return false
}

// ParseCurrencyCode parses a case-insensitive currency code.
func ParseCurrencyCode(field, s string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if code == "" {
		return "", apperrors.NewValidationError(field, "currency code is required")
	}
	if !code.IsSupported() {
		return "", apperrors.NewValidationError(field, "unsupported currency code %q", s)
	}
	return code, nil
}

// ParseCurrencyList parses a comma-separated list of currency codes.
// An empty string yields a nil slice. Duplicates are dropped.
func ParseCurrencyList(field, s string) ([]CurrencyCode, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var codes []CurrencyCode
	seen := make(map[CurrencyCode]bool)
	for _, part := range strings.Split(s, ",") {
		code, err := ParseCurrencyCode(field, part)
		if err != nil {
			return nil, err
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes, nil
}

// JoinCurrencies joins codes with commas, as the provider expects.
func JoinCurrencies(codes []CurrencyCode) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

// CurrenciesResponse lists the supported currency codes
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Currencies []CurrencyCode `json:"currencies"`
}
