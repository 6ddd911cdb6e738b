package conversion

import (
	"math"

	"github.com/sbilibin2017/gw-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

// ConvertCurrency converts amount between two currencies using a rate table
// anchored at base. Pairs that do not involve base are triangulated through it.
func ConvertCurrency(
	amount float64,
	from, to, base models.CurrencyCode,
	rates map[models.CurrencyCode]float64,
) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, apperrors.NewValidationError("amount", "must be a finite number")
	}
	if from == to {
		return amount, nil
	}

	var missing []string
	lookup := func(code models.CurrencyCode) float64 {
		if code == base {
			return 1
		}
		rate, ok := rates[code]
		if !ok || rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			missing = append(missing, string(code))
			return 0
		}
		return rate
	}

	fromRate := lookup(from)
	toRate := lookup(to)
	if len(missing) > 0 {
		return 0, &apperrors.MissingRateError{Currencies: missing}
	}

	switch {
	case from == base:
		return amount * toRate, nil
	case to == base:
		return amount / fromRate, nil
	default:
		return amount / fromRate * toRate, nil
	}
}
