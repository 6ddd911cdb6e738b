// Package conversion implements the pure unit and currency conversion functions.
// Nothing here performs I/O or keeps state.
package conversion

import (
	"math"

	"github.com/sbilibin2017/gw-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-converter/internal/catalog"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

// ConvertUnit converts value from one unit to another within category.
// Both units must belong to the category. Results are not rounded.
func ConvertUnit(value float64, from, to models.Unit, category models.UnitCategory) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, apperrors.NewValidationError("value", "must be a finite number")
	}
	if err := member(category, "from", from); err != nil {
		return 0, err
	}
	if err := member(category, "to", to); err != nil {
		return 0, err
	}
	if from.Symbol == to.Symbol {
		return value, nil
	}

	fromInverse, fromConst := from.Relation.Reciprocal()
	toInverse, toConst := to.Relation.Reciprocal()

	op := string(from.Relation.Kind()) + " to " + string(to.Relation.Kind())
	reference := value * from.Factor
	if fromInverse != toInverse {
		constant, err := reciprocalConstant(from, to, fromConst, toConst)
		if err != nil {
			return 0, err
		}
		if value == 0 {
			return 0, &apperrors.DomainError{Op: op, Reason: "reciprocal of zero is undefined"}
		}
		if reference == 0 || math.IsInf(reference, 0) {
			return 0, &apperrors.DomainError{Op: op, Reason: "value is out of range for a reciprocal conversion"}
		}
		reference = constant / reference
	}

	result := reference / to.Factor
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, &apperrors.DomainError{Op: op, Reason: "result is not representable as float64"}
	}
	return result, nil
}

func member(category models.UnitCategory, field string, u models.Unit) error {
	known, err := catalog.Lookup(category, field, u.Symbol)
	if err != nil {
		return err
	}
	if known != u {
		return apperrors.NewValidationError(field, "unit %q does not match the %s catalog entry", u.Symbol, category.Name)
	}
	return nil
}

// reciprocalConstant picks the constant linking two reciprocal quantities.
// A linear base unit carries no constant and defers to its counterpart.
func reciprocalConstant(from, to models.Unit, fromConst, toConst float64) (float64, error) {
	switch {
	case fromConst != 0 && toConst != 0 && fromConst != toConst:
		return 0, apperrors.NewValidationError("to",
			"cannot convert %s to %s", from.Relation.Kind(), to.Relation.Kind())
	case fromConst != 0:
		return fromConst, nil
	case toConst != 0:
		return toConst, nil
	default:
		return 0, apperrors.NewValidationError("to",
			"no reciprocal relation between %s and %s", from.Relation.Kind(), to.Relation.Kind())
	}
}

// ConvertUnitBySymbol resolves the category and unit symbols in the catalog
// and converts value between them.
func ConvertUnitBySymbol(value float64, fromSymbol, toSymbol, categoryName string) (*models.ConversionResult, error) {
	category, err := catalog.Category(categoryName)
	if err != nil {
		return nil, err
	}
	from, err := catalog.Lookup(category, "from", fromSymbol)
	if err != nil {
		return nil, err
	}
	to, err := catalog.Lookup(category, "to", toSymbol)
	if err != nil {
		return nil, err
	}
	result, err := ConvertUnit(value, from, to, category)
	if err != nil {
		return nil, err
	}
	return &models.ConversionResult{Value: result, Unit: to.Symbol}, nil
}
