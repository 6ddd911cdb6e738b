package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

//go:generate mockgen -source=convert.go -destination=mock_convert_test.go -package=handlers

// CurrencyConverter converts an amount between currencies.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount float64, from, to models.CurrencyCode, date string) (*models.ConversionResult, error)
}

// UnitConverter converts a value between units of one category.
type UnitConverter interface {
	Convert(value float64, from, to, category string) (*models.ConversionResult, error)
}

// NewConvertCurrencyHandler converts an amount between currencies
// @Summary Convert currency
// @Description Converts amount at the latest rates, or at the rates published on date
// @Tags convert
// @Produce json
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Param amount query number true "Amount in the source currency"
// @Param date query string false "Date in YYYY-MM-DD format"
// @Success 200 {object} models.ConversionResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /convert/currency [get]
func NewConvertCurrencyHandler(svc CurrencyConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CurrencyConversionRequest
		if err := bindQuery(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		from, err := models.ParseCurrencyCode("from", req.From)
		if err != nil {
			writeError(w, r, err)
			return
		}
		to, err := models.ParseCurrencyCode("to", req.To)
		if err != nil {
			writeError(w, r, err)
			return
		}
		amount, err := parseNumber("amount", req.Amount)
		if err != nil {
			writeError(w, r, err)
			return
		}

		res, err := svc.Convert(r.Context(), amount, from, to, req.Date)
		if err != nil {
			writeError(w, r, err)
			return
		}

		cacheControl := CacheLatest
		if req.Date != "" {
			cacheControl = datedCacheControl(req.Date, time.Now())
		}
		writeJSON(w, http.StatusOK, cacheControl, res)
	}
}

// RegisterConvertCurrencyHandler registers the currency conversion route
func RegisterConvertCurrencyHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/convert/currency", h)
}

// NewConvertUnitHandler converts a value between units
// @Summary Convert unit
// @Description Converts value between two units of a catalog category
// @Tags convert
// @Produce json
// @Param category query string true "Unit category, e.g. length"
// @Param from query string true "Source unit symbol"
// @Param to query string true "Target unit symbol"
// @Param value query number true "Value in the source unit"
// @Success 200 {object} models.ConversionResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /convert/unit [get]
func NewConvertUnitHandler(svc UnitConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UnitConversionRequest
		if err := bindQuery(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		value, err := parseNumber("value", req.Value)
		if err != nil {
			writeError(w, r, err)
			return
		}

		res, err := svc.Convert(value, req.From, req.To, req.Category)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, CacheStatic, res)
	}
}

// RegisterConvertUnitHandler registers the unit conversion route
func RegisterConvertUnitHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/convert/unit", h)
}

func parseNumber(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(field, "%q is not a number", s)
	}
	return v, nil
}
