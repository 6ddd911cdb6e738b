package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

//go:generate mockgen -source=rates.go -destination=mock_rates_test.go -package=handlers

// LatestRatesReader returns the most recent rate table.
type LatestRatesReader interface {
	GetLatestRates(ctx context.Context, base models.CurrencyCode, symbols []models.CurrencyCode) (*models.RateTable, error)
}

// HistoricalRatesReader returns the rate table published on a date.
type HistoricalRatesReader interface {
	GetHistoricalRates(ctx context.Context, date string, base models.CurrencyCode, symbols []models.CurrencyCode) (*models.RateTable, error)
}

// NewGetLatestRatesHandler returns the latest exchange rates
// @Summary Latest rates
// @Description Returns the most recent rates anchored at base
// @Tags rates
// @Produce json
// @Param base query string false "Base currency, defaults to the configured anchor"
// @Param symbols query string false "Comma-separated currency codes to return"
// @Success 200 {object} models.RateTable
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /rates/latest [get]
func NewGetLatestRatesHandler(svc LatestRatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LatestRatesRequest
		if err := bindQuery(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		base, symbols, err := parseBaseAndSymbols(req.Base, req.Symbols)
		if err != nil {
			writeError(w, r, err)
			return
		}

		table, err := svc.GetLatestRates(r.Context(), base, symbols)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, CacheLatest, table)
	}
}

// RegisterGetLatestRatesHandler registers the latest rates route
func RegisterGetLatestRatesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates/latest", h)
}

// NewGetHistoricalRatesHandler returns the rates published on a date
// @Summary Historical rates
// @Description Returns the rates published on date, anchored at base
// @Tags rates
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD format"
// @Param base query string false "Base currency, defaults to the configured anchor"
// @Param symbols query string false "Comma-separated currency codes to return"
// @Success 200 {object} models.RateTable
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /rates/historical [get]
func NewGetHistoricalRatesHandler(svc HistoricalRatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.HistoricalRatesRequest
		if err := bindQuery(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		base, symbols, err := parseBaseAndSymbols(req.Base, req.Symbols)
		if err != nil {
			writeError(w, r, err)
			return
		}

		table, err := svc.GetHistoricalRates(r.Context(), req.Date, base, symbols)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, datedCacheControl(req.Date, time.Now()), table)
	}
}

// RegisterGetHistoricalRatesHandler registers the historical rates route
func RegisterGetHistoricalRatesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates/historical", h)
}

func parseBaseAndSymbols(rawBase, rawSymbols string) (models.CurrencyCode, []models.CurrencyCode, error) {
	var base models.CurrencyCode
	if rawBase != "" {
		code, err := models.ParseCurrencyCode("base", rawBase)
		if err != nil {
			return "", nil, err
		}
		base = code
	}
	symbols, err := models.ParseCurrencyList("symbols", rawSymbols)
	if err != nil {
		return "", nil, err
	}
	return base, symbols, nil
}
