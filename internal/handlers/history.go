package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-converter/internal/history"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

//go:generate mockgen -source=history.go -destination=mock_history_test.go -package=handlers

// DefaultHistoryDays is used when the days parameter is omitted.
const DefaultHistoryDays = "30"

// HistorySeriesBuilder builds a windowed rate series.
type HistorySeriesBuilder interface {
	ParseWindow(days string) (history.Window, error)
	BuildHistorySeries(ctx context.Context, from, to models.CurrencyCode, window history.Window) ([]models.HistoryPoint, error)
}

// NewGetHistoryHandler returns the rate history of a currency pair
// @Summary Rate history
// @Description Returns the value of 1 from in to over a trailing window, ascending by date
// @Tags rates
// @Produce json
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Param days query string false "Trailing day count or \"all\"" default(30)
// @Success 200 {object} models.HistoryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /rates/history [get]
func NewGetHistoryHandler(svc HistorySeriesBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.HistoryRequest
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

		days := req.Days
		if days == "" {
			days = DefaultHistoryDays
		}
		window, err := svc.ParseWindow(days)
		if err != nil {
			writeError(w, r, err)
			return
		}

		points, err := svc.BuildHistorySeries(r.Context(), from, to, window)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if points == nil {
			points = []models.HistoryPoint{}
		}

		writeJSON(w, http.StatusOK, CacheLatest, models.HistoryResponse{Points: points})
	}
}

// RegisterGetHistoryHandler registers the rate history route
func RegisterGetHistoryHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates/history", h)
}
