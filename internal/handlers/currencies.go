package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

// NewGetCurrenciesHandler lists the supported currency codes
// @Summary List currencies
// @Description Returns every currency code the converter accepts
// @Tags rates
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewGetCurrenciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CacheStatic, models.CurrenciesResponse{
			Currencies: models.SupportedCurrencies(),
		})
	}
}

// RegisterGetCurrenciesHandler registers the currency listing route
func RegisterGetCurrenciesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/currencies", h)
}
