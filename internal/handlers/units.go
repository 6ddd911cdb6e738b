package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

//go:generate mockgen -source=units.go -destination=mock_units_test.go -package=handlers

// UnitCatalogReader lists the unit catalog.
type UnitCatalogReader interface {
	Categories() []models.UnitCategoryView
}

// NewGetUnitsHandler lists the unit catalog
// @Summary List units
// @Description Returns every unit category with its units and relation kinds
// @Tags convert
// @Produce json
// @Success 200 {object} models.UnitCategoriesResponse
// @Router /units [get]
func NewGetUnitsHandler(svc UnitCatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CacheStatic, models.UnitCategoriesResponse{
			Categories: svc.Categories(),
		})
	}
}

// RegisterGetUnitsHandler registers the unit catalog route
func RegisterGetUnitsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/units", h)
}
