package services

import (
	"github.com/sbilibin2017/gw-converter/internal/catalog"
	"github.com/sbilibin2017/gw-converter/internal/conversion"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

// UnitService exposes the static unit catalog.
type UnitService struct{}

// NewUnitService creates a new service instance.
func NewUnitService() *UnitService {
	return &UnitService{}
}

// Categories lists every unit category.
func (svc *UnitService) Categories() []models.UnitCategoryView {
	cats := catalog.Categories()
	views := make([]models.UnitCategoryView, 0, len(cats))
	for _, c := range cats {
		views = append(views, models.NewUnitCategoryView(c))
	}
	return views
}

// Convert converts value between two units of a category.
func (svc *UnitService) Convert(value float64, from, to, category string) (*models.ConversionResult, error) {
	return conversion.ConvertUnitBySymbol(value, from, to, category)
}
