package history

import (
	"math"
	"sort"

	"github.com/sbilibin2017/gw-converter/internal/models"
)

// Points extracts the ascending series of finite positive values for target.
func Points(series *models.RateSeries, target models.CurrencyCode) []models.HistoryPoint {
	if series == nil {
		return []models.HistoryPoint{}
	}
	points := make([]models.HistoryPoint, 0, len(series.Rates))
	for date, rates := range series.Rates {
		value, ok := rates[target]
		if !ok || value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		points = append(points, models.HistoryPoint{Date: date, Value: value})
	}
	// YYYY-MM-DD sorts lexically in date order.
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
