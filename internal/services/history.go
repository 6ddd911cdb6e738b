package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-converter/internal/history"
	"github.com/sbilibin2017/gw-converter/internal/logger"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

//go:generate mockgen -source=history.go -destination=mock_history_test.go -package=services

// RangeFetcher fetches every rate published within a date range.
type RangeFetcher interface {
	FetchRange(ctx context.Context, start, end time.Time, base models.CurrencyCode, symbols []models.CurrencyCode) (*models.RateSeries, error)
}

// HistoryService builds trailing rate series for charting.
type HistoryService struct {
	fetcher  RangeFetcher
	windower *history.Windower
}

// NewHistoryService creates a new service instance.
func NewHistoryService(fetcher RangeFetcher, windower *history.Windower) *HistoryService {
	return &HistoryService{fetcher: fetcher, windower: windower}
}

// ParseWindow parses a "days" request parameter.
func (svc *HistoryService) ParseWindow(days string) (history.Window, error) {
	return svc.windower.ParseWindow(days)
}

// BuildHistorySeries returns the value of 1 from in to over the window,
// ascending by date.
func (svc *HistoryService) BuildHistorySeries(
	ctx context.Context,
	from, to models.CurrencyCode,
	window history.Window,
) ([]models.HistoryPoint, error) {
	if from == to {
		return nil, apperrors.NewValidationError("to", "must differ from %s", from)
	}

	start, end, err := svc.windower.Range(window)
	if err != nil {
		return nil, err
	}

	logger.Log.Debugw("building history series",
		"from", from, "to", to, "window", window.String(),
		"start", start.Format(models.DateLayout), "end", end.Format(models.DateLayout))

	series, err := svc.fetcher.FetchRange(ctx, start, end, from, []models.CurrencyCode{to})
	if err != nil {
		return nil, err
	}

	return svc.windower.Series(series, to, window), nil
}
