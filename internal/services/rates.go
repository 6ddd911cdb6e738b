package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-converter/internal/logger"
	"github.com/sbilibin2017/gw-converter/internal/models"
	"github.com/sbilibin2017/gw-converter/internal/repositories"
)

//go:generate mockgen -source=rates.go -destination=mock_rates_test.go -package=services

// RatesFetcher fetches rate tables from the upstream provider.
type RatesFetcher interface {
	FetchLatestRates(ctx context.Context, base models.CurrencyCode, symbols []models.CurrencyCode) (*models.RateTable, error)
	FetchHistoricalRates(ctx context.Context, date string, base models.CurrencyCode, symbols []models.CurrencyCode) (*models.RateTable, error)
}

// RatesCache stores rate tables. Any error is treated as a miss.
type RatesCache interface {
	Get(ctx context.Context, key string) (*models.RateTable, error)
	Set(ctx context.Context, key string, table *models.RateTable, ttl time.Duration) error
}

// RateService serves rate tables, consulting an optional cache first.
type RateService struct {
	fetcher       RatesFetcher
	cache         RatesCache
	defaultBase   models.CurrencyCode
	latestTTL     time.Duration
	historicalTTL time.Duration
	now           func() time.Time
}

// NewRateService creates a new service instance. cache may be nil.
func NewRateService(
	fetcher RatesFetcher,
	cache RatesCache,
	defaultBase models.CurrencyCode,
	latestTTL, historicalTTL time.Duration,
) *RateService {
	return &RateService{
		fetcher:       fetcher,
		cache:         cache,
		defaultBase:   defaultBase,
		latestTTL:     latestTTL,
		historicalTTL: historicalTTL,
		now:           time.Now,
	}
}

// DefaultBase returns the anchor currency used when a request names none.
func (svc *RateService) DefaultBase() models.CurrencyCode {
	return svc.defaultBase
}

// GetLatestRates returns the latest rates for base.
func (svc *RateService) GetLatestRates(
	ctx context.Context,
	base models.CurrencyCode,
	symbols []models.CurrencyCode,
) (*models.RateTable, error) {
	if base == "" {
		base = svc.defaultBase
	}
	key := repositories.LatestKey(base, symbols)
	return svc.cached(ctx, key, svc.latestTTL, func() (*models.RateTable, error) {
		return svc.fetcher.FetchLatestRates(ctx, base, symbols)
	})
}

// GetHistoricalRates returns the rates published on date.
func (svc *RateService) GetHistoricalRates(
	ctx context.Context,
	date string,
	base models.CurrencyCode,
	symbols []models.CurrencyCode,
) (*models.RateTable, error) {
	if base == "" {
		base = svc.defaultBase
	}
	// Malformed dates fail before the cache is consulted.
	if _, err := models.ParseDate("date", date); err != nil {
		return nil, err
	}
	// Today's table is not final yet.
	ttl := svc.latestTTL
	if models.IsSettledDate(date, svc.now()) {
		ttl = svc.historicalTTL
	}
	key := repositories.HistoricalKey(date, base, symbols)
	return svc.cached(ctx, key, ttl, func() (*models.RateTable, error) {
		return svc.fetcher.FetchHistoricalRates(ctx, date, base, symbols)
	})
}

func (svc *RateService) cached(
	ctx context.Context,
	key string,
	ttl time.Duration,
	fetch func() (*models.RateTable, error),
) (*models.RateTable, error) {
	if svc.cache != nil {
		if table, err := svc.cache.Get(ctx, key); err == nil && table != nil {
			return table, nil
		}
	}

	table, err := fetch()
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, key, table, ttl); err != nil {
			logger.Log.Warnw("failed to cache rate table", "key", key, "error", err)
		}
	}
	return table, nil
}
