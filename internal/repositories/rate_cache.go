package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-converter/internal/logger"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

// ErrCacheMiss is returned when no rate table is cached under a key.
var ErrCacheMiss = errors.New("rate table not found in cache")

// RateCacheRepository stores rate tables in Redis.
// It is advisory: callers must treat every error as a miss.
type RateCacheRepository struct {
	client *redis.Client
}

// NewRateCacheRepository creates a new repository instance
func NewRateCacheRepository(client *redis.Client) *RateCacheRepository {
	return &RateCacheRepository{client: client}
}

// LatestKey builds the cache key of a latest-rates request.
func LatestKey(base models.CurrencyCode, symbols []models.CurrencyCode) string {
	return fmt.Sprintf("rates:latest:%s:%s", base, models.JoinCurrencies(symbols))
}

// HistoricalKey builds the cache key of a historical-rates request.
func HistoricalKey(date string, base models.CurrencyCode, symbols []models.CurrencyCode) string {
	return fmt.Sprintf("rates:historical:%s:%s:%s", date, base, models.JoinCurrencies(symbols))
}

// Get fetches a cached rate table
func (r *RateCacheRepository) Get(ctx context.Context, key string) (*models.RateTable, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		logger.Log.Warnw("rate cache read failed", "key", key, "error", err)
		return nil, err
	}

	var table models.RateTable
	if err := json.Unmarshal(val, &table); err != nil {
		logger.Log.Warnw("rate cache entry is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("rate cache hit", "key", key, "date", table.Date)
	return &table, nil
}

// Set caches a rate table. A zero ttl keeps the entry until evicted.
func (r *RateCacheRepository) Set(ctx context.Context, key string, table *models.RateTable, ttl time.Duration) error {
	val, err := json.Marshal(table)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, val, ttl).Err()
	logger.Log.Debugw("rate cache write",
		"key", key,
		"ttl", ttl,
		"error", err,
	)
	return err
}
