package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"

	"github.com/sbilibin2017/gw-converter/internal/facades"
	"github.com/sbilibin2017/gw-converter/internal/handlers"
	"github.com/sbilibin2017/gw-converter/internal/history"
	"github.com/sbilibin2017/gw-converter/internal/logger"
	"github.com/sbilibin2017/gw-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-converter/internal/models"
	"github.com/sbilibin2017/gw-converter/internal/repositories"
	"github.com/sbilibin2017/gw-converter/internal/services"

	"github.com/sbilibin2017/gw-converter/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	RateLimit string // e.g. "100-M"; empty disables limiting

	RatesAPIURL      string
	RatesAPITimeout  time.Duration
	RatesDefaultBase models.CurrencyCode

	History history.Config

	RedisHost          string // Empty disables the cache
	RedisPort          int
	RedisDB            int
	RedisPassword      string
	RedisPoolSize      int
	RedisMinIdleConns  int
	RedisLatestExp     time.Duration
	RedisHistoricalExp time.Duration
}

// @title gw-converter API
// @version 1.0.0
// @description Unit conversion and currency exchange-rate service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, rate provider, history, and Redis configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.RateLimit = getEnv("APP_RATE_LIMIT", "")
	if cfg.RateLimit != "" {
		if _, err = limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
			return cfg, fmt.Errorf("APP_RATE_LIMIT: %w", err)
		}
	}

	// Rate provider config
	cfg.RatesAPIURL = getEnv("RATES_API_URL", "https://api.frankfurter.app")
	timeout, err := getInt("RATES_API_TIMEOUT_SECOND", "10")
	if err != nil {
		return cfg, err
	}
	cfg.RatesAPITimeout = time.Duration(timeout) * time.Second
	if cfg.RatesDefaultBase, err = models.ParseCurrencyCode("RATES_DEFAULT_BASE", getEnv("RATES_DEFAULT_BASE", "USD")); err != nil {
		return cfg, err
	}

	// History config
	cfg.History = history.DefaultConfig()
	if cfg.History.MaxDays, err = getInt("HISTORY_MAX_DAYS", strconv.Itoa(cfg.History.MaxDays)); err != nil {
		return cfg, err
	}
	if cfg.History.BufferDays, err = getInt("HISTORY_BUFFER_DAYS", strconv.Itoa(cfg.History.BufferDays)); err != nil {
		return cfg, err
	}
	if cfg.History.AllThresholdDays, err = getInt("HISTORY_ALL_THRESHOLD_DAYS", strconv.Itoa(cfg.History.AllThresholdDays)); err != nil {
		return cfg, err
	}
	earliest := getEnv("HISTORY_EARLIEST_DATE", cfg.History.EarliestDate.Format(models.DateLayout))
	if cfg.History.EarliestDate, err = models.ParseDate("HISTORY_EARLIEST_DATE", earliest); err != nil {
		return cfg, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return cfg, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return cfg, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return cfg, err
	}
	latestExp, err := getInt("REDIS_LATEST_EXP_SECOND", "60")
	if err != nil {
		return cfg, err
	}
	cfg.RedisLatestExp = time.Duration(latestExp) * time.Second
	historicalExp, err := getInt("REDIS_HISTORICAL_EXP_SECOND", "0")
	if err != nil {
		return cfg, err
	}
	cfg.RedisHistoricalExp = time.Duration(historicalExp) * time.Second

	return cfg, nil
}

// newRouter wires services into handlers under /api/v1. A nil lim disables rate limiting.
func newRouter(
	cfg config,
	lim *limiter.Limiter,
	rateSvc *services.RateService,
	exchangeSvc *services.ExchangeService,
	historySvc *services.HistoryService,
	unitSvc *services.UnitService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		if lim != nil {
			r.Use(middlewares.RateLimitMiddleware(lim, logger.Log))
		}
		handlers.RegisterGetCurrenciesHandler(r, handlers.NewGetCurrenciesHandler())
		handlers.RegisterGetLatestRatesHandler(r, handlers.NewGetLatestRatesHandler(rateSvc))
		handlers.RegisterGetHistoricalRatesHandler(r, handlers.NewGetHistoricalRatesHandler(rateSvc))
		handlers.RegisterGetHistoryHandler(r, handlers.NewGetHistoryHandler(historySvc))
		handlers.RegisterConvertCurrencyHandler(r, handlers.NewConvertCurrencyHandler(exchangeSvc))
		handlers.RegisterGetUnitsHandler(r, handlers.NewGetUnitsHandler(unitSvc))
		handlers.RegisterConvertUnitHandler(r, handlers.NewConvertUnitHandler(unitSvc))
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, optional Redis cache, rate provider client, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Redis is optional; without it every request reaches the provider.
	var cache services.RatesCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, caching disabled", "error", err)
		} else {
			cache = repositories.NewRateCacheRepository(rdb)
			logger.Log.Infof("Rate cache connected to %s:%d", cfg.RedisHost, cfg.RedisPort)
		}
	}

	// Initialize facades
	ratesFacade := facades.NewRatesHTTPFacade(
		facades.NewRatesHTTPClient(cfg.RatesAPITimeout),
		cfg.RatesAPIURL,
		cfg.RatesDefaultBase,
	)

	// Initialize services
	rateSvc := services.NewRateService(
		ratesFacade, cache, cfg.RatesDefaultBase,
		cfg.RedisLatestExp, cfg.RedisHistoricalExp,
	)
	exchangeSvc := services.NewExchangeService(rateSvc, rateSvc.DefaultBase())
	historySvc := services.NewHistoryService(ratesFacade, history.NewWindower(cfg.History, nil))
	unitSvc := services.NewUnitService()

	var lim *limiter.Limiter
	if cfg.RateLimit != "" {
		var err error
		if lim, err = middlewares.NewMemoryLimiter(cfg.RateLimit); err != nil {
			return err
		}
		logger.Log.Infof("Rate limit %s per client", cfg.RateLimit)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, lim, rateSvc, exchangeSvc, historySvc, unitSvc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
