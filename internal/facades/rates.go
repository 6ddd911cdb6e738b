package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-converter/internal/logger"
	"github.com/sbilibin2017/gw-converter/internal/models"
	"github.com/tidwall/gjson"
)

// ErrInvalidResponse is wrapped by UpstreamError when the provider body cannot be used.
var ErrInvalidResponse = errors.New("invalid provider response")

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// HTTPDoer sends HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RatesHTTPFacade fetches daily rates from a Frankfurter-compatible provider.
// Every call issues exactly one request and never retries.
type RatesHTTPFacade struct {
	client      HTTPDoer
	baseURL     string
	defaultBase models.CurrencyCode
	now         func() time.Time
}

// NewRatesHTTPFacade creates a facade for the provider at baseURL.
func NewRatesHTTPFacade(client HTTPDoer, baseURL string, defaultBase models.CurrencyCode) *RatesHTTPFacade {
	return &RatesHTTPFacade{
		client:      client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		defaultBase: defaultBase,
		now:         time.Now,
	}
}

// NewRatesHTTPClient returns an *http.Client with the given timeout.
func NewRatesHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// FetchLatestRates returns the most recent published rates for base.
// An empty base uses the default currency; nil symbols returns every supported currency.
func (f *RatesHTTPFacade) FetchLatestRates(
	ctx context.Context,
	base models.CurrencyCode,
	symbols []models.CurrencyCode,
) (*models.RateTable, error) {
	base, err := f.resolveBase(base, symbols)
	if err != nil {
		return nil, err
	}

	body, err := f.get(ctx, "/latest", base, symbols)
	if err != nil {
		logger.Log.Errorw("failed to fetch latest rates", "base", base, "error", err)
		return nil, err
	}
	return parseTable(body, base, symbols)
}

// FetchHistoricalRates returns the rates published for date (YYYY-MM-DD).
// Malformed or future dates fail before any request is made.
func (f *RatesHTTPFacade) FetchHistoricalRates(
	ctx context.Context,
	date string,
	base models.CurrencyCode,
	symbols []models.CurrencyCode,
) (*models.RateTable, error) {
	if err := ValidateHistoricalDate(date, f.now()); err != nil {
		return nil, err
	}
	base, err := f.resolveBase(base, symbols)
	if err != nil {
		return nil, err
	}

	body, err := f.get(ctx, "/"+date, base, symbols)
	if err != nil {
		logger.Log.Errorw("failed to fetch historical rates", "date", date, "base", base, "error", err)
		return nil, err
	}
	return parseTable(body, base, symbols)
}

// FetchRange returns every rate published between start and end inclusive.
func (f *RatesHTTPFacade) FetchRange(
	ctx context.Context,
	start, end time.Time,
	base models.CurrencyCode,
	symbols []models.CurrencyCode,
) (*models.RateSeries, error) {
	if end.Before(start) {
		return nil, apperrors.NewValidationError("end", "range ends before it starts")
	}
	base, err := f.resolveBase(base, symbols)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/%s..%s", start.Format(models.DateLayout), end.Format(models.DateLayout))
	body, err := f.get(ctx, path, base, symbols)
	if err != nil {
		logger.Log.Errorw("failed to fetch rate range", "range", path, "base", base, "error", err)
		return nil, err
	}
	return parseSeries(body, base)
}

// ValidateHistoricalDate checks date is a strict YYYY-MM-DD date not after today.
func ValidateHistoricalDate(date string, now time.Time) error {
	t, err := models.ParseDate("date", date)
	if err != nil {
		return err
	}
	if t.After(now.UTC()) {
		return apperrors.NewValidationError("date", "%s is in the future", date)
	}
	return nil
}

func (f *RatesHTTPFacade) resolveBase(base models.CurrencyCode, symbols []models.CurrencyCode) (models.CurrencyCode, error) {
	if base == "" {
		base = f.defaultBase
	}
	if !base.IsSupported() {
		return "", apperrors.NewValidationError("base", "unsupported currency code %q", base)
	}
	for _, s := range symbols {
		if !s.IsSupported() {
			return "", apperrors.NewValidationError("symbols", "unsupported currency code %q", s)
		}
	}
	return base, nil
}

func (f *RatesHTTPFacade) get(
	ctx context.Context,
	path string,
	base models.CurrencyCode,
	symbols []models.CurrencyCode,
) ([]byte, error) {
	q := url.Values{}
	q.Set("base", string(base))
	if requested := withoutBase(symbols, base); len(requested) > 0 {
		q.Set("symbols", models.JoinCurrencies(requested))
	}
	reqURL := f.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &apperrors.UpstreamError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &apperrors.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(body))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &apperrors.UpstreamError{StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}
	if !gjson.ValidBytes(body) {
		return nil, &apperrors.UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: body is not JSON", ErrInvalidResponse)}
	}
	return body, nil
}

func withoutBase(symbols []models.CurrencyCode, base models.CurrencyCode) []models.CurrencyCode {
	out := make([]models.CurrencyCode, 0, len(symbols))
	for _, s := range symbols {
		if s != base {
			out = append(out, s)
		}
	}
	return out
}

func invalid(format string, args ...any) error {
	return &apperrors.UpstreamError{
		StatusCode: http.StatusOK,
		Err:        fmt.Errorf("%w: %s", ErrInvalidResponse, fmt.Sprintf(format, args...)),
	}
}
