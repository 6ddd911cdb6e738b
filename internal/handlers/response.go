package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-converter/internal/logger"
	"github.com/sbilibin2017/gw-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

// Cache-Control policies.
const (
	CacheLatest     = "public, max-age=60"
	CacheHistorical = "public, max-age=31536000, immutable"
	CacheStatic     = "public, max-age=3600"
	CacheNone       = "no-store"
)

// writeJSON encodes v before writing the status line, so an unencodable
// value becomes a 500 instead of a 200 with an empty body.
func writeJSON(w http.ResponseWriter, status int, cacheControl string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
		status = http.StatusInternalServerError
		cacheControl = CacheNone
		body, _ = json.Marshal(models.ErrorResponse{Error: http.StatusText(status)})
	}

	w.Header().Set("Content-Type", "application/json")
	if cacheControl != "" {
		w.Header().Set("Cache-Control", cacheControl)
	}
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Log.Warnw("failed to write response", "error", err)
	}
}

// datedCacheControl returns the policy for a response tied to date.
// Only dates strictly before today (UTC) are immutable.
func datedCacheControl(date string, now time.Time) string {
	if models.IsSettledDate(date, now) {
		return CacheHistorical
	}
	return CacheLatest
}

// statusFor maps an engine error to an HTTP status code.
func statusFor(err error) int {
	var (
		validationErr *apperrors.ValidationError
		domainErr     *apperrors.DomainError
		missingErr    *apperrors.MissingRateError
		upstreamErr   *apperrors.UpstreamError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &domainErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &missingErr), errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		reqID, _ := middlewares.RequestIDFromContext(r.Context())
		logger.Log.Errorw("request failed", "request_id", reqID, "uri", r.RequestURI, "error", err)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, CacheNone, models.ErrorResponse{Error: msg})
}
