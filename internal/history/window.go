// Package history computes the date range to request for a trailing rate
// series and trims the provider's response to the requested length.
package history

import (
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

// Mode selects how a window is bounded.
type Mode int

const (
	// ModeTrailing requests the last N published points.
	ModeTrailing Mode = iota
	// ModeAllAvailable requests every point since the provider's floor.
	ModeAllAvailable
)

// Window is a history request: either Trailing(days) or AllAvailable.
type Window struct {
	mode Mode
	days int
}

// Trailing requests the last days published points.
func Trailing(days int) Window {
	return Window{mode: ModeTrailing, days: days}
}

// AllAvailable requests the full history.
func AllAvailable() Window {
	return Window{mode: ModeAllAvailable}
}

// Mode returns the window mode.
func (w Window) Mode() Mode { return w.mode }

// Days returns the requested point count. It is zero for AllAvailable.
func (w Window) Days() int { return w.days }

func (w Window) String() string {
	if w.mode == ModeAllAvailable {
		return "all"
	}
	return strconv.Itoa(w.days)
}

// Config bounds the windows a Windower computes.
type Config struct {
	MaxDays          int       // Trailing windows are clamped to this many points
	BufferDays       int       // Extra calendar days covering weekends and holidays
	AllThresholdDays int       // Day counts above this mean AllAvailable
	EarliestDate     time.Time // First date the provider publishes
}

// DefaultConfig returns five-year windows over the provider's full history.
func DefaultConfig() Config {
	return Config{
		MaxDays:          5 * 365,
		BufferDays:       10,
		AllThresholdDays: 5 * 365,
		EarliestDate:     time.Date(1999, time.January, 4, 0, 0, 0, 0, time.UTC),
	}
}

// Windower computes query ranges and trims series for a Config.
type Windower struct {
	cfg Config
	now func() time.Time
}

// NewWindower creates a Windower. A nil now uses time.Now.
func NewWindower(cfg Config, now func() time.Time) *Windower {
	if now == nil {
		now = time.Now
	}
	return &Windower{cfg: cfg, now: now}
}

// ParseWindow parses a "days" request parameter: "all" or a positive integer.
// Integers above the configured threshold are read as AllAvailable.
func (w *Windower) ParseWindow(s string) (Window, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return AllAvailable(), nil
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return Window{}, apperrors.NewValidationError("days", "%q is neither a day count nor \"all\"", s)
	}
	return w.FromDays(days)
}

// FromDays maps a day count to a Window.
func (w *Windower) FromDays(days int) (Window, error) {
	if days <= 0 {
		return Window{}, apperrors.NewValidationError("days", "must be positive, got %d", days)
	}
	if days > w.cfg.AllThresholdDays {
		return AllAvailable(), nil
	}
	return Trailing(days), nil
}

// Clamp limits a trailing window to MaxDays.
func (w *Windower) Clamp(win Window) Window {
	if win.mode == ModeTrailing && win.days > w.cfg.MaxDays {
		return Trailing(w.cfg.MaxDays)
	}
	return win
}

// Range returns the inclusive start and end dates to request from the provider.
func (w *Windower) Range(win Window) (start, end time.Time, err error) {
	if win.mode == ModeTrailing && win.days <= 0 {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("days", "must be positive, got %d", win.days)
	}

	now := w.now().UTC()
	end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if win.mode == ModeAllAvailable {
		return w.cfg.EarliestDate, end, nil
	}

	win = w.Clamp(win)
	start = end.AddDate(0, 0, -(win.days + w.cfg.BufferDays))
	if start.Before(w.cfg.EarliestDate) {
		start = w.cfg.EarliestDate
	}
	return start, end, nil
}

// Series filters the provider's range response to dates carrying a usable
// rate for target, sorts ascending, and trims trailing windows to their length.
// When fewer points exist than requested, all of them are returned.
func (w *Windower) Series(series *models.RateSeries, target models.CurrencyCode, win Window) []models.HistoryPoint {
	points := Points(series, target)
	win = w.Clamp(win)
	if win.mode == ModeTrailing && len(points) > win.days {
		points = points[len(points)-win.days:]
	}
	return points
}
