package facades

import (
	"github.com/sbilibin2017/gw-converter/internal/models"
	"github.com/tidwall/gjson"
)

// parseTable normalises a single-date response:
// {"base":"USD","date":"2024-01-02","rates":{"EUR":0.91,...}}
func parseTable(body []byte, base models.CurrencyCode, symbols []models.CurrencyCode) (*models.RateTable, error) {
	res := gjson.ParseBytes(body)

	if got := models.CurrencyCode(res.Get("base").String()); got != base {
		return nil, invalid("expected base %s, got %q", base, got)
	}
	date := res.Get("date").String()
	if _, err := models.ParseDate("date", date); err != nil {
		return nil, invalid("bad date %q", date)
	}
	raw := res.Get("rates")
	if !raw.IsObject() {
		return nil, invalid("rates is not an object")
	}

	var wanted map[models.CurrencyCode]bool
	if symbols != nil {
		wanted = make(map[models.CurrencyCode]bool, len(symbols))
		for _, s := range symbols {
			wanted[s] = true
		}
	}

	table := &models.RateTable{Base: base, Date: date, Rates: make(map[models.CurrencyCode]float64)}
	var parseErr error
	raw.ForEach(func(key, value gjson.Result) bool {
		code := models.CurrencyCode(key.String())
		if code == base || !code.IsSupported() || (wanted != nil && !wanted[code]) {
			return true
		}
		if value.Type != gjson.Number || value.Float() <= 0 {
			parseErr = invalid("rate for %s is not a positive number: %s", code, value.Raw)
			return false
		}
		table.Rates[code] = value.Float()
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return table, nil
}

// parseSeries normalises a range response:
// {"base":"USD","start_date":"...","end_date":"...","rates":{"2024-01-02":{"EUR":0.91},...}}
// Non-numeric entries are dropped; the windower filters what remains.
func parseSeries(body []byte, base models.CurrencyCode) (*models.RateSeries, error) {
	res := gjson.ParseBytes(body)

	if got := models.CurrencyCode(res.Get("base").String()); got != base {
		return nil, invalid("expected base %s, got %q", base, got)
	}
	raw := res.Get("rates")
	if !raw.IsObject() {
		return nil, invalid("rates is not an object")
	}

	series := &models.RateSeries{
		Base:      base,
		StartDate: res.Get("start_date").String(),
		EndDate:   res.Get("end_date").String(),
		Rates:     make(map[string]map[models.CurrencyCode]float64),
	}
	raw.ForEach(func(date, day gjson.Result) bool {
		if _, err := models.ParseDate("date", date.String()); err != nil || !day.IsObject() {
			return true
		}
		rates := make(map[models.CurrencyCode]float64)
		day.ForEach(func(key, value gjson.Result) bool {
			code := models.CurrencyCode(key.String())
			if code.IsSupported() && code != base && value.Type == gjson.Number {
				rates[code] = value.Float()
			}
			return true
		})
		series.Rates[date.String()] = rates
		return true
	})
	return series, nil
}
