package models

// LatestRatesRequest holds the query of GET /rates/latest.
type LatestRatesRequest struct {
	Base    string `query:"base" validate:"omitempty,len=3,alpha"`
	Symbols string `query:"symbols" validate:"omitempty,max=128"`
}

// HistoricalRatesRequest holds the query of GET /rates/historical.
type HistoricalRatesRequest struct {
	Date    string `query:"date" validate:"required,datetime=2006-01-02"`
	Base    string `query:"base" validate:"omitempty,len=3,alpha"`
	Symbols string `query:"symbols" validate:"omitempty,max=128"`
}

// HistoryRequest holds the query of GET /rates/history.
// Days is a positive integer or "all"; empty means the default window.
type HistoryRequest struct {
	From string `query:"from" validate:"required,len=3,alpha"`
	To   string `query:"to" validate:"required,len=3,alpha"`
	Days string `query:"days" validate:"omitempty,max=10"`
}

// CurrencyConversionRequest holds the query of GET /convert/currency.
type CurrencyConversionRequest struct {
	From   string `query:"from" validate:"required,len=3,alpha"`
	To     string `query:"to" validate:"required,len=3,alpha"`
	Amount string `query:"amount" validate:"required,numeric"`
	Date   string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UnitConversionRequest holds the query of GET /convert/unit.
type UnitConversionRequest struct {
	Category string `query:"category" validate:"required"`
	From     string `query:"from" validate:"required"`
	To       string `query:"to" validate:"required"`
	Value    string `query:"value" validate:"required,numeric"`
}
