package services

import (
	"context"

	"github.com/sbilibin2017/gw-converter/internal/conversion"
	"github.com/sbilibin2017/gw-converter/internal/logger"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

//go:generate mockgen -source=exchange.go -destination=mock_exchange_test.go -package=services

// RateTableReader returns rate tables anchored at a base currency.
type RateTableReader interface {
	GetLatestRates(ctx context.Context, base models.CurrencyCode, symbols []models.CurrencyCode) (*models.RateTable, error)
	GetHistoricalRates(ctx context.Context, date string, base models.CurrencyCode, symbols []models.CurrencyCode) (*models.RateTable, error)
}

// ExchangeService converts amounts between currencies.
type ExchangeService struct {
	rates  RateTableReader
	anchor models.CurrencyCode
}

// NewExchangeService creates a service that triangulates through anchor.
func NewExchangeService(rates RateTableReader, anchor models.CurrencyCode) *ExchangeService {
	return &ExchangeService{rates: rates, anchor: anchor}
}

// Convert converts amount from one currency to another at the latest rates,
// or at the rates published on date when date is not empty.
func (svc *ExchangeService) Convert(
	ctx context.Context,
	amount float64,
	from, to models.CurrencyCode,
	date string,
) (*models.ConversionResult, error) {
	if from == to {
		value, err := conversion.ConvertCurrency(amount, from, to, svc.anchor, nil)
		if err != nil {
			return nil, err
		}
		return &models.ConversionResult{Value: value, Unit: string(to)}, nil
	}

	var symbols []models.CurrencyCode
	for _, c := range []models.CurrencyCode{from, to} {
		if c != svc.anchor {
			symbols = append(symbols, c)
		}
	}

	var (
		table *models.RateTable
		err   error
	)
	if date == "" {
		table, err = svc.rates.GetLatestRates(ctx, svc.anchor, symbols)
	} else {
		table, err = svc.rates.GetHistoricalRates(ctx, date, svc.anchor, symbols)
	}
	if err != nil {
		return nil, err
	}

	value, err := conversion.ConvertCurrency(amount, from, to, table.Base, table.Rates)
	if err != nil {
		logger.Log.Errorw("currency conversion failed",
			"from", from, "to", to, "base", table.Base, "date", table.Date, "error", err)
		return nil, err
	}
	return &models.ConversionResult{Value: value, Unit: string(to)}, nil
}
