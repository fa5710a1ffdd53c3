// Package provider implements market data vendors behind a common interface:
// Yahoo Finance (default), Polygon and Binance.
package provider

import (
	"context"
	"time"

	"github.com/tickerlens/tickerlens/internal/types"
	"github.com/tickerlens/tickerlens/pkg/errors"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderYahoo   ProviderType = "yahoo"
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// Provider fetches the four independent data sets a report is built from.
// Implementations return series ordered by ascending timestamp. A provider
// that does not carry a data set returns an empty result, not an error.
type Provider interface {
	// PriceHistory returns daily bars covering the last `days` calendar days
	// for the symbol.
	PriceHistory(ctx context.Context, symbol string, days int) ([]types.PriceBar, error)
	// EarningsCalendar returns upcoming earnings timestamps, earliest first.
	EarningsCalendar(ctx context.Context, symbol string) ([]time.Time, error)
	// CompanyProfile returns company metadata for the report header.
	CompanyProfile(ctx context.Context, symbol string) (types.CompanyProfile, error)
	// CashFlowHistory returns annual free-cash-flow rows, most recent first.
	CashFlowHistory(ctx context.Context, symbol string) ([]types.CashFlowRow, error)
}

// NewMarketDataProvider creates a new market data provider based on the
// provider type. Polygon requires an API key string config; Yahoo and Binance
// take no config.
func NewMarketDataProvider(providerType ProviderType, config any) (Provider, error) {
	switch providerType {
	case ProviderYahoo:
		return NewYahooClient(), nil
	case ProviderBinance:
		return NewBinanceClient(), nil
	case ProviderPolygon:
		apiKey, ok := config.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration,
				"polygon provider requires API key string config")
		}

		return NewPolygonClient(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider,
			"unsupported market data provider: %s", providerType)
	}
}
