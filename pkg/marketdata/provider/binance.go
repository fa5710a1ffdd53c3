package provider

import (
	"context"
	"time"

	binance "github.com/adshao/go-binance/v2"
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/tickerlens/tickerlens/internal/types"
	"github.com/tickerlens/tickerlens/pkg/errors"
)

const binanceDailyInterval = "1d"

// BinanceClient fetches crypto daily klines from the Binance public API.
// Binance symbols are trading pairs (e.g. BTCUSDT); there is no company
// behind them, so the profile, earnings and cash-flow calls report absence.
type BinanceClient struct {
	client *binance.Client
}

// NewBinanceClient creates a Binance provider. Public kline data needs no
// credentials.
func NewBinanceClient() *BinanceClient {
	return &BinanceClient{client: binance.NewClient("", "")}
}

// PriceHistory fetches the last `days` daily klines for the trading pair.
func (c *BinanceClient) PriceHistory(ctx context.Context, symbol string, days int) ([]types.PriceBar, error) {
	klines, err := c.client.NewKlinesService().
		Symbol(symbol).
		Interval(binanceDailyInterval).
		Limit(days).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err,
			"failed to fetch klines for %s", symbol)
	}

	if len(klines) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound,
			"no price history for %s over %d days", symbol, days)
	}

	bars := make([]types.PriceBar, 0, len(klines))

	for _, k := range klines {
		bar, err := barFromKline(k)
		if err != nil {
			return nil, err
		}

		bars = append(bars, bar)
	}

	return bars, nil
}

// barFromKline converts a Binance kline. Kline prices arrive as decimal
// strings; base-asset volume is fractional and truncated to whole units.
func barFromKline(k *binance.Kline) (types.PriceBar, error) {
	open, err := decimal.NewFromString(k.Open)
	if err != nil {
		return types.PriceBar{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err,
			"invalid kline open price %q", k.Open)
	}

	high, err := decimal.NewFromString(k.High)
	if err != nil {
		return types.PriceBar{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err,
			"invalid kline high price %q", k.High)
	}

	low, err := decimal.NewFromString(k.Low)
	if err != nil {
		return types.PriceBar{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err,
			"invalid kline low price %q", k.Low)
	}

	closePrice, err := decimal.NewFromString(k.Close)
	if err != nil {
		return types.PriceBar{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err,
			"invalid kline close price %q", k.Close)
	}

	volume, err := decimal.NewFromString(k.Volume)
	if err != nil {
		return types.PriceBar{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err,
			"invalid kline volume %q", k.Volume)
	}

	return types.PriceBar{
		Timestamp: time.UnixMilli(k.OpenTime).UTC(),
		Open:      open,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    optional.Some(volume.IntPart()),
	}, nil
}

// EarningsCalendar reports absence: trading pairs have no earnings.
func (c *BinanceClient) EarningsCalendar(ctx context.Context, symbol string) ([]time.Time, error) {
	return nil, nil
}

// CompanyProfile returns a symbol-only profile: trading pairs carry no
// company metadata.
func (c *BinanceClient) CompanyProfile(ctx context.Context, symbol string) (types.CompanyProfile, error) {
	return types.CompanyProfile{Symbol: symbol}, nil
}

// CashFlowHistory reports absence: trading pairs have no financial
// statements.
func (c *BinanceClient) CashFlowHistory(ctx context.Context, symbol string) ([]types.CashFlowRow, error) {
	return nil, nil
}
