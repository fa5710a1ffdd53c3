// Package marketdata assembles the data a report needs from a configured
// provider: price history, earnings calendar, company profile and cash-flow
// history, fetched concurrently.
package marketdata

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/tickerlens/tickerlens/internal/logger"
	"github.com/tickerlens/tickerlens/internal/types"
	"github.com/tickerlens/tickerlens/pkg/errors"
	"github.com/tickerlens/tickerlens/pkg/marketdata/provider"
)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	ProviderType  provider.ProviderType `validate:"required,oneof=yahoo polygon binance"`
	PolygonAPIKey string                `validate:"required_if=ProviderType polygon"`
}

// SnapshotParams holds the parameters for a snapshot request.
type SnapshotParams struct {
	Symbol string `validate:"required"`
	Days   int    `validate:"required,min=1"`
}

// Snapshot is everything fetched for one symbol. Bars is always populated;
// the remaining fields reflect what the provider could deliver and may be
// empty or absent.
type Snapshot struct {
	Symbol        string
	Bars          []types.PriceBar
	EarningsDates []time.Time
	Profile       optional.Option[types.CompanyProfile]
	CashFlow      []types.CashFlowRow
}

// Client is the market data client responsible for fetching report data from
// the configured provider.
type Client struct {
	provider provider.Provider
	config   ClientConfig
	validate *validator.Validate
	logger   *logger.Logger
}

// NewClient creates a new market data client with the given configuration.
func NewClient(config ClientConfig, log *logger.Logger) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid client configuration", err)
	}

	marketProvider, err := provider.NewMarketDataProvider(config.ProviderType, config.PolygonAPIKey)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider: marketProvider,
		config:   config,
		validate: validate,
		logger:   log,
	}, nil
}

// NewClientWithProvider creates a client around an existing provider,
// bypassing provider construction.
func NewClientWithProvider(p provider.Provider, log *logger.Logger) *Client {
	return &Client{
		provider: p,
		config:   ClientConfig{},
		validate: validator.New(),
		logger:   log,
	}
}

// Snapshot fetches price history, earnings calendar, company profile and
// cash-flow history concurrently and joins the results. Only a price history
// failure is fatal: the auxiliary fetches degrade to absence with a warning,
// since the report can render without them.
func (c *Client) Snapshot(ctx context.Context, params SnapshotParams) (*Snapshot, error) {
	if err := c.validate.Struct(params); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid snapshot parameters", err)
	}

	var (
		wg sync.WaitGroup

		bars    []types.PriceBar
		barsErr error

		earnings    []time.Time
		earningsErr error

		profile    types.CompanyProfile
		profileErr error

		cashFlow    []types.CashFlowRow
		cashFlowErr error
	)

	wg.Add(4)

	go func() {
		defer wg.Done()

		bars, barsErr = c.provider.PriceHistory(ctx, params.Symbol, params.Days)
	}()

	go func() {
		defer wg.Done()

		earnings, earningsErr = c.provider.EarningsCalendar(ctx, params.Symbol)
	}()

	go func() {
		defer wg.Done()

		profile, profileErr = c.provider.CompanyProfile(ctx, params.Symbol)
	}()

	go func() {
		defer wg.Done()

		cashFlow, cashFlowErr = c.provider.CashFlowHistory(ctx, params.Symbol)
	}()

	wg.Wait()

	if barsErr != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, barsErr,
			"failed to fetch price history for %s", params.Symbol)
	}

	if err := types.ValidateSeries(bars); err != nil {
		return nil, err
	}

	if err := types.ValidateVolumes(bars); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Symbol: params.Symbol,
		Bars:   bars,
	}

	if earningsErr != nil {
		c.logger.Warn("earnings calendar unavailable",
			zap.String("symbol", params.Symbol), zap.Error(earningsErr))
	} else {
		snapshot.EarningsDates = earnings
	}

	if profileErr != nil {
		c.logger.Warn("company profile unavailable",
			zap.String("symbol", params.Symbol), zap.Error(profileErr))
	} else {
		snapshot.Profile = optional.Some(profile)
	}

	if cashFlowErr != nil {
		c.logger.Warn("cash flow history unavailable",
			zap.String("symbol", params.Symbol), zap.Error(cashFlowErr))
	} else {
		snapshot.CashFlow = cashFlow
	}

	return snapshot, nil
}
