package provider

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/shopspring/decimal"

	"github.com/tickerlens/tickerlens/internal/types"
	"github.com/tickerlens/tickerlens/pkg/errors"
)

// PolygonClient fetches US equity data from Polygon. Polygon has no earnings
// calendar endpoint on the aggregates plan, so EarningsCalendar reports
// absence.
type PolygonClient struct {
	client *polygon.Client
}

// NewPolygonClient creates a Polygon provider. An API key is required.
func NewPolygonClient(apiKey string) (*PolygonClient, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "polygon API key is required")
	}

	return &PolygonClient{client: polygon.New(apiKey)}, nil
}

// PriceHistory fetches adjusted daily aggregates for the last `days`
// calendar days.
func (c *PolygonClient) PriceHistory(ctx context.Context, symbol string, days int) ([]types.PriceBar, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(start),
		To:         models.Millis(end),
	}.WithOrder(models.Asc).WithAdjusted(true).WithLimit(50000)

	iter := c.client.ListAggs(ctx, params)

	var bars []types.PriceBar

	for iter.Next() {
		agg := iter.Item()
		bars = append(bars, types.PriceBar{
			Timestamp: time.Time(agg.Timestamp).UTC(),
			Open:      decimal.NewFromFloat(agg.Open),
			High:      decimal.NewFromFloat(agg.High),
			Low:       decimal.NewFromFloat(agg.Low),
			Close:     decimal.NewFromFloat(agg.Close),
			Volume:    optional.Some(int64(agg.Volume)),
		})
	}

	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err,
			"failed to fetch polygon aggregates for %s", symbol)
	}

	if len(bars) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound,
			"no price history for %s over %d days", symbol, days)
	}

	return bars, nil
}

// EarningsCalendar reports absence: Polygon does not expose an earnings
// calendar.
func (c *PolygonClient) EarningsCalendar(ctx context.Context, symbol string) ([]time.Time, error) {
	return nil, nil
}

// CompanyProfile fetches the ticker reference details.
func (c *PolygonClient) CompanyProfile(ctx context.Context, symbol string) (types.CompanyProfile, error) {
	//nolint:exhaustruct // third-party struct with many optional fields
	details, err := c.client.GetTickerDetails(ctx, &models.GetTickerDetailsParams{
		Ticker: symbol,
	})
	if err != nil {
		return types.CompanyProfile{}, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err,
			"failed to fetch ticker details for %s", symbol)
	}

	profile := types.CompanyProfile{Symbol: symbol}

	if details.Results.Name != "" {
		profile.Name = optional.Some(details.Results.Name)
	}

	if details.Results.PrimaryExchange != "" {
		profile.Exchange = optional.Some(details.Results.PrimaryExchange)
	}

	if details.Results.CurrencyName != "" {
		profile.Currency = optional.Some(details.Results.CurrencyName)
	}

	return profile, nil
}

// Cash-flow statement keys in the stock financials payload.
const (
	polygonCashFlowStatement = "cash_flow_statement"
	polygonOperatingCashFlow = "net_cash_flow_from_operating_activities"
	polygonInvestingCashFlow = "net_cash_flow_from_investing_activities"
)

// CashFlowHistory fetches annual stock financials and derives free cash flow
// as operating plus investing net cash flow.
func (c *PolygonClient) CashFlowHistory(ctx context.Context, symbol string) ([]types.CashFlowRow, error) {
	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListStockFinancialsParams{}.
		WithTicker(symbol).
		WithTimeframe(models.TFAnnual).
		WithLimit(cashFlowYears)

	iter := c.client.VX.ListStockFinancials(ctx, params)

	var rows []types.CashFlowRow

	for iter.Next() {
		rows = append(rows, rowFromFinancial(iter.Item()))
	}

	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err,
			"failed to fetch stock financials for %s", symbol)
	}

	return rows, nil
}

// rowFromFinancial derives one cash-flow row from an annual filing. Free
// cash flow requires both the operating and investing net cash flows; a
// filing missing either yields a row with the value absent.
func rowFromFinancial(fin models.StockFinancial) types.CashFlowRow {
	row := types.CashFlowRow{}

	if periodEnd, err := time.Parse("2006-01-02", fin.EndDate); err == nil {
		row.PeriodEnd = optional.Some(periodEnd)
	}

	if statement, ok := fin.Financials[polygonCashFlowStatement]; ok {
		operating, haveOperating := statement[polygonOperatingCashFlow]
		investing, haveInvesting := statement[polygonInvestingCashFlow]

		if haveOperating && haveInvesting {
			row.FreeCashFlow = optional.Some(int64(operating.Value + investing.Value))
		}
	}

	return row
}
