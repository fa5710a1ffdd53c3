package provider

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/moznion/go-optional"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"github.com/tickerlens/tickerlens/internal/types"
	"github.com/tickerlens/tickerlens/pkg/errors"
)

const (
	yahooQuoteSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary/{symbol}"
	yahooTimeseriesURL   = "https://query1.finance.yahoo.com/ws/fundamentals-timeseries/v1/finance/timeseries/{symbol}"

	// Yahoo rejects requests without a browser-looking user agent.
	yahooUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	yahooRequestTimeout = 15 * time.Second
	cashFlowYears       = 5
)

// YahooClient fetches market data from Yahoo Finance. Price history and
// quotes go through the chart and quote APIs; the earnings calendar and
// free-cash-flow history come from the quoteSummary and fundamentals
// timeseries endpoints.
type YahooClient struct {
	http *resty.Client
}

// NewYahooClient creates a Yahoo Finance provider. No credentials required.
func NewYahooClient() *YahooClient {
	client := resty.New().
		SetHeader("User-Agent", yahooUserAgent).
		SetTimeout(yahooRequestTimeout)

	return &YahooClient{http: client}
}

// PriceHistory fetches daily bars for the last `days` calendar days.
func (c *YahooClient) PriceHistory(ctx context.Context, symbol string, days int) ([]types.PriceBar, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	var bars []types.PriceBar

	for iter.Next() {
		bar := iter.Bar()

		// Null chart entries (halted sessions) come through as zero bars.
		if bar.Close.IsZero() {
			continue
		}

		bars = append(bars, barFromChart(bar))
	}

	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err,
			"failed to fetch price history for %s", symbol)
	}

	if len(bars) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound,
			"no price history for %s over %d days", symbol, days)
	}

	return bars, nil
}

// barFromChart converts a chart API bar. Yahoo occasionally reports a zero
// volume on the current partial session; that is kept as-is, only a truly
// absent field maps to None.
func barFromChart(bar *finance.ChartBar) types.PriceBar {
	return types.PriceBar{
		Timestamp: time.Unix(int64(bar.Timestamp), 0).UTC(),
		Open:      bar.Open,
		High:      bar.High,
		Low:       bar.Low,
		Close:     bar.Close,
		Volume:    optional.Some(int64(bar.Volume)),
	}
}

// CompanyProfile fetches the quote metadata used for the report header.
func (c *YahooClient) CompanyProfile(ctx context.Context, symbol string) (types.CompanyProfile, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return types.CompanyProfile{}, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err,
			"failed to fetch quote for %s", symbol)
	}

	if q == nil {
		return types.CompanyProfile{}, errors.Newf(errors.ErrCodeSymbolNotFound,
			"no quote found for %s", symbol)
	}

	profile := types.CompanyProfile{Symbol: symbol}

	if q.ShortName != "" {
		profile.Name = optional.Some(q.ShortName)
	}

	if q.FullExchangeName != "" {
		profile.Exchange = optional.Some(q.FullExchangeName)
	}

	if q.CurrencyID != "" {
		profile.Currency = optional.Some(q.CurrencyID)
	}

	return profile, nil
}

// yahooQuoteSummary mirrors the quoteSummary calendarEvents payload.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			CalendarEvents struct {
				Earnings struct {
					EarningsDate []struct {
						Raw int64 `json:"raw"`
					} `json:"earningsDate"`
				} `json:"earnings"`
			} `json:"calendarEvents"`
		} `json:"result"`
		Error *yahooAPIError `json:"error"`
	} `json:"quoteSummary"`
}

type yahooAPIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// EarningsCalendar fetches the upcoming earnings dates from the calendar
// events module.
func (c *YahooClient) EarningsCalendar(ctx context.Context, symbol string) ([]time.Time, error) {
	var out yahooQuoteSummary

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParam("modules", "calendarEvents").
		SetResult(&out).
		Get(yahooQuoteSummaryURL)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err,
			"failed to fetch earnings calendar for %s", symbol)
	}

	if resp.IsError() {
		return nil, errors.Newf(errors.ErrCodeMarketDataFetchFailed,
			"earnings calendar request for %s returned %s", symbol, resp.Status())
	}

	if apiErr := out.QuoteSummary.Error; apiErr != nil {
		return nil, errors.Newf(errors.ErrCodeMarketDataParseFailed,
			"earnings calendar for %s: %s (%s)", symbol, apiErr.Description, apiErr.Code)
	}

	return earningsFromSummary(&out), nil
}

func earningsFromSummary(summary *yahooQuoteSummary) []time.Time {
	var dates []time.Time

	for _, result := range summary.QuoteSummary.Result {
		for _, d := range result.CalendarEvents.Earnings.EarningsDate {
			if d.Raw == 0 {
				continue
			}

			dates = append(dates, time.Unix(d.Raw, 0).UTC())
		}
	}

	return dates
}

// yahooTimeseries mirrors the fundamentals timeseries payload for a single
// requested type. Rows can be null when a fiscal year has no reported value.
type yahooTimeseries struct {
	Timeseries struct {
		Result []struct {
			AnnualFreeCashFlow []*struct {
				AsOfDate      string `json:"asOfDate"`
				ReportedValue struct {
					Raw float64 `json:"raw"`
				} `json:"reportedValue"`
			} `json:"annualFreeCashFlow"`
		} `json:"result"`
		Error *yahooAPIError `json:"error"`
	} `json:"timeseries"`
}

// CashFlowHistory fetches the annual free-cash-flow series for the last few
// fiscal years.
func (c *YahooClient) CashFlowHistory(ctx context.Context, symbol string) ([]types.CashFlowRow, error) {
	now := time.Now()

	var out yahooTimeseries

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"type":    "annualFreeCashFlow",
			"period1": formatUnix(now.AddDate(-cashFlowYears, 0, 0)),
			"period2": formatUnix(now),
		}).
		SetResult(&out).
		Get(yahooTimeseriesURL)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err,
			"failed to fetch cash flow history for %s", symbol)
	}

	if resp.IsError() {
		return nil, errors.Newf(errors.ErrCodeMarketDataFetchFailed,
			"cash flow request for %s returned %s", symbol, resp.Status())
	}

	if apiErr := out.Timeseries.Error; apiErr != nil {
		return nil, errors.Newf(errors.ErrCodeMarketDataParseFailed,
			"cash flow history for %s: %s (%s)", symbol, apiErr.Description, apiErr.Code)
	}

	return cashFlowFromTimeseries(&out), nil
}

// cashFlowFromTimeseries flattens the timeseries rows, newest first. Null
// rows become rows with absent fields so the renderer can decide to skip
// them.
func cashFlowFromTimeseries(series *yahooTimeseries) []types.CashFlowRow {
	var rows []types.CashFlowRow

	for _, result := range series.Timeseries.Result {
		for _, entry := range result.AnnualFreeCashFlow {
			if entry == nil {
				rows = append(rows, types.CashFlowRow{})
				continue
			}

			row := types.CashFlowRow{
				FreeCashFlow: optional.Some(int64(entry.ReportedValue.Raw)),
			}

			if periodEnd, err := time.Parse("2006-01-02", entry.AsOfDate); err == nil {
				row.PeriodEnd = optional.Some(periodEnd)
			}

			rows = append(rows, row)
		}
	}

	// Yahoo returns fiscal years oldest first; the report wants them newest
	// first.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return rows
}

func formatUnix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
