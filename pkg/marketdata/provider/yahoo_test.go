package provider

import (
	"encoding/json"
	"testing"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type YahooTestSuite struct {
	suite.Suite
}

func TestYahooSuite(t *testing.T) {
	suite.Run(t, new(YahooTestSuite))
}

func (suite *YahooTestSuite) TestBarFromChart() {
	bar := &finance.ChartBar{
		Timestamp: 1709251200, // 2024-03-01 00:00 UTC
		Open:      decimal.NewFromFloat(100.5),
		High:      decimal.NewFromFloat(105),
		Low:       decimal.NewFromFloat(99.25),
		Close:     decimal.NewFromFloat(104),
		Volume:    1_234_567,
	}

	converted := barFromChart(bar)

	suite.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), converted.Timestamp)
	suite.True(converted.Open.Equal(decimal.NewFromFloat(100.5)))
	suite.True(converted.Close.Equal(decimal.NewFromFloat(104)))
	suite.Equal(int64(1_234_567), converted.Volume.Unwrap())
}

const calendarEventsFixture = `{
  "quoteSummary": {
    "result": [
      {
        "calendarEvents": {
          "earnings": {
            "earningsDate": [
              {"raw": 1714078800, "fmt": "2024-04-25"},
              {"raw": 1714510800, "fmt": "2024-04-30"},
              {"raw": 0}
            ]
          }
        }
      }
    ],
    "error": null
  }
}`

func (suite *YahooTestSuite) TestEarningsFromSummary() {
	var summary yahooQuoteSummary
	suite.Require().NoError(json.Unmarshal([]byte(calendarEventsFixture), &summary))

	dates := earningsFromSummary(&summary)

	suite.Require().Len(dates, 2)
	suite.Equal(time.Unix(1714078800, 0).UTC(), dates[0])
	suite.Equal(time.Unix(1714510800, 0).UTC(), dates[1])
}

func (suite *YahooTestSuite) TestEarningsFromEmptySummary() {
	var summary yahooQuoteSummary
	suite.Require().NoError(json.Unmarshal([]byte(`{"quoteSummary":{"result":[],"error":null}}`), &summary))

	suite.Empty(earningsFromSummary(&summary))
}

const timeseriesFixture = `{
  "timeseries": {
    "result": [
      {
        "meta": {"symbol": ["MSFT"], "type": ["annualFreeCashFlow"]},
        "annualFreeCashFlow": [
          {"asOfDate": "2021-06-30", "reportedValue": {"raw": 56118000000, "fmt": "56.12B"}},
          null,
          {"asOfDate": "2023-06-30", "reportedValue": {"raw": 59475000000, "fmt": "59.48B"}}
        ]
      }
    ],
    "error": null
  }
}`

func (suite *YahooTestSuite) TestCashFlowFromTimeseries() {
	var series yahooTimeseries
	suite.Require().NoError(json.Unmarshal([]byte(timeseriesFixture), &series))

	rows := cashFlowFromTimeseries(&series)

	suite.Require().Len(rows, 3)

	// Newest first.
	suite.Equal(time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), rows[0].PeriodEnd.Unwrap())
	suite.Equal(int64(59_475_000_000), rows[0].FreeCashFlow.Unwrap())

	// The null fiscal year becomes an incomplete row.
	suite.False(rows[1].Complete())

	suite.Equal(time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC), rows[2].PeriodEnd.Unwrap())
	suite.Equal(int64(56_118_000_000), rows[2].FreeCashFlow.Unwrap())
}

func (suite *YahooTestSuite) TestFormatUnix() {
	suite.Equal("1709251200", formatUnix(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}
