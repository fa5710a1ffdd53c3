package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/moznion/go-optional"
	"github.com/urfave/cli/v3"

	"github.com/tickerlens/tickerlens/internal/analytics"
	"github.com/tickerlens/tickerlens/internal/logger"
	"github.com/tickerlens/tickerlens/internal/report"
	"github.com/tickerlens/tickerlens/internal/version"
	"github.com/tickerlens/tickerlens/pkg/marketdata"
	"github.com/tickerlens/tickerlens/pkg/marketdata/provider"
)

const defaultLookbackDays = 10

// reportAction is the core logic executed by the CLI command. It fetches the
// snapshot for the ticker, computes the price statistics and renders the
// report to stdout.
func reportAction(ctx context.Context, cmd *cli.Command) error {
	newLogger := logger.NewLogger
	if cmd.Bool("verbose") {
		newLogger = logger.NewVerboseLogger
	}

	appLogger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	clientConfig := marketdata.ClientConfig{
		ProviderType:  provider.ProviderType(cmd.String("provider")),
		PolygonAPIKey: os.Getenv("POLYGON_API_KEY"),
	}

	client, err := marketdata.NewClient(clientConfig, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create market data client: %w", err)
	}

	snapshot, err := client.Snapshot(ctx, marketdata.SnapshotParams{
		Symbol: cmd.String("ticker"),
		Days:   int(cmd.Int("days")),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch market data: %w", err)
	}

	input, err := buildReportInput(snapshot)
	if err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	config := report.DefaultConfig(os.Stdout)
	config.IncludeHeader = !cmd.Bool("no-header")
	config.IncludeChart = cmd.Bool("chart")
	config.IncludeCashFlow = cmd.Bool("cashflow")

	builder, err := report.NewBuilder(config)
	if err != nil {
		return fmt.Errorf("failed to create report builder: %w", err)
	}

	if err := builder.Write(input); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return nil
}

// buildReportInput computes the statistics pipeline over the snapshot. The
// percent change and volatility require two and three bars respectively and
// stay absent below that.
func buildReportInput(snapshot *marketdata.Snapshot) (report.Input, error) {
	returns, err := analytics.Returns(snapshot.Bars)
	if err != nil {
		return report.Input{}, err
	}

	input := report.Input{
		Symbol:        snapshot.Symbol,
		Bars:          snapshot.Bars,
		Returns:       returns,
		Ranges:        analytics.Ranges(snapshot.Bars),
		EarningsDates: snapshot.EarningsDates,
		Profile:       snapshot.Profile,
		CashFlow:      snapshot.CashFlow,
	}

	if len(snapshot.Bars) >= 2 {
		pctChange, err := analytics.PercentChange(snapshot.Bars)
		if err != nil {
			return report.Input{}, err
		}

		input.PercentChange = optional.Some(pctChange)
	}

	if len(returns) >= 2 {
		input.Volatility = optional.Some(
			analytics.Volatility(returns, report.DefaultTradingDaysPerYear))
	}

	return input, nil
}

func main() {
	cmd := &cli.Command{
		Name:    "report",
		Usage:   "Print a console report for a stock ticker",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ticker",
				Aliases:  []string{"t"},
				Usage:    "Stock ticker symbol",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "Lookback window in calendar days",
				Value:   defaultLookbackDays,
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage: fmt.Sprintf("Data provider to use (%s, %s, %s)",
					provider.ProviderYahoo, provider.ProviderPolygon, provider.ProviderBinance),
				Value: string(provider.ProviderYahoo),
			},
			&cli.BoolFlag{
				Name:  "chart",
				Usage: "Include an ASCII chart of closing prices",
			},
			&cli.BoolFlag{
				Name:  "cashflow",
				Usage: "Include the annual free-cash-flow table",
			},
			&cli.BoolFlag{
				Name:  "no-header",
				Usage: "Omit the company header",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Emit info-level diagnostics to stderr",
			},
		},
		Action: reportAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
