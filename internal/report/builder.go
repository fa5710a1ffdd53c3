package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/tickerlens/tickerlens/internal/types"
)

// Input carries the fetched series and its precomputed statistics. Optional
// fields left None (or empty) simply omit their section or line: absent data
// is not an error at render time.
type Input struct {
	Symbol        string
	Bars          []types.PriceBar
	Returns       []float64
	PercentChange optional.Option[decimal.Decimal]
	Volatility    optional.Option[types.VolatilitySummary]
	Ranges        optional.Option[types.RangeSummary]
	EarningsDates []time.Time
	Profile       optional.Option[types.CompanyProfile]
	CashFlow      []types.CashFlowRow
}

// Builder renders reports for a fixed configuration.
type Builder struct {
	config Config
}

// NewBuilder creates a Builder after validating the configuration.
func NewBuilder(config Config) (*Builder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Builder{config: config}, nil
}

// Write renders the report and writes it to the configured output.
func (b *Builder) Write(input Input) error {
	rendered, err := b.Render(input)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(b.config.Out, rendered)

	return err
}

// Render produces the full report text: header, quote table, chart, analysis
// block and cash-flow table, in that order, subject to the section toggles.
func (b *Builder) Render(input Input) (string, error) {
	var sb strings.Builder

	if b.config.IncludeHeader {
		if header := renderHeader(input); header != "" {
			sb.WriteString(header)
			sb.WriteString("\n")
		}
	}

	quoteTable, err := renderQuoteTable(input.Bars, input.Returns)
	if err != nil {
		return "", err
	}

	sb.WriteString(quoteTable)
	sb.WriteString("\n\n")

	if b.config.IncludeChart {
		if chart := renderChart(input.Bars, b.config.ChartWidth, b.config.ChartHeight); chart != "" {
			sb.WriteString(chart)
			sb.WriteString("\n\n")
		}
	}

	sb.WriteString(renderAnalysis(input))

	if b.config.IncludeCashFlow {
		if cashFlow := renderCashFlowTable(input.CashFlow); cashFlow != "" {
			sb.WriteString("\n")
			sb.WriteString(cashFlow)
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// renderHeader produces the company title line, empty when no profile was
// fetched.
func renderHeader(input Input) string {
	profile, err := input.Profile.Take()
	if err != nil {
		return ""
	}

	name := profile.Name.TakeOr(profile.Symbol)
	title := headerStyle.Render(fmt.Sprintf("%s (%s)", name, input.Symbol))

	if exchange, err := profile.Exchange.Take(); err == nil {
		if currency, err := profile.Currency.Take(); err == nil {
			return fmt.Sprintf("%s\n%s, %s", title, exchange, currency)
		}

		return fmt.Sprintf("%s\n%s", title, exchange)
	}

	return title
}

// renderAnalysis produces the price-analysis block. Each line appears only
// when its statistic was computable.
func renderAnalysis(input Input) string {
	var sb strings.Builder

	if pctChange, err := input.PercentChange.Take(); err == nil {
		fmt.Fprintf(&sb, "pct change over period: %s\n", formatSignedPct(pctChange))
	}

	if vol, err := input.Volatility.Take(); err == nil {
		fmt.Fprintf(&sb, "std dev of returns: %.4f\n", vol.StdDev)
		fmt.Fprintf(&sb, "annualized volatility: %.2f\n", vol.AnnualizedVolPct)
	}

	if ranges, err := input.Ranges.Take(); err == nil {
		fmt.Fprintf(&sb, "intraday range: %s - %s\n",
			formatPrice(ranges.Intraday.Low), formatPrice(ranges.Intraday.High))
		fmt.Fprintf(&sb, "closing range: %s - %s\n",
			formatPrice(ranges.Closing.Low), formatPrice(ranges.Closing.High))
	}

	if len(input.EarningsDates) > 0 {
		fmt.Fprintf(&sb, "earnings date: %s\n", input.EarningsDates[0].Format("2006-01-02 15:04"))
	}

	return sb.String()
}
