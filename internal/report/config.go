// Package report renders a fetched price series and its derived statistics
// into the console report: quote table, optional chart, analysis lines and
// cash-flow table.
package report

import (
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/tickerlens/tickerlens/pkg/errors"
)

const (
	// DefaultTradingDaysPerYear is the annualization base for daily series.
	DefaultTradingDaysPerYear = 252.0

	defaultChartWidth  = 80
	defaultChartHeight = 12
)

// Config selects which optional sections a report carries and where it is
// written. The seven near-identical report variants of the original program
// collapse into these toggles.
type Config struct {
	Out io.Writer `validate:"required"`

	IncludeHeader   bool
	IncludeChart    bool
	IncludeCashFlow bool

	ChartWidth  int `validate:"gt=0"`
	ChartHeight int `validate:"gt=0"`

	TradingDaysPerYear float64 `validate:"gt=0"`
}

// DefaultConfig returns a Config with every optional section enabled,
// writing to out.
func DefaultConfig(out io.Writer) Config {
	return Config{
		Out:                out,
		IncludeHeader:      true,
		IncludeChart:       true,
		IncludeCashFlow:    true,
		ChartWidth:         defaultChartWidth,
		ChartHeight:        defaultChartHeight,
		TradingDaysPerYear: DefaultTradingDaysPerYear,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid report configuration", err)
	}

	return nil
}
