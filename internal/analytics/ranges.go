package analytics

import (
	"github.com/moznion/go-optional"

	"github.com/tickerlens/tickerlens/internal/types"
)

// Ranges extracts the intraday extrema (over each bar's high/low) and the
// closing extrema (over closes only) in a single pass. An empty series yields
// None: no data, not an error.
func Ranges(bars []types.PriceBar) optional.Option[types.RangeSummary] {
	if len(bars) == 0 {
		return optional.None[types.RangeSummary]()
	}

	summary := types.RangeSummary{
		Intraday: types.PriceRange{Low: bars[0].Low, High: bars[0].High},
		Closing:  types.PriceRange{Low: bars[0].Close, High: bars[0].Close},
	}

	for _, bar := range bars[1:] {
		if bar.Low.LessThan(summary.Intraday.Low) {
			summary.Intraday.Low = bar.Low
		}

		if bar.High.GreaterThan(summary.Intraday.High) {
			summary.Intraday.High = bar.High
		}

		if bar.Close.LessThan(summary.Closing.Low) {
			summary.Closing.Low = bar.Close
		}

		if bar.Close.GreaterThan(summary.Closing.High) {
			summary.Closing.High = bar.Close
		}
	}

	return optional.Some(summary)
}
