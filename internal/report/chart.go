package report

import (
	"github.com/guptarohit/asciigraph"

	"github.com/tickerlens/tickerlens/internal/types"
)

// Vertical padding applied to the chart bounds so the extremes do not sit on
// the canvas edge.
const chartBoundPad = 0.01

// renderChart plots closing price against sequential bar index on a
// character canvas. Returns "" for an empty series.
func renderChart(bars []types.PriceBar, width, height int) string {
	if len(bars) == 0 {
		return ""
	}

	closes := make([]float64, len(bars))
	minClose, maxClose := 0.0, 0.0

	for i, bar := range bars {
		c, _ := bar.Close.Float64()
		closes[i] = c

		if i == 0 || c < minClose {
			minClose = c
		}

		if i == 0 || c > maxClose {
			maxClose = c
		}
	}

	return asciigraph.Plot(closes,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.LowerBound(minClose*(1-chartBoundPad)),
		asciigraph.UpperBound(maxClose*(1+chartBoundPad)),
		asciigraph.Precision(2),
		asciigraph.Caption("close"),
	)
}
