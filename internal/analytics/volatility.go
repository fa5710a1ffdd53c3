package analytics

import (
	"math"

	"github.com/tickerlens/tickerlens/internal/types"
)

// Volatility computes the sample mean and sample standard deviation (n-1
// denominator) of a return series and annualizes the deviation as
// stdDev * sqrt(periodsPerYear) * 100.
//
// Callers must only invoke this with at least two returns (three bars); a
// shorter series carries no dispersion information and yields a zero summary.
func Volatility(returns []float64, periodsPerYear float64) types.VolatilitySummary {
	if len(returns) < 2 {
		return types.VolatilitySummary{}
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}

	mean /= float64(len(returns))

	sumSq := 0.0
	for _, r := range returns {
		d := r - mean
		sumSq += d * d
	}

	stdDev := math.Sqrt(sumSq / float64(len(returns)-1))

	return types.VolatilitySummary{
		MeanReturn:       mean,
		StdDev:           stdDev,
		AnnualizedVolPct: stdDev * math.Sqrt(periodsPerYear) * 100,
	}
}
