package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type VolatilityTestSuite struct {
	suite.Suite
}

func TestVolatilitySuite(t *testing.T) {
	suite.Run(t, new(VolatilityTestSuite))
}

func (suite *VolatilityTestSuite) TestConstantReturns() {
	summary := Volatility([]float64{0, 0, 0}, 252)
	suite.Zero(summary.MeanReturn)
	suite.Zero(summary.StdDev)
	suite.Zero(summary.AnnualizedVolPct)
}

func (suite *VolatilityTestSuite) TestSymmetricReturns() {
	// Returns of the [100, 110, 99] close series.
	summary := Volatility([]float64{0.10, -0.10}, 252)
	suite.InDelta(0.0, summary.MeanReturn, 1e-12)
	suite.Greater(summary.StdDev, 0.0)

	// Sample std dev of {0.1, -0.1} is sqrt(2*0.01/1) = 0.1*sqrt(2).
	want := 0.1 * math.Sqrt2
	suite.InDelta(want, summary.StdDev, 1e-12)
	suite.InDelta(want*math.Sqrt(252)*100, summary.AnnualizedVolPct, 1e-9)
}

func (suite *VolatilityTestSuite) TestKnownSeries() {
	returns := []float64{0.01, 0.02, 0.03, 0.04}
	summary := Volatility(returns, 252)
	suite.InDelta(0.025, summary.MeanReturn, 1e-12)

	// Sample variance with n-1: sum of squared deviations = 0.0005, / 3.
	suite.InDelta(math.Sqrt(0.0005/3), summary.StdDev, 1e-12)
}

func (suite *VolatilityTestSuite) TestTooFewReturns() {
	suite.Zero(Volatility(nil, 252))
	suite.Zero(Volatility([]float64{0.05}, 252))
}

func (suite *VolatilityTestSuite) TestPeriodsPerYearScaling() {
	returns := []float64{0.10, -0.10}
	daily := Volatility(returns, 252)
	weekly := Volatility(returns, 52)
	suite.Equal(daily.StdDev, weekly.StdDev)
	suite.InDelta(daily.AnnualizedVolPct/weekly.AnnualizedVolPct, math.Sqrt(252.0/52.0), 1e-9)
}
