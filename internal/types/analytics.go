package types

import (
	"github.com/shopspring/decimal"
)

// PriceRange is a low/high pair over some view of the series.
type PriceRange struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

// RangeSummary holds the intraday range (over each bar's high/low) and the
// closing range (over closes only).
type RangeSummary struct {
	Intraday PriceRange
	Closing  PriceRange
}

// VolatilitySummary holds the dispersion statistics of a return series.
// AnnualizedVolPct is the standard deviation scaled by the square root of the
// number of trading periods per year, expressed as a percentage.
type VolatilitySummary struct {
	MeanReturn       float64
	StdDev           float64
	AnnualizedVolPct float64
}
