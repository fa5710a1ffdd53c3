// Package analytics derives per-period statistics from a daily price series:
// simple returns, realized volatility, price ranges and percent change.
// Every function is pure; period constants are injected by the caller.
package analytics

import (
	"github.com/tickerlens/tickerlens/internal/types"
	"github.com/tickerlens/tickerlens/pkg/errors"
)

// Returns computes simple per-period returns over consecutive closes,
// returns[i] = (close[i+1] - close[i]) / close[i]. The result has length
// max(len(bars)-1, 0); fewer than two bars yield an empty series.
//
// Prices are converted from their exact decimal representation to float64
// here, a deliberate precision relaxation for the statistics only.
func Returns(bars []types.PriceBar) ([]float64, error) {
	if len(bars) < 2 {
		return []float64{}, nil
	}

	returns := make([]float64, 0, len(bars)-1)

	for i := 1; i < len(bars); i++ {
		prev, _ := bars[i-1].Close.Float64()
		if prev == 0 {
			return nil, errors.Newf(errors.ErrCodeDivisionByZero,
				"close at bar %d is zero", i-1)
		}

		cur, _ := bars[i].Close.Float64()
		returns = append(returns, (cur-prev)/prev)
	}

	return returns, nil
}
