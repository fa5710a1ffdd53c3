package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/tickerlens/tickerlens/internal/types"
	"github.com/tickerlens/tickerlens/pkg/errors"
)

var hundred = decimal.NewFromInt(100)

// PercentChange computes 100 * (lastClose - firstClose) / firstClose in exact
// decimal arithmetic. It requires at least two bars and a non-zero first
// close; decimal division by zero is a hard error, unlike float division.
func PercentChange(bars []types.PriceBar) (decimal.Decimal, error) {
	if len(bars) < 2 {
		return decimal.Zero, errors.NewInsufficientDataErrorf(2, len(bars), "",
			"percent change requires at least 2 bars, got %d", len(bars))
	}

	first := bars[0].Close
	if first.IsZero() {
		return decimal.Zero, errors.New(errors.ErrCodeDivisionByZero, "first close is zero")
	}

	last := bars[len(bars)-1].Close

	return hundred.Mul(last.Sub(first)).Div(first), nil
}
