package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The report groups volumes and cash-flow values with a fixed en locale,
// matching the upstream provider's own presentation.
var enPrinter = message.NewPrinter(language.English)

// formatGrouped renders an integer with thousands separators, e.g. 1,234,567.
func formatGrouped(v int64) string {
	return enPrinter.Sprintf("%d", v)
}

// formatPrice renders a monetary amount with two decimal places.
func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatReturnPct renders a percentage to two decimals, prefixing
// non-negative values with a space so the column lines up with the minus
// sign of negative values (" 1.23" vs "-1.23").
//
// The float is routed through decimal so that midpoint values round half
// away from zero: -1.235 renders "-1.24", 1.235 renders " 1.24".
func formatReturnPct(pct float64) string {
	s := decimal.NewFromFloat(pct).StringFixed(2)
	if !strings.HasPrefix(s, "-") {
		s = " " + s
	}

	return s
}

// formatSignedPct renders a percentage change to two decimals without
// alignment padding, used in the analysis block.
func formatSignedPct(d decimal.Decimal) string {
	return d.StringFixed(2)
}
