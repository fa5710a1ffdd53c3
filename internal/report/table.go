package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tickerlens/tickerlens/internal/types"
	"github.com/tickerlens/tickerlens/pkg/errors"
)

// cellStyle pads every cell and right-aligns the numeric columns.
func cellStyle(row, col int) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if col > 0 {
		style = style.Align(lipgloss.Right)
	}

	return style
}

// renderQuoteTable renders one row per bar: date, grouped volume, OHLC at two
// decimals, and the return percentage (blank for the first row). The returns
// slice must have length len(bars)-1; volumes must be present on every bar.
func renderQuoteTable(bars []types.PriceBar, returns []float64) (string, error) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle()).
		StyleFunc(cellStyle).
		Headers("Date", "Volume", "Open", "High", "Low", "Close", "Return %")

	for i, bar := range bars {
		volume, err := bar.Volume.Take()
		if err != nil {
			return "", errors.Newf(errors.ErrCodeMissingVolume,
				"bar %s has no volume", bar.Timestamp.Format("2006-01-02"))
		}

		returnPct := ""
		if i > 0 {
			returnPct = formatReturnPct(returns[i-1] * 100)
		}

		t.Row(
			bar.Timestamp.Format("2006-01-02"),
			formatGrouped(volume),
			formatPrice(bar.Open),
			formatPrice(bar.High),
			formatPrice(bar.Low),
			formatPrice(bar.Close),
			returnPct,
		)
	}

	return t.String(), nil
}

// renderCashFlowTable renders the annual free-cash-flow history, skipping
// rows missing either field. Returns "" when nothing is displayable.
func renderCashFlowTable(rows []types.CashFlowRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle()).
		StyleFunc(cellStyle).
		Headers("Year End", "Free Cash Flow")

	displayed := 0

	for _, row := range rows {
		if !row.Complete() {
			continue
		}

		t.Row(
			row.PeriodEnd.Unwrap().Format("2006-01-02"),
			formatGrouped(row.FreeCashFlow.Unwrap()),
		)

		displayed++
	}

	if displayed == 0 {
		return ""
	}

	return t.String()
}
