package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// CashFlowRow is one reporting year of the cash-flow statement. Rows missing
// either field are excluded from display.
type CashFlowRow struct {
	PeriodEnd    optional.Option[time.Time]
	FreeCashFlow optional.Option[int64]
}

// Complete reports whether the row carries both fields.
func (r CashFlowRow) Complete() bool {
	return r.PeriodEnd.IsSome() && r.FreeCashFlow.IsSome()
}

// CompanyProfile is quick company metadata used for the report header.
type CompanyProfile struct {
	Symbol   string
	Name     optional.Option[string]
	Exchange optional.Option[string]
	Currency optional.Option[string]
}
