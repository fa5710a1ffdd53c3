package types

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/tickerlens/tickerlens/pkg/errors"
)

// PriceBar is one trading day's OHLCV record. Prices are exact decimals so
// report-facing figures do not drift; volume may be absent for some sources.
type PriceBar struct {
	Timestamp time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    optional.Option[int64]
}

// ValidateSeries checks the series invariants: bars ordered by non-decreasing
// timestamp and no two bars sharing a timestamp. An empty series is valid.
func ValidateSeries(bars []PriceBar) error {
	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Timestamp.Before(bars[i-1].Timestamp):
			return errors.Newf(errors.ErrCodeUnorderedSeries,
				"bar %d (%s) is earlier than bar %d (%s)",
				i, bars[i].Timestamp.Format("2006-01-02"),
				i-1, bars[i-1].Timestamp.Format("2006-01-02"))
		case bars[i].Timestamp.Equal(bars[i-1].Timestamp):
			return errors.Newf(errors.ErrCodeDuplicateTimestamp,
				"duplicate bar timestamp %s", bars[i].Timestamp.Format("2006-01-02"))
		}
	}

	return nil
}

// ValidateVolumes checks that every bar carries a volume. The quote table
// cannot be rendered without it, so absence is rejected at ingestion instead
// of surfacing deep inside formatting.
func ValidateVolumes(bars []PriceBar) error {
	for i, bar := range bars {
		if bar.Volume.IsNone() {
			return errors.Newf(errors.ErrCodeMissingVolume,
				"bar %d (%s) has no volume", i, bar.Timestamp.Format("2006-01-02"))
		}
	}

	return nil
}
