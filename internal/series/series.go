// Package series sorts and validates raw per-instrument bar sequences before
// they reach the back-adjustment engine.
package series

import (
	"fmt"
	"sort"
	"time"

	"futures-etl/internal/model"
)

// MalformedSeriesError reports structurally invalid input: an empty series,
// a non-positive price, or duplicate trade dates. Date/Symbol identify the
// offending bar when one exists.
type MalformedSeriesError struct {
	Instrument string
	Reason     string
	Date       time.Time
	Symbol     string
}

func (e *MalformedSeriesError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("malformed series %s: %s", e.Instrument, e.Reason)
	}
	return fmt.Sprintf("malformed series %s: %s (date=%s symbol=%s)",
		e.Instrument, e.Reason, e.Date.Format(model.DateLayout), e.Symbol)
}

// Prepare returns a copy of bars sorted ascending by trade date, with a stable
// tie-break on input order. It fails on an empty series, on any bar with a
// non-positive open or close, and on duplicate trade dates — a duplicate is a
// data-quality fault, not something to merge silently.
func Prepare(instrument string, bars []model.PriceBar) ([]model.PriceBar, error) {
	if len(bars) == 0 {
		return nil, &MalformedSeriesError{Instrument: instrument, Reason: "empty series"}
	}

	out := make([]model.PriceBar, len(bars))
	copy(out, bars)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TradeDate.Before(out[j].TradeDate)
	})

	for i, b := range out {
		if b.Open <= 0 || b.Close <= 0 {
			return nil, &MalformedSeriesError{
				Instrument: instrument,
				Reason:     fmt.Sprintf("non-positive price open=%g close=%g", b.Open, b.Close),
				Date:       b.TradeDate,
				Symbol:     b.Symbol,
			}
		}
		if i > 0 && b.DateKey() == out[i-1].DateKey() {
			return nil, &MalformedSeriesError{
				Instrument: instrument,
				Reason:     "duplicate trade date",
				Date:       b.TradeDate,
				Symbol:     b.Symbol,
			}
		}
	}
	return out, nil
}
