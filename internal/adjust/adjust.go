// Package adjust implements additive ("Panama") back-adjustment of a futures
// price series: every bar is shifted down by the sum of all rollover gaps that
// occur after it, so the whole series reads in the price scale of the most
// recent contract while every day-over-day move except the jump itself is
// preserved.
package adjust

import (
	"fmt"
	"math"
	"time"

	"futures-etl/internal/model"
)

// AdjustmentError reports an arithmetic fault while adjusting one instrument
// (a non-finite gap, suffix sum, or adjusted price). The whole instrument is
// aborted; a non-number must never leak into the output.
type AdjustmentError struct {
	Instrument string
	Reason     string
	Date       time.Time
	Symbol     string
}

func (e *AdjustmentError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("adjust %s: %s", e.Instrument, e.Reason)
	}
	return fmt.Sprintf("adjust %s: %s (date=%s symbol=%s)",
		e.Instrument, e.Reason, e.Date.Format(model.DateLayout), e.Symbol)
}

// Adjust back-adjusts a time-sorted instrument series.
//
// Bar i is a rollover iff its symbol differs from bar i-1's (the first bar is
// never one). The gap attributed to a rollover bar is open[i] - close[i-1].
// CumFutureGap[i] is the strict suffix sum of gaps after i, accumulated in a
// single reverse pass, so CumFutureGap is 0 for the last bar and for every
// bar at or after the last rollover. Consecutive rollovers each contribute
// their own gap; there is no special casing.
func Adjust(instrument string, bars []model.PriceBar) ([]model.AdjustedBar, error) {
	if len(bars) == 0 {
		return nil, &AdjustmentError{Instrument: instrument, Reason: "empty series"}
	}

	out := make([]model.AdjustedBar, len(bars))
	for i, b := range bars {
		ab := model.AdjustedBar{PriceBar: b}
		if i > 0 && b.Symbol != bars[i-1].Symbol {
			ab.IsRollover = true
			ab.Gap = b.Open - bars[i-1].Close
		}
		out[i] = ab
	}

	var future float64
	for i := len(out) - 1; i >= 0; i-- {
		out[i].CumFutureGap = future
		out[i].AdjOpen = out[i].Open - future
		out[i].AdjClose = out[i].Close - future
		future += out[i].Gap

		if !finite(out[i].Gap) || !finite(out[i].CumFutureGap) ||
			!finite(out[i].AdjOpen) || !finite(out[i].AdjClose) || !finite(future) {
			return nil, &AdjustmentError{
				Instrument: instrument,
				Reason:     "non-finite value during back-adjustment",
				Date:       out[i].TradeDate,
				Symbol:     out[i].Symbol,
			}
		}
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
