package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"futures-etl/internal/model"
)

// AroundRollover returns the slice of bars within radius of the first
// rollover, or the head of the series when there is none. Useful for eyeballing
// the discontinuity and its repair.
func AroundRollover(bars []model.AdjustedBar, radius int) []model.AdjustedBar {
	k := -1
	for i, b := range bars {
		if b.IsRollover {
			k = i
			break
		}
	}
	if k < 0 {
		return Head(bars, 2*radius+1)
	}
	lo, hi := k-radius, k+radius+1
	if lo < 0 {
		lo = 0
	}
	if hi > len(bars) {
		hi = len(bars)
	}
	return bars[lo:hi]
}

// Head returns the first n elements of rows.
func Head[T any](rows []T, n int) []T {
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}

// DropIncomplete filters out feature rows containing any NaN cell, the way a
// consumer would before modeling.
func DropIncomplete(rows []model.FeatureRow) []model.FeatureRow {
	out := make([]model.FeatureRow, 0, len(rows))
	for _, r := range rows {
		if math.IsNaN(r.Ratio) || math.IsNaN(r.LogReturn) ||
			math.IsNaN(r.Volatility) || math.IsNaN(r.IntradayMomentum) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// RenderAdjusted writes a readable table of adjusted bars.
func RenderAdjusted(w io.Writer, title string, bars []model.AdjustedBar) {
	fmt.Fprintf(w, ">>> %s\n", title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "trade_date\tsymbol\tclose\tgap\tcum_future_gap\tadj_close")
	for _, b := range bars {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			b.DateKey(), b.Symbol, b.Close, b.Gap, b.CumFutureGap, b.AdjClose)
	}
	tw.Flush()
}

// RenderFeatures writes a readable table of feature rows.
func RenderFeatures(w io.Writer, title string, rows []model.FeatureRow) {
	fmt.Fprintf(w, ">>> %s\n", title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "trade_date\tprimary_close\tsecondary_close\tratio\tlog_return\tvolatility\tintraday_mom")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.4f\t%.5f\t%.5f\t%.5f\n",
			r.TradeDate.Format(model.DateLayout), r.PrimaryClose, r.SecondaryClose,
			r.Ratio, r.LogReturn, r.Volatility, r.IntradayMomentum)
	}
	tw.Flush()
}
