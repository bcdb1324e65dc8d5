// Package feature derives the trading features (cross-instrument ratio, log
// return, rolling volatility, intraday momentum) from an aligned pair table.
//
// Feature computation never fails: rows with insufficient history or a zero
// denominator get NaN and computation continues. Consumers filter NaN rows
// downstream, never the pipeline itself.
package feature

import (
	"math"

	"futures-etl/internal/model"
)

// DefaultWindow is the rolling-volatility window in trading days.
const DefaultWindow = 20

// Config is the pipeline's configuration surface.
type Config struct {
	// UnitScale is multiplied into the primary close before dividing by the
	// secondary close, correcting for differing quotation units (e.g. gold in
	// CNY/gram vs silver in CNY/kilogram needs 1000).
	UnitScale float64
	// Window is the rolling-volatility window; non-positive means DefaultWindow.
	Window int
}

func (c Config) normalized() Config {
	if c.UnitScale == 0 {
		c.UnitScale = 1
	}
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	return c
}

// Compute derives one FeatureRow per AlignedRow, in order.
//
//   - Ratio: primary_close*unit_scale / secondary_close, NaN on zero divisor.
//   - LogReturn: ln(primary_close[i]/primary_close[i-1]), NaN at i=0 and
//     whenever the price ratio is not positive.
//   - Volatility: sample (n-1) standard deviation of the log returns in the
//     window ending at i, NaN for i < window-1. NaN returns inside the window
//     are skipped; fewer than two usable returns also yields NaN.
//   - IntradayMomentum: (primary_close-primary_open)/primary_open, NaN on a
//     zero open.
func Compute(rows []model.AlignedRow, cfg Config) []model.FeatureRow {
	cfg = cfg.normalized()

	out := make([]model.FeatureRow, len(rows))
	logRets := make([]float64, len(rows))

	for i, r := range rows {
		fr := model.FeatureRow{AlignedRow: r}

		fr.Ratio = safeDiv(r.PrimaryClose*cfg.UnitScale, r.SecondaryClose)

		fr.LogReturn = math.NaN()
		if i > 0 {
			if v := safeDiv(r.PrimaryClose, rows[i-1].PrimaryClose); v > 0 {
				fr.LogReturn = math.Log(v)
			}
		}
		logRets[i] = fr.LogReturn

		fr.Volatility = math.NaN()
		if i >= cfg.Window-1 {
			fr.Volatility = sampleStd(logRets[i-cfg.Window+1 : i+1])
		}

		fr.IntradayMomentum = safeDiv(r.PrimaryClose-r.PrimaryOpen, r.PrimaryOpen)

		out[i] = fr
	}
	return out
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// sampleStd is the n-1 standard deviation of the non-NaN values in xs,
// NaN when fewer than two remain.
func sampleStd(xs []float64) float64 {
	var n int
	var sum float64
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		n++
		sum += x
	}
	if n < 2 {
		return math.NaN()
	}
	mean := sum / float64(n)
	var ss float64
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}
