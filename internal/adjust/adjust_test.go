package adjust

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures-etl/internal/model"
)

func mkBars(symbols []string, opens, closes []float64) []model.PriceBar {
	bars := make([]model.PriceBar, len(symbols))
	for i := range symbols {
		bars[i] = model.PriceBar{
			TradeDate: time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC),
			Symbol:    symbols[i],
			Open:      opens[i],
			Close:     closes[i],
		}
	}
	return bars
}

func TestAdjustSingleRollover(t *testing.T) {
	// Rollover at index 2, gap = 115 - 102 = 13.
	bars := mkBars(
		[]string{"A", "A", "B"},
		[]float64{99, 101, 115},
		[]float64{100, 102, 110},
	)

	out, err := Adjust("AU", bars)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.False(t, out[0].IsRollover)
	assert.False(t, out[1].IsRollover)
	assert.True(t, out[2].IsRollover)

	assert.Equal(t, []float64{0, 0, 13}, gaps(out))
	assert.Equal(t, []float64{13, 13, 0}, cumFutureGaps(out))
	assert.Equal(t, []float64{87, 89, 110}, adjCloses(out))
	assert.Equal(t, []float64{86, 88, 115}, adjOpens(out))
}

func TestAdjustNoRolloverIsIdentity(t *testing.T) {
	bars := mkBars(
		[]string{"A", "A", "A", "A"},
		[]float64{99, 101, 100.5, 102},
		[]float64{100, 102, 101, 103},
	)

	out, err := Adjust("AU", bars)
	require.NoError(t, err)
	for i, b := range out {
		assert.False(t, b.IsRollover)
		assert.Zero(t, b.Gap)
		assert.Zero(t, b.CumFutureGap)
		assert.Equal(t, bars[i].Open, b.AdjOpen)
		assert.Equal(t, bars[i].Close, b.AdjClose)
	}
}

func TestAdjustLastBarUnchanged(t *testing.T) {
	bars := mkBars(
		[]string{"A", "B", "B", "C"},
		[]float64{99, 105, 106, 112},
		[]float64{100, 104, 107, 111},
	)

	out, err := Adjust("AU", bars)
	require.NoError(t, err)

	last := out[len(out)-1]
	assert.Zero(t, last.CumFutureGap)
	assert.Equal(t, bars[3].Open, last.AdjOpen)
	assert.Equal(t, bars[3].Close, last.AdjClose)
}

func TestAdjustPreservesIntradayRange(t *testing.T) {
	bars := mkBars(
		[]string{"A", "B", "C"},
		[]float64{99, 110, 120},
		[]float64{101, 112, 119},
	)

	out, err := Adjust("AU", bars)
	require.NoError(t, err)
	for i, b := range out {
		assert.InDelta(t, bars[i].Close-bars[i].Open, b.AdjClose-b.AdjOpen, 1e-12)
	}
}

func TestAdjustSuffixSumStrictlyExclusive(t *testing.T) {
	// One rollover at k=2 with gap g: CumFutureGap is g before k, 0 from k on.
	bars := mkBars(
		[]string{"A", "A", "B", "B"},
		[]float64{99, 101, 107, 108},
		[]float64{100, 102, 106, 109},
	)

	out, err := Adjust("AU", bars)
	require.NoError(t, err)

	g := 107.0 - 102.0
	assert.Equal(t, []float64{g, g, 0, 0}, cumFutureGaps(out))
}

func TestAdjustConsecutiveRollovers(t *testing.T) {
	// Adjacent symbol changes each contribute their own gap to the suffix sum.
	bars := mkBars(
		[]string{"A", "B", "C"},
		[]float64{99, 110, 120},
		[]float64{100, 111, 121},
	)

	out, err := Adjust("AU", bars)
	require.NoError(t, err)

	g1 := 110.0 - 100.0
	g2 := 120.0 - 111.0
	assert.Equal(t, []float64{g1 + g2, g2, 0}, cumFutureGaps(out))
	assert.Equal(t, []float64{100 - g1 - g2, 111 - g2, 121}, adjCloses(out))
}

func TestAdjustSingleBar(t *testing.T) {
	bars := mkBars([]string{"A"}, []float64{99}, []float64{100})

	out, err := Adjust("AU", bars)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.False(t, out[0].IsRollover)
	assert.Zero(t, out[0].CumFutureGap)
	assert.Equal(t, 100.0, out[0].AdjClose)
}

func TestAdjustIdempotentOnAdjustedSeries(t *testing.T) {
	bars := mkBars(
		[]string{"A", "A", "B"},
		[]float64{99, 101, 115},
		[]float64{100, 102, 110},
	)
	first, err := Adjust("AU", bars)
	require.NoError(t, err)

	// The adjusted series reads as one continuous contract; a second pass
	// must find no rollovers and change nothing.
	rebars := make([]model.PriceBar, len(first))
	for i, b := range first {
		rebars[i] = model.PriceBar{TradeDate: b.TradeDate, Symbol: "CONT", Open: b.AdjOpen, Close: b.AdjClose}
	}
	second, err := Adjust("AU", rebars)
	require.NoError(t, err)
	for i := range second {
		assert.Equal(t, first[i].AdjOpen, second[i].AdjOpen)
		assert.Equal(t, first[i].AdjClose, second[i].AdjClose)
	}
}

func TestAdjustNonFiniteAborts(t *testing.T) {
	bars := mkBars(
		[]string{"A", "B"},
		[]float64{99, math.Inf(1)},
		[]float64{100, 105},
	)

	_, err := Adjust("AU", bars)
	require.Error(t, err)

	var ae *AdjustmentError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "AU", ae.Instrument)
}

func TestAdjustEmptyInput(t *testing.T) {
	_, err := Adjust("AU", nil)
	var ae *AdjustmentError
	require.True(t, errors.As(err, &ae))
}

func gaps(out []model.AdjustedBar) []float64 {
	v := make([]float64, len(out))
	for i, b := range out {
		v[i] = b.Gap
	}
	return v
}

func cumFutureGaps(out []model.AdjustedBar) []float64 {
	v := make([]float64, len(out))
	for i, b := range out {
		v[i] = b.CumFutureGap
	}
	return v
}

func adjCloses(out []model.AdjustedBar) []float64 {
	v := make([]float64, len(out))
	for i, b := range out {
		v[i] = b.AdjClose
	}
	return v
}

func adjOpens(out []model.AdjustedBar) []float64 {
	v := make([]float64, len(out))
	for i, b := range out {
		v[i] = b.AdjOpen
	}
	return v
}
