package model

import "time"

// DateLayout is the calendar-date format used everywhere a trade date is
// rendered or keyed (join keys, CSV columns, log fields).
const DateLayout = "2006-01-02"

// PriceBar is one daily bar of the front-month contract active on that date.
// Immutable once produced by the data source.
type PriceBar struct {
	TradeDate time.Time `json:"trade_date"`
	Symbol    string    `json:"symbol"`
	Open      float64   `json:"open"`
	Close     float64   `json:"close"`
}

// DateKey returns the calendar-date join key for the bar.
func (b PriceBar) DateKey() string { return b.TradeDate.Format(DateLayout) }

// AdjustedBar is a PriceBar plus the rollover bookkeeping produced by the
// back-adjustment engine. AdjOpen/AdjClose express the bar in the price scale
// of the most recent contract: raw price minus the sum of all rollover gaps
// strictly after this bar.
type AdjustedBar struct {
	PriceBar
	IsRollover   bool    `json:"is_rollover"`
	Gap          float64 `json:"gap"`
	CumFutureGap float64 `json:"cumulative_future_gap"`
	AdjOpen      float64 `json:"adj_open"`
	AdjClose     float64 `json:"adj_close"`
}

// AlignedRow is one trade date present in both instruments of a pair, carrying
// the adjusted prices the feature pipeline needs.
type AlignedRow struct {
	TradeDate      time.Time `json:"trade_date"`
	PrimaryOpen    float64   `json:"primary_open"`
	PrimaryClose   float64   `json:"primary_close"`
	SecondaryClose float64   `json:"secondary_close"`
}

// FeatureRow is an AlignedRow plus the derived features. Volatility and the
// first LogReturn are NaN where there is insufficient history; Ratio and
// IntradayMomentum are NaN on zero denominators. NaN cells are expected values
// to be filtered downstream, not faults.
type FeatureRow struct {
	AlignedRow
	Ratio            float64 `json:"ratio"`
	LogReturn        float64 `json:"log_return"`
	Volatility       float64 `json:"volatility"`
	IntradayMomentum float64 `json:"intraday_momentum"`
}
