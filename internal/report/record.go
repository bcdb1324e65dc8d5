// Package report is the reporting-collaborator boundary: it renders adjusted
// series and feature tables for inspection and saves them in csv, json or
// parquet form. Nothing here feeds back into the pipeline.
package report

import (
	"encoding/json"
	"math"

	"futures-etl/internal/model"
)

// NullFloat is a float64 that serializes NaN/Inf as JSON null, matching the
// row-level "missing feature value" semantics. CSV and parquet keep the raw
// float representation.
type NullFloat float64

func (f NullFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// AdjustedRecord is the flat export row for one adjusted bar.
type AdjustedRecord struct {
	TradeDate    string  `json:"trade_date" parquet:"trade_date"`
	Symbol       string  `json:"symbol" parquet:"symbol"`
	Open         float64 `json:"open" parquet:"open"`
	Close        float64 `json:"close" parquet:"close"`
	IsRollover   bool    `json:"is_rollover" parquet:"is_rollover"`
	Gap          float64 `json:"gap" parquet:"gap"`
	CumFutureGap float64 `json:"cumulative_future_gap" parquet:"cumulative_future_gap"`
	AdjOpen      float64 `json:"adj_open" parquet:"adj_open"`
	AdjClose     float64 `json:"adj_close" parquet:"adj_close"`
}

// FeatureRecord is the flat export row for one feature-table row. Feature
// cells may be NaN.
type FeatureRecord struct {
	TradeDate        string    `json:"trade_date" parquet:"trade_date"`
	PrimaryOpen      float64   `json:"primary_open" parquet:"primary_open"`
	PrimaryClose     float64   `json:"primary_close" parquet:"primary_close"`
	SecondaryClose   float64   `json:"secondary_close" parquet:"secondary_close"`
	Ratio            NullFloat `json:"ratio" parquet:"ratio"`
	LogReturn        NullFloat `json:"log_return" parquet:"log_return"`
	Volatility       NullFloat `json:"volatility" parquet:"volatility"`
	IntradayMomentum NullFloat `json:"intraday_momentum" parquet:"intraday_momentum"`
}

// AdjustedRecords converts an adjusted series to export rows.
func AdjustedRecords(bars []model.AdjustedBar) []AdjustedRecord {
	out := make([]AdjustedRecord, len(bars))
	for i, b := range bars {
		out[i] = AdjustedRecord{
			TradeDate:    b.DateKey(),
			Symbol:       b.Symbol,
			Open:         b.Open,
			Close:        b.Close,
			IsRollover:   b.IsRollover,
			Gap:          b.Gap,
			CumFutureGap: b.CumFutureGap,
			AdjOpen:      b.AdjOpen,
			AdjClose:     b.AdjClose,
		}
	}
	return out
}

// FeatureRecords converts a feature table to export rows.
func FeatureRecords(rows []model.FeatureRow) []FeatureRecord {
	out := make([]FeatureRecord, len(rows))
	for i, r := range rows {
		out[i] = FeatureRecord{
			TradeDate:        r.TradeDate.Format(model.DateLayout),
			PrimaryOpen:      r.PrimaryOpen,
			PrimaryClose:     r.PrimaryClose,
			SecondaryClose:   r.SecondaryClose,
			Ratio:            NullFloat(r.Ratio),
			LogReturn:        NullFloat(r.LogReturn),
			Volatility:       NullFloat(r.Volatility),
			IntradayMomentum: NullFloat(r.IntradayMomentum),
		}
	}
	return out
}
