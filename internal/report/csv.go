package report

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVSaver writes tables as CSV. NaN feature cells render as "NaN".
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) SaveAdjusted(rows []AdjustedRecord, path string) error {
	return writeCSV(path, []string{
		"trade_date", "symbol", "open", "close",
		"is_rollover", "gap", "cumulative_future_gap", "adj_open", "adj_close",
	}, len(rows), func(i int) []string {
		r := rows[i]
		return []string{
			r.TradeDate,
			r.Symbol,
			floatStr(r.Open),
			floatStr(r.Close),
			strconv.FormatBool(r.IsRollover),
			floatStr(r.Gap),
			floatStr(r.CumFutureGap),
			floatStr(r.AdjOpen),
			floatStr(r.AdjClose),
		}
	})
}

func (CSVSaver) SaveFeatures(rows []FeatureRecord, path string) error {
	return writeCSV(path, []string{
		"trade_date", "primary_open", "primary_close", "secondary_close",
		"ratio", "log_return", "volatility", "intraday_momentum",
	}, len(rows), func(i int) []string {
		r := rows[i]
		return []string{
			r.TradeDate,
			floatStr(r.PrimaryOpen),
			floatStr(r.PrimaryClose),
			floatStr(r.SecondaryClose),
			floatStr(float64(r.Ratio)),
			floatStr(float64(r.LogReturn)),
			floatStr(float64(r.Volatility)),
			floatStr(float64(r.IntradayMomentum)),
		}
	})
}

func writeCSV(path string, header []string, n int, row func(int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return err
		}
	}
	return nil
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
