package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"futures-etl/internal/model"
)

// CSVProvider reads one <instrument>.csv per instrument from a directory.
// Expected columns: trade_date,symbol,open,close (header required).
type CSVProvider struct {
	dir         string
	instruments []string
}

// NewCSVProvider creates a provider over dir. When instruments is empty the
// directory is scanned for *.csv files.
func NewCSVProvider(dir string, instruments []string) (*CSVProvider, error) {
	if len(instruments) == 0 {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("scan csv dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
				continue
			}
			instruments = append(instruments, strings.TrimSuffix(e.Name(), ".csv"))
		}
	}
	if len(instruments) == 0 {
		return nil, fmt.Errorf("no csv files in %s", dir)
	}
	return &CSVProvider{dir: dir, instruments: instruments}, nil
}

func (p *CSVProvider) GetName() string { return "CSV" }

func (p *CSVProvider) Instruments() []string { return append([]string(nil), p.instruments...) }

func (p *CSVProvider) Close() error { return nil }

func (p *CSVProvider) Bars(instrument string) ([]model.PriceBar, error) {
	path := filepath.Join(p.dir, instrument+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	col := columnIndex(records[0])
	for _, name := range []string{"trade_date", "symbol", "open", "close"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, name)
		}
	}

	bars := make([]model.PriceBar, 0, len(records)-1)
	for i, rec := range records[1:] {
		d, err := time.Parse(model.DateLayout, rec[col["trade_date"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad trade_date: %w", path, i+2, err)
		}
		o, err := strconv.ParseFloat(rec[col["open"]], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad open: %w", path, i+2, err)
		}
		c, err := strconv.ParseFloat(rec[col["close"]], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad close: %w", path, i+2, err)
		}
		bars = append(bars, model.PriceBar{
			TradeDate: d,
			Symbol:    rec[col["symbol"]],
			Open:      o,
			Close:     c,
		})
	}
	return bars, nil
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return col
}
