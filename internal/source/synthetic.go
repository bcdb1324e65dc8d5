package source

import (
	"fmt"
	"math/rand"
	"time"

	"futures-etl/internal/model"
)

// ContractSpec describes one synthetic instrument: a front-month contract that
// rolls to the next one halfway through the series, with the new contract
// quoted at a different level so the roll produces a visible price gap.
type ContractSpec struct {
	Instrument string
	OldSymbol  string
	NewSymbol  string
	OldLevel   float64 // mean close before the roll
	NewLevel   float64 // mean close after the roll
	CloseVol   float64 // stddev of the close around its level
	OpenNoise  float64 // stddev of the open around the close
}

// DefaultContracts is the gold/silver pair used for demos: gold rolls
// AU2406→AU2408 with a ~+10 level jump, silver stays near 6000.
var DefaultContracts = []ContractSpec{
	{Instrument: "AU", OldSymbol: "AU2406", NewSymbol: "AU2408", OldLevel: 500, NewLevel: 510, CloseVol: 2, OpenNoise: 1},
	{Instrument: "AG", OldSymbol: "AG2406", NewSymbol: "AG2408", OldLevel: 6000, NewLevel: 6000, CloseVol: 50, OpenNoise: 20},
}

// SyntheticProvider generates deterministic mock bar series with a contract
// rollover in the middle. Same seed, same data.
type SyntheticProvider struct {
	specs map[string]ContractSpec
	order []string
	days  int
	seed  int64
	start time.Time
}

// NewSyntheticProvider creates a provider generating days business-day bars
// per instrument, starting 2024-01-01.
func NewSyntheticProvider(specs []ContractSpec, days int, seed int64) *SyntheticProvider {
	if len(specs) == 0 {
		specs = DefaultContracts
	}
	if days < 2 {
		days = 100
	}
	p := &SyntheticProvider{
		specs: make(map[string]ContractSpec, len(specs)),
		days:  days,
		seed:  seed,
		start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, s := range specs {
		p.specs[s.Instrument] = s
		p.order = append(p.order, s.Instrument)
	}
	return p
}

func (p *SyntheticProvider) GetName() string { return "Synthetic" }

func (p *SyntheticProvider) Instruments() []string { return append([]string(nil), p.order...) }

func (p *SyntheticProvider) Close() error { return nil }

// Bars generates the series for one instrument. The RNG is seeded per
// instrument so each series is independent of how many others were requested.
func (p *SyntheticProvider) Bars(instrument string) ([]model.PriceBar, error) {
	cs, ok := p.specs[instrument]
	if !ok {
		return nil, fmt.Errorf("synthetic: unknown instrument %q", instrument)
	}

	rng := rand.New(rand.NewSource(p.seed + int64(instrumentHash(instrument))))
	dates := businessDays(p.start, p.days)
	split := p.days / 2

	bars := make([]model.PriceBar, 0, p.days)
	for i, d := range dates {
		level, symbol := cs.OldLevel, cs.OldSymbol
		if i >= split {
			level, symbol = cs.NewLevel, cs.NewSymbol
		}
		c := level + rng.NormFloat64()*cs.CloseVol
		o := c + rng.NormFloat64()*cs.OpenNoise
		if c <= 0 {
			c = level
		}
		if o <= 0 {
			o = c
		}
		bars = append(bars, model.PriceBar{TradeDate: d, Symbol: symbol, Open: o, Close: c})
	}
	return bars, nil
}

// businessDays returns n consecutive weekdays starting at or after start.
func businessDays(start time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	for d := start; len(out) < n; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		out = append(out, d)
	}
	return out
}

func instrumentHash(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
