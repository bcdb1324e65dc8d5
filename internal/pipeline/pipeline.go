// Package pipeline fans the back-adjustment out over instruments. Each
// instrument is an independent unit of work producing an owned adjusted
// series, so the only synchronization is collecting results.
package pipeline

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"futures-etl/internal/adjust"
	"futures-etl/internal/model"
	"futures-etl/internal/series"
	"futures-etl/internal/slogx"
)

// Job is one adjustment unit: the raw bars of one instrument.
type Job struct {
	Instrument string
	Bars       []model.PriceBar
}

// Result is the outcome for one instrument. A structural or arithmetic fault
// sets Err and aborts that instrument only; the others proceed.
type Result struct {
	Instrument string
	Adjusted   []model.AdjustedBar
	Err        error
}

// AdjustAll sorts, validates and back-adjusts every job with up to workers
// goroutines. Worker logs are fanned through a channel logger so lines stay
// atomic. The returned map has one Result per job, keyed by instrument.
func AdjustAll(jobs []Job, workers int) map[string]Result {
	if workers < 1 {
		workers = 1
	}

	logs := make(chan string, 256)
	logger := slogx.NewChanLogger(logs)
	var logWg sync.WaitGroup
	logWg.Add(1)
	go func() {
		defer logWg.Done()
		for s := range logs {
			fmt.Println(s)
		}
	}()

	results := make(chan Result, len(jobs))
	out := make(map[string]Result, len(jobs))
	var collectWg sync.WaitGroup
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		for r := range results {
			out[r.Instrument] = r
		}
	}()

	var g errgroup.Group
	g.SetLimit(workers)
	for _, j := range jobs {
		job := j
		g.Go(func() error {
			results <- adjustOne(job, logger)
			return nil
		})
	}
	g.Wait()
	close(results)
	collectWg.Wait()

	var ok, failed int
	for _, r := range out {
		if r.Err != nil {
			failed++
		} else {
			ok++
		}
	}
	logger.Info("adjustment done", "instruments", len(jobs), "ok", ok, "failed", failed)
	close(logs)
	logWg.Wait()

	return out
}

func adjustOne(job Job, logger *slog.Logger) Result {
	sorted, err := series.Prepare(job.Instrument, job.Bars)
	if err != nil {
		logger.Error("series rejected", "instrument", job.Instrument, "error", err)
		return Result{Instrument: job.Instrument, Err: err}
	}
	adjusted, err := adjust.Adjust(job.Instrument, sorted)
	if err != nil {
		logger.Error("adjustment failed", "instrument", job.Instrument, "error", err)
		return Result{Instrument: job.Instrument, Err: err}
	}

	var rollovers int
	for _, b := range adjusted {
		if b.IsRollover {
			rollovers++
		}
	}
	logger.Info("adjustment ok",
		"instrument", job.Instrument,
		"bars", len(adjusted),
		"rollovers", rollovers,
		"first", adjusted[0].DateKey(),
		"last", adjusted[len(adjusted)-1].DateKey(),
	)
	return Result{Instrument: job.Instrument, Adjusted: adjusted}
}
