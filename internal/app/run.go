package app

import (
	"fmt"
	"log/slog"
	"os"

	"futures-etl/internal/align"
	"futures-etl/internal/feature"
	"futures-etl/internal/model"
	"futures-etl/internal/pipeline"
	"futures-etl/internal/report"
	"futures-etl/internal/source"
)

// RunFlow executes one pass: load bars → back-adjust per instrument in
// parallel → align the configured pair → compute features → render and save.
// There is no retry and no schedule; the transform is pure, so any failure is
// bad input and running again would not help.
func RunFlow(cfg *Config, bp source.BarProvider, saver report.TableSaver) error {
	instruments := bp.Instruments()
	slog.Info("loading bars", "provider", bp.GetName(), "instruments", len(instruments))

	var jobs []pipeline.Job
	for _, inst := range instruments {
		bars, err := bp.Bars(inst)
		if err != nil {
			slog.Error("load failed", "instrument", inst, "error", err)
			continue
		}
		jobs = append(jobs, pipeline.Job{Instrument: inst, Bars: bars})
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no instruments loaded from %s", bp.GetName())
	}

	results := pipeline.AdjustAll(jobs, cfg.Workers)

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	for _, j := range jobs {
		inst := j.Instrument
		r := results[inst]
		if r.Err != nil {
			continue
		}
		report.RenderAdjusted(os.Stdout,
			fmt.Sprintf("%s adjusted series around the rollover", inst),
			report.AroundRollover(r.Adjusted, 2))
		p := cfg.AdjustedPath(inst, saver.Extension())
		if err := saver.SaveAdjusted(report.AdjustedRecords(r.Adjusted), p); err != nil {
			slog.Warn("could not save adjusted series", "instrument", inst, "path", p, "error", err)
		} else {
			slog.Info("adjusted series saved", "instrument", inst, "path", p)
		}
	}

	primary, err := resultFor(results, cfg.Primary)
	if err != nil {
		return err
	}
	secondary, err := resultFor(results, cfg.Secondary)
	if err != nil {
		return err
	}

	aligned, err := align.Join(cfg.Primary, cfg.Secondary, primary, secondary)
	if err != nil {
		return err
	}
	slog.Info("pair aligned", "primary", cfg.Primary, "secondary", cfg.Secondary, "rows", len(aligned))

	feats := feature.Compute(aligned, feature.Config{UnitScale: cfg.UnitScale, Window: cfg.Window})
	report.RenderFeatures(os.Stdout, "feature table (first complete rows)",
		report.Head(report.DropIncomplete(feats), 5))

	p := cfg.FeaturesPath(saver.Extension())
	if err := saver.SaveFeatures(report.FeatureRecords(feats), p); err != nil {
		return fmt.Errorf("save features: %w", err)
	}
	slog.Info("feature table saved", "path", p, "rows", len(feats))
	return nil
}

func resultFor(results map[string]pipeline.Result, instrument string) ([]model.AdjustedBar, error) {
	r, ok := results[instrument]
	if !ok {
		return nil, fmt.Errorf("instrument %s not available from data source", instrument)
	}
	if r.Err != nil {
		return nil, fmt.Errorf("instrument %s: %w", instrument, r.Err)
	}
	return r.Adjusted, nil
}
