package app

import (
	"fmt"

	"futures-etl/internal/report"
	"futures-etl/internal/source"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() *Config {
	return LoadConfig()
}

// ProvideTableSaver creates TableSaver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideTableSaver(cfg *Config) (report.TableSaver, error) {
	ts := report.NewTableSaver(cfg.SaveFormat)
	if ts == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return ts, nil
}

// ProvideBarProvider creates the configured bar source (for Wire).
// Caller must call Close() when done.
func ProvideBarProvider(cfg *Config) (source.BarProvider, error) {
	return CreateProvider(cfg)
}
