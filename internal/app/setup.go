package app

import (
	"fmt"
	"strings"

	"futures-etl/internal/source"
)

// CreateProvider creates a BarProvider from config.
func CreateProvider(cfg *Config) (source.BarProvider, error) {
	switch strings.ToLower(cfg.DataProvider) {
	case "synthetic":
		return source.NewSyntheticProvider(source.DefaultContracts, cfg.Days, cfg.Seed), nil
	case "csv":
		return source.NewCSVProvider(cfg.CSVDir, nil)
	default:
		return nil, fmt.Errorf("unsupported data provider: %s. Options: synthetic, csv", cfg.DataProvider)
	}
}
