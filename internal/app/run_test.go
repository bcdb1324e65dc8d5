package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures-etl/internal/report"
	"futures-etl/internal/source"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		DataProvider: "synthetic",
		DataDir:      t.TempDir(),
		SaveFormat:   "csv",
		LogLevel:     "error",
		Primary:      "AU",
		Secondary:    "AG",
		UnitScale:    1000,
		Window:       20,
		Workers:      2,
		Seed:         42,
		Days:         60,
	}
}

func TestRunFlowEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	bp := source.NewSyntheticProvider(nil, cfg.Days, cfg.Seed)
	saver := report.NewTableSaver(cfg.SaveFormat)
	require.NotNil(t, saver)

	require.NoError(t, RunFlow(cfg, bp, saver))

	for _, p := range []string{
		cfg.AdjustedPath("AU", "csv"),
		cfg.AdjustedPath("AG", "csv"),
		cfg.FeaturesPath("csv"),
	} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, info.Size(), p)
	}
}

func TestRunFlowMissingPairInstrument(t *testing.T) {
	cfg := testConfig(t)
	cfg.Secondary = "CU" // not produced by the source

	bp := source.NewSyntheticProvider(nil, cfg.Days, cfg.Seed)
	err := RunFlow(cfg, bp, report.NewTableSaver("csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CU")
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"DATA_PROVIDER", "CSV_DIR", "DATA_DIR", "SAVE_FORMAT", "PROFILE",
		"LOG_LEVEL", "PRIMARY", "SECONDARY", "UNIT_SCALE", "WINDOW",
		"WORKERS", "SEED", "DAYS",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "synthetic", cfg.DataProvider)
	assert.Equal(t, "parquet", cfg.SaveFormat)
	assert.Equal(t, "AU", cfg.Primary)
	assert.Equal(t, "AG", cfg.Secondary)
	assert.Equal(t, 1000.0, cfg.UnitScale)
	assert.Equal(t, 20, cfg.Window)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SAVE_FORMAT", "json")
	t.Setenv("UNIT_SCALE", "1")
	t.Setenv("WINDOW", "5")
	t.Setenv("PRIMARY", "CU")

	cfg := LoadConfig()
	assert.Equal(t, "json", cfg.SaveFormat)
	assert.Equal(t, 1.0, cfg.UnitScale)
	assert.Equal(t, 5, cfg.Window)
	assert.Equal(t, "CU", cfg.Primary)
}

func TestCreateProviderUnsupported(t *testing.T) {
	cfg := testConfig(t)
	cfg.DataProvider = "bloomberg"
	_, err := CreateProvider(cfg)
	assert.Error(t, err)
}
