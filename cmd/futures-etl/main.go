package main

import (
	"log/slog"
	"os"

	"futures-etl/internal/app"
	"futures-etl/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Source.Close()

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("using data provider", "provider", a.Source.GetName())
	slog.Info("pair", "primary", cfg.Primary, "secondary", cfg.Secondary,
		"unit_scale", cfg.UnitScale, "window", cfg.Window)
	slog.Info("save dir", "dir", cfg.DataDir, "format", cfg.SaveFormat)

	if err := app.RunFlow(cfg, a.Source, a.Saver); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
