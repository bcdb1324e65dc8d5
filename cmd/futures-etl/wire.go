//go:build wireinject
// +build wireinject

package main

import (
	"futures-etl/internal/app"
	"futures-etl/internal/report"
	"futures-etl/internal/source"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Source source.BarProvider
	Saver  report.TableSaver
}

// InitializeApp builds App (Config + BarProvider + TableSaver) via Wire.
// Caller must call a.Source.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideBarProvider,
		app.ProvideTableSaver,
		wire.Struct(new(App), "Config", "Source", "Saver"),
	)
	return nil, nil
}
