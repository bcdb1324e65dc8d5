package source

import "futures-etl/internal/model"

// BarProvider is the abstraction used by the application when accessing a bar
// source. Implementations own their resources and release them in Close.
type BarProvider interface {
	GetName() string
	Instruments() []string
	Bars(instrument string) ([]model.PriceBar, error)
	Close() error
}
