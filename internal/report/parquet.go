package report

import (
	"github.com/parquet-go/parquet-go"
)

// ParquetSaver writes tables as Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) SaveAdjusted(rows []AdjustedRecord, path string) error {
	return parquet.WriteFile(path, rows)
}

func (ParquetSaver) SaveFeatures(rows []FeatureRecord, path string) error {
	return parquet.WriteFile(path, rows)
}
