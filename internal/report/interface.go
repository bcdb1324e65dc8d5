package report

import "strings"

// TableSaver is the abstraction for persisting result tables. The application
// injects the implementation; the pipeline depends only on the interface.
type TableSaver interface {
	SaveAdjusted(rows []AdjustedRecord, path string) error
	SaveFeatures(rows []FeatureRecord, path string) error
	Extension() string
}

// NewTableSaver creates an implementation by format (csv, parquet, json).
// Returns nil if the format is not supported.
func NewTableSaver(format string) TableSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
