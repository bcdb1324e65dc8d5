package report

import (
	"encoding/json"
	"os"
)

// JSONSaver writes tables as an indented JSON array. NaN feature cells become
// null via NullFloat.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) SaveAdjusted(rows []AdjustedRecord, path string) error {
	return writeJSON(path, rows)
}

func (JSONSaver) SaveFeatures(rows []FeatureRecord, path string) error {
	return writeJSON(path, rows)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
