package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sensor-plotter/models"
	"sensor-plotter/utils"
)

// LoadRecords reads a capture file whose root is a YAML sequence of
// sequences of mappings and flattens it into one ordered record slice.
// Relative order is preserved within and across the inner groups. Any
// read or parse failure aborts the run; there is no partial recovery.
func LoadRecords(path string) ([]models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture file: %w", err)
	}

	var nested [][]models.Record
	if err := yaml.Unmarshal(data, &nested); err != nil {
		return nil, fmt.Errorf("parse capture file %s: %w", path, err)
	}

	var records []models.Record
	for _, group := range nested {
		records = append(records, group...)
	}

	utils.L().Info("loaded %d records (%d groups) from %s", len(records), len(nested), path)
	return records, nil
}
