package views

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sensor-plotter/models"
)

func TestExportFrame(t *testing.T) {
	f := models.Normalize([]models.Record{
		{"acceleration": map[string]any{"z": 1.5}, "temperature": 20},
		{"acceleration": map[string]any{"z": 1.6}},
	})
	times := []time.Time{
		time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 9, 30, 0, 500000000, time.UTC),
	}
	path := filepath.Join(t.TempDir(), "table.csv")

	rows, err := ExportFrame(f, times, path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if rows != 2 {
		t.Fatalf("expected 2 rows, got %d", rows)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer file.Close()
	all, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	if len(all) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(all))
	}
	header := all[0]
	if header[0] != "time" || header[1] != "acceleration.z" || header[2] != "temperature" {
		t.Fatalf("header: %v", header)
	}
	if all[1][0] != "2025-06-01T09:30:00Z" {
		t.Fatalf("time cell: %q", all[1][0])
	}
	if all[1][1] != "1.5" || all[1][2] != "20" {
		t.Fatalf("first row: %v", all[1])
	}
	// Absent field exports as an empty cell.
	if all[2][2] != "" {
		t.Fatalf("expected empty temperature cell, got %q", all[2][2])
	}
}

func TestExportFrameRowMismatch(t *testing.T) {
	f := models.Normalize([]models.Record{{"temperature": 20}})
	if _, err := ExportFrame(f, nil, filepath.Join(t.TempDir(), "t.csv")); err == nil {
		t.Fatal("expected error for frame/timeline length mismatch")
	}
}

func TestCSVWriterCountsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	w, err := NewCSVWriter(path, []string{"a", "b"})
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	w.WriteRow([]string{"1", "2"})
	w.WriteRow([]string{"3", "4"})
	if w.Rows() != 2 {
		t.Fatalf("rows: got %d", w.Rows())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
