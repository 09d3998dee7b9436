package views

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sensor-plotter/models"
	"sensor-plotter/utils"
)

func chartFixture(n int) (*models.Frame, []time.Time) {
	records := make([]models.Record, n)
	times := make([]time.Time, n)
	base := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		records[i] = models.Record{
			"acceleration": map[string]any{"z": 1.0 + float64(i)*0.01},
			"temperature":  20.0 + float64(i),
		}
		times[i] = base.Add(time.Duration(i) * 100 * time.Millisecond)
	}
	return models.Normalize(records), times
}

func TestRenderLineChartWritesFile(t *testing.T) {
	f, times := chartFixture(10)
	out := filepath.Join(t.TempDir(), "accel_z.png")

	spec := utils.PlotSpec{Name: "accel_z", Columns: []string{"acceleration.z"}}
	if err := RenderLineChart(f, times, spec, 10, 5, out); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestRenderLineChartOverlayCenteredRange(t *testing.T) {
	f, times := chartFixture(20)
	out := filepath.Join(t.TempDir(), "overlay.png")

	spec := utils.PlotSpec{
		Name:     "overlay",
		Columns:  []string{"acceleration.z", "temperature"},
		Centered: true,
		StartRow: 5,
		EndRow:   15,
	}
	if err := RenderLineChart(f, times, spec, 10, 5, out); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("stat chart: %v", err)
	}
}

func TestRenderLineChartUnknownColumn(t *testing.T) {
	f, times := chartFixture(3)
	spec := utils.PlotSpec{Name: "bad", Columns: []string{"no_such"}}
	err := RenderLineChart(f, times, spec, 10, 5, filepath.Join(t.TempDir(), "bad.png"))
	if err == nil {
		t.Fatal("expected error for unknown column")
	}
}

func TestRenderLineChartRowMismatch(t *testing.T) {
	f, times := chartFixture(5)
	spec := utils.PlotSpec{Name: "bad", Columns: []string{"temperature"}}
	err := RenderLineChart(f, times[:4], spec, 10, 5, filepath.Join(t.TempDir(), "bad.png"))
	if err == nil {
		t.Fatal("expected error for frame/timeline length mismatch")
	}
}

func TestClampRange(t *testing.T) {
	cases := []struct {
		start, end, n      int
		wantStart, wantEnd int
	}{
		{0, 0, 10, 0, 10},
		{2, 5, 10, 2, 5},
		{0, 99, 10, 0, 10},
		{15, 0, 10, 10, 10},
		{-3, 4, 10, 0, 4},
		{0, 0, 0, 0, 0},
	}
	for _, c := range cases {
		s, e := clampRange(c.start, c.end, c.n)
		if s != c.wantStart || e != c.wantEnd {
			t.Fatalf("clampRange(%d,%d,%d) = (%d,%d), want (%d,%d)",
				c.start, c.end, c.n, s, e, c.wantStart, c.wantEnd)
		}
	}
}

func TestMeanSkipsNaN(t *testing.T) {
	xs := []float64{1, math.NaN(), 3}
	if m := mean(xs); m != 2 {
		t.Fatalf("mean: got %g", m)
	}
	if m := mean(nil); m != 0 {
		t.Fatalf("mean of empty: got %g", m)
	}
}
