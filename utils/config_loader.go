package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ─── Plot-level config ──────────────────────────────────────────────────

// PlotSpec describes one chart: which columns to draw against the
// reconstructed timeline, over which row range, and how.
type PlotSpec struct {
	Name     string   `yaml:"name"`
	Columns  []string `yaml:"columns"`
	Centered bool     `yaml:"centered"`  // subtract each column's mean
	StartRow int      `yaml:"start_row"` // inclusive; 0 = from the start
	EndRow   int      `yaml:"end_row"`   // exclusive; 0 = to the end
}

// ─── Pipeline config ────────────────────────────────────────────────────

type InputConfig struct {
	DataPath string `yaml:"data_path"`
}

type OutputConfig struct {
	Dir       string  `yaml:"dir"`
	Format    string  `yaml:"format"` // chart image extension: png, svg, pdf …
	WidthCm   float64 `yaml:"width_cm"`
	HeightCm  float64 `yaml:"height_cm"`
	ExportCSV string  `yaml:"export_csv"` // optional table export, relative to dir
}

// PipelineConfig is the top-level structure for pipeline.yaml.
type PipelineConfig struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Plots  []PlotSpec   `yaml:"plots"`
}

// ─── Loader ─────────────────────────────────────────────────────────────

// LoadPipelineConfig reads and parses pipeline.yaml, filling defaults
// and rejecting specs that could not produce a chart.
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline config: %w", err)
	}
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse pipeline config: %w", err)
	}

	if cfg.Input.DataPath == "" {
		return nil, fmt.Errorf("pipeline config %s: input.data_path is required", path)
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "out"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "png"
	}
	if cfg.Output.WidthCm <= 0 {
		cfg.Output.WidthCm = 24
	}
	if cfg.Output.HeightCm <= 0 {
		cfg.Output.HeightCm = 12
	}
	for i := range cfg.Plots {
		p := &cfg.Plots[i]
		if len(p.Columns) == 0 {
			return nil, fmt.Errorf("pipeline config %s: plot %d has no columns", path, i)
		}
		if p.Name == "" {
			p.Name = p.Columns[0]
		}
		if p.StartRow < 0 || (p.EndRow != 0 && p.EndRow <= p.StartRow) {
			return nil, fmt.Errorf("pipeline config %s: plot %q has bad row range [%d, %d)",
				path, p.Name, p.StartRow, p.EndRow)
		}
	}
	return &cfg, nil
}
