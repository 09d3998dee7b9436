package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"sensor-plotter/models"
	"sensor-plotter/services/ingest"
	"sensor-plotter/utils"
	"sensor-plotter/views"
)

// PipelineController runs one full analysis pass over one capture
// file: load → normalize → reconstruct timeline → render charts, with
// an optional CSV export of the cleaned table. It is single-shot and
// single-threaded; every failure aborts the run.
type PipelineController struct {
	cfg *utils.PipelineConfig
}

func NewPipelineController(cfg *utils.PipelineConfig) *PipelineController {
	return &PipelineController{cfg: cfg}
}

// Run executes the four pipeline stages in order.
func (pc *PipelineController) Run() error {
	records, err := ingest.LoadRecords(pc.cfg.Input.DataPath)
	if err != nil {
		return err
	}

	frame := models.Normalize(records)
	utils.L().Info("normalized: %d rows × %d columns", frame.Len(), len(frame.Columns()))

	times, err := ReconstructTimeline(frame)
	if err != nil {
		return err
	}
	if frame.Len() == 0 {
		utils.L().Warn("no complete rows after timeline reconstruction; nothing to plot")
		return nil
	}

	if err := os.MkdirAll(pc.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, spec := range pc.cfg.Plots {
		out := filepath.Join(pc.cfg.Output.Dir, spec.Name+"."+pc.cfg.Output.Format)
		if err := views.RenderLineChart(frame, times, spec,
			pc.cfg.Output.WidthCm, pc.cfg.Output.HeightCm, out); err != nil {
			return fmt.Errorf("plot %q: %w", spec.Name, err)
		}
		utils.L().Info("chart written: %s", out)
	}

	if pc.cfg.Output.ExportCSV != "" {
		out := filepath.Join(pc.cfg.Output.Dir, pc.cfg.Output.ExportCSV)
		rows, err := views.ExportFrame(frame, times, out)
		if err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		utils.L().Info("table exported: %s (%d rows)", out, rows)
	}

	return nil
}
