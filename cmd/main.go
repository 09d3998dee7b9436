package main

import (
	"flag"
	"fmt"
	"time"

	"sensor-plotter/controller"
	"sensor-plotter/services/ingest"
	"sensor-plotter/utils"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "config/pipeline.yaml", "path to pipeline.yaml")
	logFile := flag.String("log", "", "optional log file path (stdout is always included)")
	verbose := flag.Bool("v", false, "debug logging")
	simulate := flag.Bool("simulate", false, "generate a synthetic capture file instead of analyzing")
	samples := flag.Int("samples", 500, "sample count for -simulate")
	periodMs := flag.Int("period-ms", 100, "sample period in milliseconds for -simulate")
	flag.Parse()

	// ── Logger ───────────────────────────────────────────────────────
	level := utils.INFO
	if *verbose {
		level = utils.DEBUG
	}
	logger := utils.InitLogger(level, *logFile)
	defer logger.Close()

	// ── Config ───────────────────────────────────────────────────────
	cfg, err := utils.LoadPipelineConfig(*configPath)
	if err != nil {
		utils.L().Fatal("load pipeline config: %v", err)
	}

	// ── Simulate mode: write a capture file and stop ─────────────────
	if *simulate {
		period := time.Duration(*periodMs) * time.Millisecond
		if err := ingest.WriteSimulatedCapture(cfg.Input.DataPath, *samples, time.Now(), period); err != nil {
			utils.L().Fatal("simulate: %v", err)
		}
		fmt.Println("\n✓ Synthetic capture written to:", cfg.Input.DataPath)
		return
	}

	// ── Analysis run ─────────────────────────────────────────────────
	pipeline := controller.NewPipelineController(cfg)
	if err := pipeline.Run(); err != nil {
		utils.L().Fatal("pipeline: %v", err)
	}

	fmt.Println("\n✓ Charts written to:", cfg.Output.Dir)
}
