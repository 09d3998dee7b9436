package ingest

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"sensor-plotter/models"
	"sensor-plotter/utils"
)

// WriteSimulatedCapture generates a synthetic capture file in the shape
// the recording device produces: a YAML sequence of [sample, stamp]
// pairs, where the sample holds acceleration/angular-velocity/
// temperature and the stamp holds the split epoch timestamp. Sample and
// stamp travel as two adjacent records, which is exactly the one-row
// misalignment the analysis side later corrects.
func WriteSimulatedCapture(path string, n int, start time.Time, period time.Duration) error {
	if n <= 0 {
		return fmt.Errorf("simulate: sample count must be positive, got %d", n)
	}
	if period <= 0 {
		period = 100 * time.Millisecond
	}

	pairs := make([][]any, 0, n)
	var step float64
	for i := 0; i < n; i++ {
		sample := models.IMUSample{
			Acceleration: models.Vec3{
				X: 0.02*math.Sin(step) + rand.Float64()*0.005,
				Y: 0.01*math.Cos(step) + rand.Float64()*0.005,
				Z: 1.0 + rand.Float64()*0.002, // resting on the bench: ~1 g
			},
			AngularVelocity: models.Vec3{
				X: 0.1*math.Sin(step*2) + rand.Float64()*0.05,
				Y: 0.1*math.Cos(step*2) + rand.Float64()*0.05,
				Z: 0.05 + rand.Float64()*0.02,
			},
			Temperature: 35.0 + rand.Float64()*2.0,
		}
		step += 0.01

		secs, nanos := utils.SplitEpoch(start.Add(time.Duration(i) * period))
		stamp := models.EpochStamp{Secs: secs, Nanos: nanos}

		pairs = append(pairs, []any{sample, stamp})
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create capture dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create capture file: %w", err)
	}
	enc := yaml.NewEncoder(f)
	if err := enc.Encode(pairs); err != nil {
		f.Close()
		return fmt.Errorf("encode capture file %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finish capture file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close capture file %s: %w", path, err)
	}

	utils.L().Info("wrote %d simulated samples to %s (period=%s)", n, path, period)
	return nil
}
