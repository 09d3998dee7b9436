package views

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"sensor-plotter/models"
	"sensor-plotter/utils"
)

// RenderLineChart draws one chart of the given columns against the
// reconstructed timeline and saves it to outPath (format chosen by the
// file extension). Each call builds its own plot.Plot, so charts never
// share figure state. A spec with several columns overlays them on one
// axes with a legend; Centered subtracts each column's mean over the
// selected range; StartRow/EndRow restrict the rows drawn.
func RenderLineChart(f *models.Frame, times []time.Time, spec utils.PlotSpec,
	widthCm, heightCm float64, outPath string) error {

	if f.Len() != len(times) {
		return fmt.Errorf("frame has %d rows but timeline has %d", f.Len(), len(times))
	}
	start, end := clampRange(spec.StartRow, spec.EndRow, len(times))

	p := plot.New()
	p.Title.Text = spec.Name
	p.X.Label.Text = "time"
	p.X.Tick.Marker = plot.TimeTicks{Format: "15:04:05"}
	p.Add(plotter.NewGrid())

	for i, col := range spec.Columns {
		ys, err := f.Floats(col)
		if err != nil {
			return err
		}
		ys = ys[start:end]

		var offset float64
		if spec.Centered {
			offset = mean(ys)
		}

		pts := make(plotter.XYs, len(ys))
		for j := range pts {
			t := times[start+j]
			pts[j].X = float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
			pts[j].Y = ys[j] - offset
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("line for column %q: %w", col, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if len(spec.Columns) > 1 {
			p.Legend.Add(col, line)
		}
	}

	w := vg.Length(widthCm) * vg.Centimeter
	h := vg.Length(heightCm) * vg.Centimeter
	if err := p.Save(w, h, outPath); err != nil {
		return fmt.Errorf("save chart %s: %w", outPath, err)
	}
	return nil
}

// clampRange resolves a [start, end) row range against n rows, with
// end == 0 meaning "to the end".
func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end == 0 || end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

// mean ignores NaN cells so a single absent field does not blank a
// centered chart.
func mean(xs []float64) float64 {
	var sum float64
	var n int
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		sum += x
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
