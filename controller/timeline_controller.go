package controller

import (
	"fmt"
	"time"

	"sensor-plotter/models"
	"sensor-plotter/utils"
)

// The capture device emits its timestamp one record after the sensor
// values it belongs to, so the two epoch columns land one row below
// their sample in the normalized table.
const (
	SecsColumn  = "secs_since_epoch"
	NanosColumn = "nanos_since_epoch"
)

// ReconstructTimeline corrects the one-row timestamp misalignment and
// derives an absolute UTC instant per surviving row:
//
//  1. shift the two epoch columns up one row,
//  2. drop every row left without a complete epoch pair (at minimum
//     the trailing row),
//  3. combine seconds + nanoseconds into one instant per row,
//  4. drop the raw epoch columns from the frame.
//
// The frame is modified in place; the returned timeline is row-aligned
// with it. An empty frame yields an empty timeline and no error. No
// zone correction is applied: the capture records no zone, so instants
// are reported as UTC (known limitation).
func ReconstructTimeline(f *models.Frame) ([]time.Time, error) {
	if f.Len() == 0 {
		return nil, nil
	}

	if err := f.ShiftUp(SecsColumn, NanosColumn); err != nil {
		return nil, fmt.Errorf("reconstruct timeline: %w", err)
	}
	if err := f.DropNullRows(SecsColumn, NanosColumn); err != nil {
		return nil, fmt.Errorf("reconstruct timeline: %w", err)
	}

	secs, err := f.Ints(SecsColumn)
	if err != nil {
		return nil, fmt.Errorf("reconstruct timeline: %w", err)
	}
	nanos, err := f.Ints(NanosColumn)
	if err != nil {
		return nil, fmt.Errorf("reconstruct timeline: %w", err)
	}

	times := make([]time.Time, f.Len())
	for i := range times {
		times[i] = utils.EpochToTime(secs[i], nanos[i])
		if i > 0 && times[i].Before(times[i-1]) {
			// Chronological order is assumed, not enforced.
			utils.L().Warn("timeline: row %d steps backwards (%s < %s)",
				i, times[i].Format(time.RFC3339Nano), times[i-1].Format(time.RFC3339Nano))
		}
	}

	f.DropColumns(SecsColumn, NanosColumn)

	if n := len(times); n > 0 {
		utils.L().Info("timeline reconstructed: %d rows (%s – %s)",
			n, utils.FormatClock(times[0]), utils.FormatClock(times[n-1]))
	} else {
		utils.L().Info("timeline reconstructed: 0 rows")
	}
	return times, nil
}
