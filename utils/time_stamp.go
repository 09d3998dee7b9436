package utils

import "time"

// EpochToTime combines a split epoch timestamp into one absolute
// instant: whole seconds plus a nanosecond remainder. The result is
// UTC; the capture device records no zone, so none is applied.
func EpochToTime(secs, nanos int64) time.Time {
	return time.Unix(secs, nanos).UTC()
}

// SplitEpoch is the inverse of EpochToTime: an instant broken into
// whole seconds and the sub-second nanosecond remainder.
func SplitEpoch(t time.Time) (secs, nanos int64) {
	return t.Unix(), int64(t.Nanosecond())
}

// FormatClock renders an instant as a bare HH:MM:SS wall-clock label.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}
