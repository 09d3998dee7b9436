package utils

import (
	"testing"
	"time"
)

func TestEpochToTime(t *testing.T) {
	got := EpochToTime(1, 500000000)
	want := time.Date(1970, 1, 1, 0, 0, 1, 500000000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", got.Location())
	}
}

func TestSplitEpochRoundTrip(t *testing.T) {
	orig := time.Date(2025, 6, 1, 9, 30, 15, 123456789, time.UTC)
	secs, nanos := SplitEpoch(orig)
	if got := EpochToTime(secs, nanos); !got.Equal(orig) {
		t.Fatalf("round trip: got %v, want %v", got, orig)
	}
}

func TestFormatClock(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 30, 15, 0, time.UTC)
	if got := FormatClock(at); got != "09:30:15" {
		t.Fatalf("got %q", got)
	}
}
