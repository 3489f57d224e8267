package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	if got := Location("Not/AZone"); got.String() != DefaultTimezone {
		t.Errorf("Location on bad tz = %q, want %q", got, DefaultTimezone)
	}
	if got := Location("UTC"); got != time.UTC {
		t.Errorf("Location(UTC) = %v", got)
	}
}

func TestDayBounds(t *testing.T) {
	in := time.Date(2026, 3, 10, 17, 42, 3, 0, time.UTC)
	start, end := DayBounds(in)

	if !start.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}

	// half-open: midnight belongs to the day it starts
	if start.Before(start) || !start.Before(end) {
		t.Error("bounds are not a valid half-open interval")
	}
}
