package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWeekNumber(t *testing.T) {
	cases := []struct {
		in   time.Time
		want int
	}{
		{date(2026, time.January, 1), 1},
		{date(2026, time.January, 3), 1},
		{date(2026, time.January, 4), 2},
		{date(2026, time.January, 15), 3},
		{date(2026, time.December, 31), 53},
	}
	for _, c := range cases {
		if got := WeekNumber(c.in); got != c.want {
			t.Errorf("WeekNumber(%s) = %d, want %d", Format(c.in), got, c.want)
		}
	}
}

func TestWeekRange(t *testing.T) {
	// Thursday resolves to the Monday before it.
	if got := WeekRange(date(2026, time.January, 15)); got != "1/12 - 1/18" {
		t.Errorf("WeekRange(thursday) = %q", got)
	}
	// Sunday resolves to the Monday after it.
	if got := WeekRange(date(2026, time.January, 18)); got != "1/19 - 1/25" {
		t.Errorf("WeekRange(sunday) = %q", got)
	}
	// Month boundary crosses in the label.
	if got := WeekRange(date(2026, time.March, 31)); got != "3/30 - 4/5" {
		t.Errorf("WeekRange(month boundary) = %q", got)
	}
}

func TestGridCells(t *testing.T) {
	// January 2026 starts on a Thursday.
	cells := GridCells(2026, time.January)
	if len(cells)%7 != 0 {
		t.Fatalf("grid length %d is not a multiple of 7", len(cells))
	}
	if len(cells) != 35 {
		t.Fatalf("grid length = %d, want 35", len(cells))
	}
	for i := 0; i < 4; i++ {
		if cells[i] != 0 {
			t.Errorf("cell %d = %d, want blank", i, cells[i])
		}
	}
	if cells[4] != 1 {
		t.Errorf("cell 4 = %d, want 1", cells[4])
	}
	if cells[34] != 31 {
		t.Errorf("cell 34 = %d, want 31", cells[34])
	}

	// February 2026 starts on a Sunday and fits exactly.
	cells = GridCells(2026, time.February)
	if len(cells) != 28 || cells[0] != 1 || cells[27] != 28 {
		t.Fatalf("february grid wrong: len=%d first=%d last=%d", len(cells), cells[0], cells[len(cells)-1])
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2026, time.February); got != 28 {
		t.Errorf("feb 2026 = %d", got)
	}
	if got := DaysInMonth(2028, time.February); got != 29 {
		t.Errorf("feb 2028 = %d", got)
	}
	if got := DaysInMonth(2026, time.December); got != 31 {
		t.Errorf("dec 2026 = %d", got)
	}
}

func TestKey(t *testing.T) {
	if got := Key(2026, time.January, 5); got != "2026-01-05" {
		t.Errorf("Key = %q", got)
	}
}

func TestMonthStepping(t *testing.T) {
	y, m := PrevMonth(2026, time.January)
	if y != 2025 || m != time.December {
		t.Errorf("PrevMonth rollover = %d %v", y, m)
	}
	y, m = NextMonth(2026, time.December)
	if y != 2027 || m != time.January {
		t.Errorf("NextMonth rollover = %d %v", y, m)
	}
	y, m = NextMonth(2026, time.April)
	if y != 2026 || m != time.May {
		t.Errorf("NextMonth = %d %v", y, m)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	in := "2026-04-09"
	parsed, err := Parse(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := Format(parsed); got != in {
		t.Errorf("round trip = %q", got)
	}
}
