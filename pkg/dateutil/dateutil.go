// Package dateutil provides the calendar arithmetic shared by the printers,
// the TUI and the journal: week numbering, week ranges, and month grid
// geometry. All date keys are ISO yyyy-mm-dd strings in local time.
package dateutil

import (
	"fmt"
	"time"
)

// LayoutISO is the canonical date key layout.
const LayoutISO = "2006-01-02"

// Format returns the ISO date key for t.
func Format(t time.Time) string {
	return t.Format(LayoutISO)
}

// Parse parses an ISO date key in local time.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, s, time.Local)
}

// WeekNumber computes the week of the year from the day of year and the
// weekday of January 1. Week 1 starts on January 1. Deterministic for any
// date between 1900 and 2100.
func WeekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.YearDay() - 1
	x := days + int(jan1.Weekday()) + 1
	return (x + 6) / 7
}

// WeekRange returns the Monday-through-Sunday range containing t, formatted
// "M/D - M/D". A Sunday resolves to the Monday that follows it, matching the
// dashboard header this feeds.
func WeekRange(t time.Time) string {
	first := t.AddDate(0, 0, 1-int(t.Weekday()))
	last := first.AddDate(0, 0, 6)
	return fmt.Sprintf("%d/%d - %d/%d",
		int(first.Month()), first.Day(), int(last.Month()), last.Day())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index of the first day of the month,
// Sunday == 0.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// GridCells lays out a month as calendar cells in 7-column rows. Blank cells
// before day 1 and after the last day are zero; the result length is always
// a multiple of 7.
func GridCells(year int, month time.Month) []int {
	first := FirstWeekday(year, month)
	days := DaysInMonth(year, month)
	total := ((first + days + 6) / 7) * 7

	cells := make([]int, total)
	for d := 1; d <= days; d++ {
		cells[first+d-1] = d
	}
	return cells
}

// Key builds the ISO date key for a (year, month, day) triple.
func Key(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// PrevMonth steps (year, month) back one month with year rollover.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps (year, month) forward one month with year rollover.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
