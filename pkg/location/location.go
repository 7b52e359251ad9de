// Package location models the date → location-code schedule. Every date
// resolves to exactly one code; dates absent from the schedule are Taiwan.
package location

import (
	"time"

	"github.com/ycwu/lifedash/pkg/dateutil"
)

// Code identifies where a date is spent.
type Code string

const (
	Taiwan Code = "TW"
	Japan  Code = "JP"
)

// Flag returns the emoji flag for a code.
func (c Code) Flag() string {
	if c == Japan {
		return "🇯🇵"
	}
	return "🇹🇼"
}

// Name returns the display name for a code.
func (c Code) Name() string {
	if c == Japan {
		return "日本"
	}
	return "台灣"
}

// TripStart is the first day of the seeded Japan travel window.
var TripStart = time.Date(2026, time.January, 11, 0, 0, 0, 0, time.Local)

// Schedule maps ISO date keys to location codes.
type Schedule map[string]Code

// Default seeds the schedule with the known 2026 travel windows: January
// 11–24 and all of April through June in Japan.
func Default() Schedule {
	s := Schedule{}
	for d := 11; d <= 24; d++ {
		s[dateutil.Key(2026, time.January, d)] = Japan
	}
	for m := time.April; m <= time.June; m++ {
		days := dateutil.DaysInMonth(2026, m)
		for d := 1; d <= days; d++ {
			s[dateutil.Key(2026, m, d)] = Japan
		}
	}
	return s
}

// Resolve returns the code stored for date, or Taiwan when unset.
func (s Schedule) Resolve(date string) Code {
	if c, ok := s[date]; ok {
		return c
	}
	return Taiwan
}

// Toggle flips a single date between the two codes and returns the new
// value. Adjacent dates are never touched.
func (s Schedule) Toggle(date string) Code {
	next := Japan
	if s.Resolve(date) == Japan {
		next = Taiwan
	}
	s[date] = next
	return next
}

// DaysUntil counts whole days from now until the trip start, rounding up.
func DaysUntil(now, trip time.Time) int {
	d := trip.Sub(now)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}
