package location

import (
	"testing"
	"time"
)

func TestDefaultSchedule(t *testing.T) {
	s := Default()

	// The January travel window.
	for _, date := range []string{"2026-01-11", "2026-01-15", "2026-01-24"} {
		if s.Resolve(date) != Japan {
			t.Errorf("%s should be Japan", date)
		}
	}
	if s.Resolve("2026-01-10") != Taiwan {
		t.Error("2026-01-10 should be Taiwan")
	}
	if s.Resolve("2026-01-25") != Taiwan {
		t.Error("2026-01-25 should be Taiwan")
	}

	// The spring block.
	for _, date := range []string{"2026-04-01", "2026-05-15", "2026-06-30"} {
		if s.Resolve(date) != Japan {
			t.Errorf("%s should be Japan", date)
		}
	}
	if s.Resolve("2026-07-01") != Taiwan {
		t.Error("2026-07-01 should be Taiwan")
	}
}

func TestResolveUnknownDateIsTaiwan(t *testing.T) {
	if (Schedule{}).Resolve("2026-09-09") != Taiwan {
		t.Error("unscheduled date should be Taiwan")
	}
}

func TestToggleFlipsSingleDate(t *testing.T) {
	s := Default()

	if got := s.Toggle("2026-01-15"); got != Taiwan {
		t.Fatalf("first toggle = %v, want Taiwan", got)
	}
	if s.Resolve("2026-01-14") != Japan || s.Resolve("2026-01-16") != Japan {
		t.Error("adjacent dates must not change")
	}
	if got := s.Toggle("2026-01-15"); got != Japan {
		t.Fatalf("second toggle = %v, want Japan", got)
	}
}

func TestDaysUntilRoundsUp(t *testing.T) {
	trip := time.Date(2026, time.January, 11, 0, 0, 0, 0, time.Local)

	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	if got := DaysUntil(now, trip); got != 10 {
		t.Errorf("whole days = %d, want 10", got)
	}

	now = time.Date(2026, time.January, 1, 18, 0, 0, 0, time.Local)
	if got := DaysUntil(now, trip); got != 10 {
		t.Errorf("partial day should round up, got %d", got)
	}

	now = time.Date(2026, time.January, 11, 0, 0, 0, 0, time.Local)
	if got := DaysUntil(now, trip); got != 0 {
		t.Errorf("trip day = %d, want 0", got)
	}
}

func TestCodeDisplay(t *testing.T) {
	if Taiwan.Name() != "台灣" || Japan.Name() != "日本" {
		t.Error("unexpected display names")
	}
	if Taiwan.Flag() == Japan.Flag() {
		t.Error("flags must differ")
	}
}
