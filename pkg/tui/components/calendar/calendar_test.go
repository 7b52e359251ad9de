package calendar

import (
	"strings"
	"testing"
)

// plain options render without styling so assertions see raw text.
func plainOptions() Options {
	return Options{ShowHeader: true}
}

func janCells() []Day {
	// January 2026: four leading blanks, 31 days, 35 cells total.
	cells := make([]Day, 35)
	for d := 1; d <= 31; d++ {
		cells[4+d-1] = Day{Day: d, Date: "2026-01-" + pad(d)}
	}
	return cells
}

func pad(d int) string {
	if d < 10 {
		return "0" + string(rune('0'+d))
	}
	return string(rune('0'+d/10)) + string(rune('0'+d%10))
}

func TestRenderGeometry(t *testing.T) {
	out := Render(janCells(), plainOptions())
	lines := strings.Split(out, "\n")

	// Header plus five week rows.
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(lines))
	}
	if !strings.Contains(lines[1], " 1") {
		t.Errorf("first week row missing day 1: %q", lines[1])
	}
	if !strings.Contains(lines[5], "31") {
		t.Errorf("last week row missing day 31: %q", lines[5])
	}
}

func TestRenderWithoutHeader(t *testing.T) {
	opts := plainOptions()
	opts.ShowHeader = false
	out := Render(janCells(), opts)
	if len(strings.Split(out, "\n")) != 5 {
		t.Errorf("expected 5 rows without header")
	}
}

func TestRenderMarkers(t *testing.T) {
	cells := janCells()
	cells[4+14] = Day{Day: 15, HasLog: true, EventCount: 2}

	out := Render(cells, plainOptions())
	if !strings.Contains(out, "15•+2") {
		t.Errorf("missing log and event markers:\n%s", out)
	}
}

func TestRenderCapsEventCount(t *testing.T) {
	cells := janCells()
	cells[4] = Day{Day: 1, EventCount: 14}

	out := Render(cells, plainOptions())
	if !strings.Contains(out, "+9") {
		t.Errorf("event count should cap at 9:\n%s", out)
	}
}

func TestDetail(t *testing.T) {
	d := Day{Day: 15, Date: "2026-01-15", InJapan: true, Holiday: "成人の日"}
	out := Detail(d, []string{"看房", "晚餐"}, plainOptions())

	for _, want := range []string{"2026-01-15", "🇯🇵", "成人の日", "· 看房", "· 晚餐"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
}
