package journal

import (
	"testing"
	"time"
)

var noon = time.Date(2026, time.January, 15, 12, 30, 0, 0, time.Local)

func TestGetUnknownDateIsDefaultFilled(t *testing.T) {
	d := Logs{}.Get("2026-01-15")
	if d.Energy != DefaultLevel || d.Stress != DefaultLevel {
		t.Errorf("levels = %d/%d, want defaults", d.Energy, d.Stress)
	}
	if len(d.Entries) != 0 || d.Notes != "" {
		t.Error("fresh log should be empty")
	}
}

func TestGetNormalizesUnsetLevels(t *testing.T) {
	logs := Logs{"2026-01-15": {Stress: 9}}
	d := logs.Get("2026-01-15")
	if d.Energy != DefaultLevel {
		t.Errorf("unset energy = %d, want %d", d.Energy, DefaultLevel)
	}
	if d.Stress != 9 {
		t.Errorf("stress = %d, want 9", d.Stress)
	}
}

func TestAddEntry(t *testing.T) {
	d := NewLog()

	e := d.AddEntry("完成串接", noon)
	if e == nil {
		t.Fatal("add returned nil")
	}
	if e.Time != "12:30" {
		t.Errorf("time = %q", e.Time)
	}
	if len(d.Entries) != 1 {
		t.Fatalf("entries = %d", len(d.Entries))
	}

	if d.AddEntry("   ", noon) != nil {
		t.Error("whitespace entry should be rejected")
	}
}

func TestAddEntryIDsAreUniqueWithinSameMillisecond(t *testing.T) {
	d := NewLog()
	a := d.AddEntry("one", noon)
	b := d.AddEntry("two", noon)
	if a.ID == b.ID {
		t.Errorf("ids collide: %d", a.ID)
	}
}

func TestRemoveEntryPreservesOtherFields(t *testing.T) {
	d := DailyLog{Energy: 2, Stress: 8, Notes: "hard day"}
	e := d.AddEntry("only one", noon)

	if !d.RemoveEntry(e.ID) {
		t.Fatal("remove failed")
	}
	if len(d.Entries) != 0 {
		t.Fatalf("entries = %d", len(d.Entries))
	}
	if d.Energy != 2 || d.Stress != 8 || d.Notes != "hard day" {
		t.Errorf("fields clobbered: %+v", d)
	}

	if d.RemoveEntry(e.ID) {
		t.Error("second remove should fail")
	}
}

func TestHasEntries(t *testing.T) {
	logs := Logs{}
	if logs.HasEntries("2026-01-15") {
		t.Error("empty journal has no entries")
	}

	d := logs.Get("2026-01-15")
	d.AddEntry("note", noon)
	logs["2026-01-15"] = d
	if !logs.HasEntries("2026-01-15") {
		t.Error("expected entries")
	}

	// A log with only levels set does not count as a record marker.
	logs["2026-01-16"] = DailyLog{Energy: 5}
	if logs.HasEntries("2026-01-16") {
		t.Error("levels alone should not mark the day")
	}
}

func TestValidRanges(t *testing.T) {
	if ValidEnergy(0) || ValidEnergy(6) || !ValidEnergy(1) || !ValidEnergy(5) {
		t.Error("energy range wrong")
	}
	if ValidStress(0) || ValidStress(11) || !ValidStress(1) || !ValidStress(10) {
		t.Error("stress range wrong")
	}
}
