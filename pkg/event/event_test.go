package event

import (
	"testing"
	"time"
)

var at = time.Date(2026, time.January, 18, 9, 0, 0, 0, time.Local)

func TestAddAndOn(t *testing.T) {
	evs := Events{}

	ev := evs.Add("2026-01-18", "看房", at)
	if ev == nil {
		t.Fatal("add returned nil")
	}
	if got := evs.On("2026-01-18"); len(got) != 1 || got[0].Text != "看房" {
		t.Fatalf("on = %+v", got)
	}
	if len(evs.On("2026-01-19")) != 0 {
		t.Error("other dates must stay empty")
	}
}

func TestAddEmptyTextIsNoOp(t *testing.T) {
	evs := Events{}
	if evs.Add("2026-01-18", "  ", at) != nil {
		t.Fatal("whitespace event should be rejected")
	}
	if len(evs) != 0 {
		t.Error("map should stay empty")
	}
}

func TestMultipleEventsKeepOrder(t *testing.T) {
	evs := Events{}
	evs.Add("2026-01-18", "first", at)
	evs.Add("2026-01-18", "second", at)
	evs.Add("2026-01-18", "third", at)

	got := evs.On("2026-01-18")
	if len(got) != 3 {
		t.Fatalf("events = %d", len(got))
	}
	if got[0].Text != "first" || got[2].Text != "third" {
		t.Errorf("order wrong: %+v", got)
	}
	if got[0].ID == got[1].ID || got[1].ID == got[2].ID {
		t.Error("same-millisecond ids must not collide")
	}
}

func TestRemove(t *testing.T) {
	evs := Events{}
	ev := evs.Add("2026-01-18", "看房", at)

	if !evs.Remove("2026-01-18", ev.ID) {
		t.Fatal("remove failed")
	}
	if len(evs.On("2026-01-18")) != 0 {
		t.Error("event still present")
	}
	if evs.Remove("2026-01-18", ev.ID) {
		t.Error("second remove should fail")
	}
	if evs.Remove("2026-01-19", 1) {
		t.Error("remove on empty date should fail")
	}
}
