package options

import (
	"fmt"
	"testing"
	"time"
)

func TestGetOnDefaultsToToday(t *testing.T) {
	o := &OnOptions{}
	got, err := o.GetOn()
	if err != nil {
		t.Fatalf("get on: %v", err)
	}
	if want := time.Now().Format("2006-01-02"); got != want {
		t.Errorf("date = %q, want %q", got, want)
	}
}

func TestGetOnISO(t *testing.T) {
	o := &OnOptions{OnString: "2026-02-28"}
	got, err := o.GetOn()
	if err != nil || got != "2026-02-28" {
		t.Errorf("date = %q %v", got, err)
	}
}

func TestGetOnShortTakesCurrentYear(t *testing.T) {
	o := &OnOptions{OnString: "2/28"}
	got, err := o.GetOn()
	if err != nil {
		t.Fatalf("get on: %v", err)
	}
	if want := fmt.Sprintf("%d-02-28", time.Now().Year()); got != want {
		t.Errorf("date = %q, want %q", got, want)
	}
}

func TestGetOnRejectsGarbage(t *testing.T) {
	o := &OnOptions{OnString: "not-a-date"}
	if _, err := o.GetOn(); err == nil {
		t.Error("expected parse error")
	}
}
