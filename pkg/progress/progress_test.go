package progress

import "testing"

func TestDefaults(t *testing.T) {
	list := Defaults()
	if len(list) != 6 {
		t.Fatalf("defaults = %d metrics, want 6", len(list))
	}
	for _, m := range list {
		if m.Target <= 0 {
			t.Errorf("metric %d has no target", m.ID)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		m    Metric
		want float64
	}{
		{Metric{Current: 50, Target: 100}, 50},
		{Metric{Current: 75, Target: 80}, 93.75},
		{Metric{Current: 3, Target: 40}, 7.5},
		{Metric{Current: 150, Target: 100}, 100},
		{Metric{Current: -5, Target: 100}, 0},
		{Metric{Current: 10, Target: 0}, 0},
	}
	for _, c := range cases {
		if got := c.m.Percent(); got != c.want {
			t.Errorf("Percent(%v/%v) = %v, want %v", c.m.Current, c.m.Target, got, c.want)
		}
	}
}

func TestAddPlaceholder(t *testing.T) {
	list := Defaults()
	m := list.Add()
	if m.Label != "新目標" || m.Target != 100 || m.Current != 0 {
		t.Errorf("placeholder = %+v", m)
	}
	if len(list) != 7 {
		t.Fatalf("list length = %d", len(list))
	}
	for _, existing := range list[:6] {
		if existing.ID == m.ID {
			t.Errorf("placeholder id %d collides", m.ID)
		}
	}
}

func TestEdits(t *testing.T) {
	list := Defaults()

	if !list.EditLabel(3, "DJ 進修") {
		t.Fatal("edit label failed")
	}
	if !list.EditCurrent(3, 12) {
		t.Fatal("edit current failed")
	}
	if !list.EditTarget(3, 50) {
		t.Fatal("edit target failed")
	}

	var got *Metric
	for i := range list {
		if list[i].ID == 3 {
			got = &list[i]
		}
	}
	if got == nil || got.Label != "DJ 進修" || got.Current != 12 || got.Target != 50 {
		t.Errorf("metric after edits = %+v", got)
	}

	if list.EditLabel(999, "x") {
		t.Error("unknown id should fail")
	}
}

func TestRemove(t *testing.T) {
	list := Defaults()
	if !list.Remove(6) {
		t.Fatal("remove failed")
	}
	if len(list) != 5 {
		t.Fatalf("list length = %d", len(list))
	}
	if list.Remove(6) {
		t.Error("second remove should fail")
	}
}
