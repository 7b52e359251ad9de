// Package progress models the yearly progress metrics rendered as
// percentage bars.
package progress

import (
	"strings"
	"time"
)

// Metric is a named current/target pair with display hints. Current is
// unbounded and may exceed the target; the rendered percentage clamps.
type Metric struct {
	ID      int64   `json:"id"`
	Label   string  `json:"label"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit,omitempty"`
	Color   string  `json:"color"`
	Icon    string  `json:"iconType"`
}

// Percent returns the clamped completion percentage. A non-positive target
// renders as 0% rather than dividing by zero.
func (m Metric) Percent() float64 {
	if m.Target <= 0 {
		return 0
	}
	pct := m.Current / m.Target * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// List holds metrics in insertion order.
type List []Metric

// Defaults returns the seeded yearly metrics.
func Defaults() List {
	return List{
		{ID: 1, Label: "Trading自動化", Current: 0, Target: 100, Color: "emerald", Icon: "trending"},
		{ID: 2, Label: "Mikai交接", Current: 5, Target: 100, Color: "blue", Icon: "briefcase"},
		{ID: 3, Label: "DJ課程", Current: 0, Target: 40, Unit: "堂", Color: "violet", Icon: "music"},
		{ID: 4, Label: "日文 N2", Current: 10, Target: 100, Color: "rose", Icon: "book"},
		{ID: 5, Label: "體能 (深蹲80kg)", Current: 75, Target: 100, Color: "amber", Icon: "activity"},
		{ID: 6, Label: "Rave社群", Current: 0, Target: 5, Unit: "人", Color: "pink", Icon: "zap"},
	}
}

// Add appends a placeholder metric and returns it for immediate editing.
func (l *List) Add() *Metric {
	m := Metric{
		ID:     l.nextID(),
		Label:  "新目標",
		Target: 100,
		Color:  "emerald",
		Icon:   "activity",
	}
	*l = append(*l, m)
	return &(*l)[len(*l)-1]
}

// EditLabel replaces a metric's label in place. Empty labels are ignored.
func (l List) EditLabel(id int64, label string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return false
	}
	for i := range l {
		if l[i].ID == id {
			l[i].Label = label
			return true
		}
	}
	return false
}

// EditCurrent sets a metric's current value.
func (l List) EditCurrent(id int64, current float64) bool {
	for i := range l {
		if l[i].ID == id {
			l[i].Current = current
			return true
		}
	}
	return false
}

// EditTarget sets a metric's target value.
func (l List) EditTarget(id int64, target float64) bool {
	for i := range l {
		if l[i].ID == id {
			l[i].Target = target
			return true
		}
	}
	return false
}

// Remove deletes the metric with id.
func (l *List) Remove(id int64) bool {
	for i := range *l {
		if (*l)[i].ID == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

func (l List) nextID() int64 {
	id := time.Now().UnixMilli()
	for _, m := range l {
		if m.ID >= id {
			id = m.ID + 1
		}
	}
	return id
}
