// Package journal models the per-date daily log: timestamped free-text
// entries plus self-reported energy and stress levels and free-form notes.
package journal

import (
	"strings"
	"time"
)

const (
	// DefaultLevel is used for energy and stress when a log has never had
	// them set.
	DefaultLevel = 4

	// EnergyMax and StressMax bound the self-reported scales.
	EnergyMax = 5
	StressMax = 10

	layoutClock = "15:04"
)

// Entry is a timestamped note inside a day's log.
type Entry struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Time string `json:"time"`
}

// DailyLog is one date's record. There is exactly one per date.
type DailyLog struct {
	Entries []Entry `json:"entries"`
	Energy  int     `json:"energy"`
	Stress  int     `json:"stress"`
	Notes   string  `json:"notes"`
}

// NewLog returns an empty log with default levels.
func NewLog() DailyLog {
	return DailyLog{Energy: DefaultLevel, Stress: DefaultLevel}
}

// AddEntry appends a timestamped entry. Empty text is a no-op and returns
// nil.
func (d *DailyLog) AddEntry(text string, at time.Time) *Entry {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	e := Entry{ID: d.nextEntryID(at), Text: text, Time: at.Format(layoutClock)}
	d.Entries = append(d.Entries, e)
	return &d.Entries[len(d.Entries)-1]
}

// RemoveEntry filters out the entry with id, leaving energy, stress and
// notes untouched.
func (d *DailyLog) RemoveEntry(id int64) bool {
	for i := range d.Entries {
		if d.Entries[i].ID == id {
			d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
			return true
		}
	}
	return false
}

func (d *DailyLog) nextEntryID(at time.Time) int64 {
	id := at.UnixMilli()
	for _, e := range d.Entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

// Logs is the full journal, keyed by ISO date.
type Logs map[string]DailyLog

// Get returns the log for date, or a fresh default-filled log when none
// exists yet.
func (l Logs) Get(date string) DailyLog {
	if d, ok := l[date]; ok {
		return normalize(d)
	}
	return NewLog()
}

// HasEntries reports whether the date has at least one journal entry,
// driving the calendar's "has record" marker.
func (l Logs) HasEntries(date string) bool {
	d, ok := l[date]
	return ok && len(d.Entries) > 0
}

// normalize default-fills levels that were never set. Zero is outside both
// valid scales, so it always means "unset".
func normalize(d DailyLog) DailyLog {
	if d.Energy == 0 {
		d.Energy = DefaultLevel
	}
	if d.Stress == 0 {
		d.Stress = DefaultLevel
	}
	return d
}

// ValidEnergy reports whether v is on the 1–5 energy scale.
func ValidEnergy(v int) bool { return v >= 1 && v <= EnergyMax }

// ValidStress reports whether v is on the 1–10 stress scale.
func ValidStress(v int) bool { return v >= 1 && v <= StressMax }
