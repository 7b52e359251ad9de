// Package event models free-text calendar events, kept per date and fully
// independent of the daily journal.
package event

import (
	"strings"
	"time"
)

// Event is one calendar entry on a date.
type Event struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Events maps ISO date keys to ordered event lists. Multiple events per
// date are allowed.
type Events map[string][]Event

// On returns the events for date in insertion order.
func (e Events) On(date string) []Event {
	return e[date]
}

// Add appends an event to the date. Empty text is a no-op and returns nil.
func (e Events) Add(date, text string, at time.Time) *Event {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	list := e[date]
	ev := Event{ID: nextID(list, at), Text: text}
	e[date] = append(list, ev)
	return &e[date][len(e[date])-1]
}

// Remove deletes the event with id from the date.
func (e Events) Remove(date string, id int64) bool {
	list := e[date]
	for i := range list {
		if list[i].ID == id {
			e[date] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

func nextID(list []Event, at time.Time) int64 {
	id := at.UnixMilli()
	for _, ev := range list {
		if ev.ID >= id {
			id = ev.ID + 1
		}
	}
	return id
}
