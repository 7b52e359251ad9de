// Package app provides high-level operations over the persisted dashboard
// entities. It wraps persistence and entity transformations so the TUI and
// CLI runners can share logic. Every mutation re-reads the freshest
// persisted document before applying its change and writes through
// synchronously, so rapid edits to different fields of the same document
// never clobber each other.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/ycwu/lifedash/pkg/dateutil"
	"github.com/ycwu/lifedash/pkg/event"
	"github.com/ycwu/lifedash/pkg/holiday"
	"github.com/ycwu/lifedash/pkg/journal"
	"github.com/ycwu/lifedash/pkg/location"
	"github.com/ycwu/lifedash/pkg/progress"
	"github.com/ycwu/lifedash/pkg/store"
	"github.com/ycwu/lifedash/pkg/task"
)

// Service provides dashboard operations backed by persistence.
type Service struct {
	Persistence store.Persistence

	// Now is the clock used for ids, timestamps and alerts. Nil means
	// time.Now.
	Now func() time.Time
}

var errNoPersistence = errors.New("app: no persistence configured")

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// --- Tasks

// Tasks returns the weekly goal list, seeding the documented defaults when
// nothing is stored yet.
func (s *Service) Tasks() task.List {
	list := task.DefaultGoals()
	if s.Persistence != nil {
		s.Persistence.Get(store.KeyTasks, &list)
	}
	return list
}

// AddTask appends a new goal. Empty text is silently ignored.
func (s *Service) AddTask(text, tag string) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	list := s.Tasks()
	t := list.Add(text, tag)
	if t == nil {
		return nil, nil
	}
	added := *t
	if err := s.Persistence.Set(store.KeyTasks, list); err != nil {
		return nil, err
	}
	return &added, nil
}

// ToggleTask flips completion for the goal with id.
func (s *Service) ToggleTask(id int64) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	list := s.Tasks()
	t := list.Toggle(id)
	if t == nil {
		return nil, fmt.Errorf("app: task %d not found", id)
	}
	toggled := *t
	if err := s.Persistence.Set(store.KeyTasks, list); err != nil {
		return nil, err
	}
	return &toggled, nil
}

// EditTask replaces the text of the goal with id. Empty text leaves the
// goal unchanged.
func (s *Service) EditTask(id int64, text string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	list := s.Tasks()
	if !list.EditText(id, text) {
		return nil
	}
	return s.Persistence.Set(store.KeyTasks, list)
}

// RemoveTask deletes the goal with id.
func (s *Service) RemoveTask(id int64) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	list := s.Tasks()
	if !list.Remove(id) {
		return fmt.Errorf("app: task %d not found", id)
	}
	return s.Persistence.Set(store.KeyTasks, list)
}

// --- Progress metrics

// Progress returns the yearly metrics, seeding defaults when unset.
func (s *Service) Progress() progress.List {
	list := progress.Defaults()
	if s.Persistence != nil {
		s.Persistence.Get(store.KeyProgress, &list)
	}
	return list
}

// AddMetric appends a placeholder metric for subsequent edits.
func (s *Service) AddMetric() (*progress.Metric, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	list := s.Progress()
	m := list.Add()
	added := *m
	if err := s.Persistence.Set(store.KeyProgress, list); err != nil {
		return nil, err
	}
	return &added, nil
}

// EditMetric applies the provided field edits to the metric with id. Nil
// fields are left alone.
func (s *Service) EditMetric(id int64, label *string, current, target *float64) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	list := s.Progress()
	changed := false
	if label != nil && list.EditLabel(id, *label) {
		changed = true
	}
	if current != nil && list.EditCurrent(id, *current) {
		changed = true
	}
	if target != nil && list.EditTarget(id, *target) {
		changed = true
	}
	if !changed {
		return nil
	}
	return s.Persistence.Set(store.KeyProgress, list)
}

// RemoveMetric deletes the metric with id.
func (s *Service) RemoveMetric(id int64) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	list := s.Progress()
	if !list.Remove(id) {
		return fmt.Errorf("app: metric %d not found", id)
	}
	return s.Persistence.Set(store.KeyProgress, list)
}

// --- Daily journal

// Logs returns the full journal map.
func (s *Service) Logs() journal.Logs {
	logs := journal.Logs{}
	if s.Persistence != nil {
		s.Persistence.Get(store.KeyDailyLogs, &logs)
	}
	return logs
}

// Log returns the record for one date, default-filled when absent.
func (s *Service) Log(date string) journal.DailyLog {
	return s.Logs().Get(date)
}

// AddJournalEntry appends a timestamped entry to the date's log, creating
// the record on first write. Empty text is silently ignored.
func (s *Service) AddJournalEntry(date, text string) (*journal.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	logs := s.Logs()
	d := logs.Get(date)
	e := d.AddEntry(text, s.now())
	if e == nil {
		return nil, nil
	}
	added := *e
	logs[date] = d
	if err := s.Persistence.Set(store.KeyDailyLogs, logs); err != nil {
		return nil, err
	}
	return &added, nil
}

// RemoveJournalEntry filters the entry out of the date's log. Energy,
// stress and notes for the date are untouched.
func (s *Service) RemoveJournalEntry(date string, id int64) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	logs := s.Logs()
	d := logs.Get(date)
	if !d.RemoveEntry(id) {
		return fmt.Errorf("app: entry %d not found on %s", id, date)
	}
	logs[date] = d
	return s.Persistence.Set(store.KeyDailyLogs, logs)
}

// SetEnergy updates the date's energy level against the freshest persisted
// record. Values outside 1-5 are ignored.
func (s *Service) SetEnergy(date string, v int) error {
	if !journal.ValidEnergy(v) {
		return nil
	}
	return s.updateLog(date, func(d *journal.DailyLog) { d.Energy = v })
}

// SetStress updates the date's stress level. Values outside 1-10 are
// ignored.
func (s *Service) SetStress(date string, v int) error {
	if !journal.ValidStress(v) {
		return nil
	}
	return s.updateLog(date, func(d *journal.DailyLog) { d.Stress = v })
}

// SetNotes replaces the date's notes.
func (s *Service) SetNotes(date, notes string) error {
	return s.updateLog(date, func(d *journal.DailyLog) { d.Notes = notes })
}

func (s *Service) updateLog(date string, mutate func(*journal.DailyLog)) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	logs := s.Logs()
	d := logs.Get(date)
	mutate(&d)
	logs[date] = d
	return s.Persistence.Set(store.KeyDailyLogs, logs)
}

// --- Calendar events

// Events returns the full event map.
func (s *Service) Events() event.Events {
	evs := event.Events{}
	if s.Persistence != nil {
		s.Persistence.Get(store.KeyEvents, &evs)
	}
	return evs
}

// AddEvent appends an event to the date. Empty text is silently ignored.
func (s *Service) AddEvent(date, text string) (*event.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	evs := s.Events()
	ev := evs.Add(date, text, s.now())
	if ev == nil {
		return nil, nil
	}
	added := *ev
	if err := s.Persistence.Set(store.KeyEvents, evs); err != nil {
		return nil, err
	}
	return &added, nil
}

// RemoveEvent deletes the event with id from the date.
func (s *Service) RemoveEvent(date string, id int64) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	evs := s.Events()
	if !evs.Remove(date, id) {
		return fmt.Errorf("app: event %d not found on %s", id, date)
	}
	return s.Persistence.Set(store.KeyEvents, evs)
}

// --- Location schedule

// Schedule returns the location schedule, seeding the travel-window
// defaults when nothing is stored yet.
func (s *Service) Schedule() location.Schedule {
	sched := location.Default()
	if s.Persistence != nil {
		s.Persistence.Get(store.KeyLocation, &sched)
	}
	return sched
}

// ResolveLocation returns the location code for a date.
func (s *Service) ResolveLocation(date string) location.Code {
	return s.Schedule().Resolve(date)
}

// ToggleLocation flips a single date between the two codes and persists the
// schedule.
func (s *Service) ToggleLocation(date string) (location.Code, error) {
	if s.Persistence == nil {
		return "", errNoPersistence
	}
	sched := s.Schedule()
	code := sched.Toggle(date)
	if err := s.Persistence.Set(store.KeyLocation, sched); err != nil {
		return "", err
	}
	return code, nil
}

// --- External calendar id

// CalendarID returns the stored external calendar identifier, empty when
// unset.
func (s *Service) CalendarID() string {
	var id string
	if s.Persistence != nil {
		s.Persistence.Get(store.KeyCalendarID, &id)
	}
	return id
}

// SetCalendarID stores the external calendar identifier.
func (s *Service) SetCalendarID(id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.Set(store.KeyCalendarID, id)
}

// CalendarEmbedURL builds the read-only week-view embed URL for an external
// calendar id, pinned to the Taipei timezone.
func CalendarEmbedURL(id string) string {
	return "https://calendar.google.com/calendar/embed?src=" + url.QueryEscape(id) +
		"&ctz=Asia/Taipei&mode=WEEK&showTitle=0&showNav=1&showPrint=0&showTabs=0&showCalendars=0"
}

// --- Composite views

// DayCell is one resolved calendar cell. Day is zero for blank padding
// cells.
type DayCell struct {
	Day      int
	Date     string
	Location location.Code
	Holiday  string
	HasLog   bool
	Events   []event.Event
}

// Month resolves the full cell grid for a month: location, holiday for the
// resolved location, journal presence, and the date's events. The result
// length is always a multiple of 7.
func (s *Service) Month(year int, month time.Month) []DayCell {
	sched := s.Schedule()
	logs := s.Logs()
	evs := s.Events()

	cells := dateutil.GridCells(year, month)
	out := make([]DayCell, len(cells))
	for i, day := range cells {
		if day == 0 {
			continue
		}
		date := dateutil.Key(year, month, day)
		loc := sched.Resolve(date)
		name, _ := holiday.Lookup(loc, date)
		out[i] = DayCell{
			Day:      day,
			Date:     date,
			Location: loc,
			Holiday:  name,
			HasLog:   logs.HasEntries(date),
			Events:   evs.On(date),
		}
	}
	return out
}

// WeekLog pairs a date with its recorded levels for the summary prompt.
type WeekLog struct {
	Date   string
	Energy int
	Stress int
}

// WeekLogs collects the recorded logs for the last 7 calendar days ending
// at now, oldest first. Dates without a record are skipped.
func (s *Service) WeekLogs(now time.Time) []WeekLog {
	logs := s.Logs()
	out := make([]WeekLog, 0, 7)
	for i := 6; i >= 0; i-- {
		date := dateutil.Format(now.AddDate(0, 0, -i))
		if _, ok := logs[date]; !ok {
			continue
		}
		d := logs.Get(date)
		out = append(out, WeekLog{Date: date, Energy: d.Energy, Stress: d.Stress})
	}
	return out
}

// AlertsFor assembles the dashboard alert lines for the given time.
func (s *Service) AlertsFor(now time.Time) []string {
	var alerts []string
	if days := location.DaysUntil(now, location.TripStart); days > 0 && days <= 30 {
		alerts = append(alerts, fmt.Sprintf("赴日: 1/11 (倒數 %d 天)", days))
	}
	alerts = append(alerts, "今日: 記得嬰兒陪伴 2hr")
	loc := s.ResolveLocation(dateutil.Format(now))
	alerts = append(alerts, fmt.Sprintf("位置: %s %s", loc.Flag(), loc.Name()))
	return alerts
}
