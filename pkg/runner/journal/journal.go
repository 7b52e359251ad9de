package journal

import (
	"context"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/printers"
	"github.com/ycwu/lifedash/pkg/store"
)

// Get prints one date's daily log.
type Get struct {
	Date        string
	ShowID      bool
	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	svc := app.Service{Persistence: g.Persistence}
	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.Journal(g.Date, svc.Log(g.Date))
	return nil
}

// Add appends a timestamped entry to a date's log.
type Add struct {
	Date        string
	Text        string
	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc := app.Service{Persistence: a.Persistence}
	if _, err := svc.AddJournalEntry(a.Date, a.Text); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Journal(a.Date, svc.Log(a.Date))
	return nil
}

// Remove deletes one entry from a date's log.
type Remove struct {
	Date        string
	ID          int64
	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	svc := app.Service{Persistence: r.Persistence}
	if err := svc.RemoveJournalEntry(r.Date, r.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Journal(r.Date, svc.Log(r.Date))
	return nil
}

// Energy records the date's energy level.
type Energy struct {
	Date        string
	Level       int
	Persistence store.Persistence
}

func (e *Energy) Do(ctx context.Context) error {
	svc := app.Service{Persistence: e.Persistence}
	if err := svc.SetEnergy(e.Date, e.Level); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Journal(e.Date, svc.Log(e.Date))
	return nil
}

// Stress records the date's stress level.
type Stress struct {
	Date        string
	Level       int
	Persistence store.Persistence
}

func (s *Stress) Do(ctx context.Context) error {
	svc := app.Service{Persistence: s.Persistence}
	if err := svc.SetStress(s.Date, s.Level); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Journal(s.Date, svc.Log(s.Date))
	return nil
}

// Notes replaces the date's free-form notes.
type Notes struct {
	Date        string
	Text        string
	Persistence store.Persistence
}

func (n *Notes) Do(ctx context.Context) error {
	svc := app.Service{Persistence: n.Persistence}
	if err := svc.SetNotes(n.Date, n.Text); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Journal(n.Date, svc.Log(n.Date))
	return nil
}
