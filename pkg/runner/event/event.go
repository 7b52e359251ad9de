package event

import (
	"context"

	"github.com/fatih/color"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/printers"
	"github.com/ycwu/lifedash/pkg/store"
)

// Get prints the events on a date.
type Get struct {
	Date        string
	ShowID      bool
	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	svc := app.Service{Persistence: g.Persistence}
	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.Title(g.Date)
	printEvents(&pp, &svc, g.Date, g.ShowID)
	return nil
}

// Add creates an event on a date.
type Add struct {
	Date        string
	Text        string
	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc := app.Service{Persistence: a.Persistence}
	if _, err := svc.AddEvent(a.Date, a.Text); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title(a.Date)
	printEvents(&pp, &svc, a.Date, false)
	return nil
}

// Remove deletes an event from a date.
type Remove struct {
	Date        string
	ID          int64
	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	svc := app.Service{Persistence: r.Persistence}
	if err := svc.RemoveEvent(r.Date, r.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title(r.Date)
	printEvents(&pp, &svc, r.Date, false)
	return nil
}

func printEvents(pp *printers.PrettyPrint, svc *app.Service, date string, showID bool) {
	evs := svc.Events().On(date)
	if len(evs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	p := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, ev := range evs {
		if showID {
			_, _ = y.Printf("%d  ", ev.ID)
		}
		_, _ = p.Printf("· %s\n", ev.Text)
	}
	_, _ = p.Println("")
}
