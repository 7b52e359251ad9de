package progress

import (
	"context"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/printers"
	"github.com/ycwu/lifedash/pkg/store"
)

// Get prints the yearly metrics.
type Get struct {
	ShowID      bool
	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	svc := app.Service{Persistence: g.Persistence}
	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.Progress(svc.Progress())
	return nil
}

// Add appends a placeholder metric for later edits.
type Add struct {
	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc := app.Service{Persistence: a.Persistence}
	if _, err := svc.AddMetric(); err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Progress(svc.Progress())
	return nil
}

// Set edits a metric's label, current value, or target. Nil fields are
// untouched.
type Set struct {
	ID          int64
	Label       *string
	Current     *float64
	Target      *float64
	Persistence store.Persistence
}

func (s *Set) Do(ctx context.Context) error {
	svc := app.Service{Persistence: s.Persistence}
	if err := svc.EditMetric(s.ID, s.Label, s.Current, s.Target); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Progress(svc.Progress())
	return nil
}

// Remove deletes a metric.
type Remove struct {
	ID          int64
	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	svc := app.Service{Persistence: r.Persistence}
	if err := svc.RemoveMetric(r.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Progress(svc.Progress())
	return nil
}
