package task

import (
	"context"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/printers"
	"github.com/ycwu/lifedash/pkg/store"
)

// Get prints the weekly goal list.
type Get struct {
	ShowID      bool
	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	svc := app.Service{Persistence: g.Persistence}
	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.Tasks(svc.Tasks())
	return nil
}

// Add creates a new weekly goal and prints the updated list.
type Add struct {
	Text        string
	Tag         string
	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc := app.Service{Persistence: a.Persistence}
	if _, err := svc.AddTask(a.Text, a.Tag); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Tasks(svc.Tasks())
	return nil
}

// Toggle flips completion on a goal and prints the updated list.
type Toggle struct {
	ID          int64
	Persistence store.Persistence
}

func (t *Toggle) Do(ctx context.Context) error {
	svc := app.Service{Persistence: t.Persistence}
	if _, err := svc.ToggleTask(t.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Tasks(svc.Tasks())
	return nil
}

// Edit replaces a goal's text.
type Edit struct {
	ID          int64
	Text        string
	Persistence store.Persistence
}

func (e *Edit) Do(ctx context.Context) error {
	svc := app.Service{Persistence: e.Persistence}
	if err := svc.EditTask(e.ID, e.Text); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Tasks(svc.Tasks())
	return nil
}

// Remove deletes a goal.
type Remove struct {
	ID          int64
	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	svc := app.Service{Persistence: r.Persistence}
	if err := svc.RemoveTask(r.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Tasks(svc.Tasks())
	return nil
}
