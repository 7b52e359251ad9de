package locate

import (
	"context"
	"fmt"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/store"
)

// Get prints the resolved location for a date.
type Get struct {
	Date        string
	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	svc := app.Service{Persistence: g.Persistence}
	loc := svc.ResolveLocation(g.Date)
	fmt.Printf("%s %s %s\n", g.Date, loc.Flag(), loc.Name())
	return nil
}

// Toggle flips a single date between the two locations.
type Toggle struct {
	Date        string
	Persistence store.Persistence
}

func (t *Toggle) Do(ctx context.Context) error {
	svc := app.Service{Persistence: t.Persistence}
	loc, err := svc.ToggleLocation(t.Date)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s %s\n", t.Date, loc.Flag(), loc.Name())
	return nil
}
