package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/printers"
	"github.com/ycwu/lifedash/pkg/store"
)

// Month prints the resolved month grid with a per-day detail list.
type Month struct {
	Year        int
	Month       time.Month
	Persistence store.Persistence
}

func (m *Month) Do(ctx context.Context) error {
	svc := app.Service{Persistence: m.Persistence}
	cells := svc.Month(m.Year, m.Month)

	pp := printers.PrettyPrint{}
	pp.Month(m.Year, m.Month, cells)
	pp.MonthDetail(cells)
	return nil
}

// ID shows or stores the external calendar identifier.
type ID struct {
	Set         string
	Persistence store.Persistence
}

func (i *ID) Do(ctx context.Context) error {
	svc := app.Service{Persistence: i.Persistence}
	if i.Set != "" {
		if err := svc.SetCalendarID(i.Set); err != nil {
			return err
		}
	}
	id := svc.CalendarID()
	if id == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("no calendar id set")
		return nil
	}
	fmt.Println(id)
	fmt.Println(app.CalendarEmbedURL(id))
	return nil
}
