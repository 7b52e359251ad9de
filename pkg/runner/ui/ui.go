package ui

import (
	"context"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/store"
	teaui "github.com/ycwu/lifedash/pkg/tui/app"
)

// UI launches the full-screen dashboard.
type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: u.Persistence}
	return teaui.Run(svc)
}
