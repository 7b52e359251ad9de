package summary

import (
	"context"
	"time"

	"github.com/ycwu/lifedash/pkg/ai"
	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/dateutil"
	"github.com/ycwu/lifedash/pkg/printers"
	"github.com/ycwu/lifedash/pkg/store"
)

// Summary generates and prints the weekly coaching summary.
type Summary struct {
	Client      *ai.Client
	Persistence store.Persistence
}

func (s *Summary) Do(ctx context.Context) error {
	svc := app.Service{Persistence: s.Persistence}

	now := time.Now()
	week := dateutil.WeekNumber(now)
	prompt := ai.BuildPrompt(week, svc.Tasks(), svc.WeekLogs(now))

	client := s.Client
	if client == nil {
		client = ai.New(ai.LoadOptions())
	}
	text := client.Summarize(ctx, prompt)

	pp := printers.PrettyPrint{}
	pp.Summary(week, text)
	return nil
}
