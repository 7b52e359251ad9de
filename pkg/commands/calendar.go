package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/commands/options"
	"github.com/ycwu/lifedash/pkg/runner/calendar"
	"github.com/ycwu/lifedash/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month grid with locations, holidays and events",
		Example: `
lifedash calendar
lifedash calendar -m 4 -y 2026
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			year, month := mo.GetMonth()
			s := calendar.Month{Year: year, Month: month, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, output)

	addCalendarID(cmd)

	topLevel.AddCommand(cmd)
}

func addCalendarID(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "id [value]",
		Short: "Show or set the external calendar id",
		Example: `
lifedash calendar id
lifedash calendar id abc123@group.calendar.google.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := calendar.ID{Set: strings.Join(args, " "), Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
