package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/commands/options"
	"github.com/ycwu/lifedash/pkg/runner/locate"
	"github.com/ycwu/lifedash/pkg/store"
)

func addLocation(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "location",
		Aliases: []string{"loc"},
		Short:   "Show where a date is spent",
		Example: `
lifedash location
lifedash location --on 2026-01-15
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := locate.Get{Date: date, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	addLocationToggle(cmd)

	topLevel.AddCommand(cmd)
}

func addLocationToggle(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Flip a single date between Taiwan and Japan",
		Example: `
lifedash location toggle --on 2026-01-15
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := locate.Toggle{Date: date, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
