package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/commands/options"
	"github.com/ycwu/lifedash/pkg/runner/event"
	"github.com/ycwu/lifedash/pkg/store"
)

func addEvent(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "event",
		Short: "List a day's calendar events",
		Example: `
lifedash event
lifedash event --on 2026-01-15 --show-id
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
			s := event.Get{Date: date, ShowID: io.ShowID, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	addEventAdd(cmd)
	addEventRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a calendar event",
		Example: `
lifedash event add 看房 --on 2026-01-18
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires event text")
			}
			text = strings.Join(args, " ")
			return nil
		},
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
			s := event.Add{Date: date, Text: text, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addEventRemove(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var id int64

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove"},
		Short:   "Delete a calendar event",
		Example: `
lifedash event rm 1736553600000 --on 2026-01-18
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return parseID(args, &id)
		},
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
			s := event.Remove{Date: date, ID: id, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
