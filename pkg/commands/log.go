package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/commands/options"
	"github.com/ycwu/lifedash/pkg/journal"
	runner "github.com/ycwu/lifedash/pkg/runner/journal"
	"github.com/ycwu/lifedash/pkg/store"
)

func addLog(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show a day's journal",
		Example: `
lifedash log
lifedash log --on 2026-01-15
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
			s := runner.Get{Date: date, ShowID: io.ShowID, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	addLogAdd(cmd)
	addLogRemove(cmd)
	addLogLevel(cmd, "energy", "Record the day's energy level (1-5)", journal.ValidEnergy,
		func(date string, level int, p store.Persistence) runnerDoer {
			return &runner.Energy{Date: date, Level: level, Persistence: p}
		})
	addLogLevel(cmd, "stress", "Record the day's stress level (1-10)", journal.ValidStress,
		func(date string, level int, p store.Persistence) runnerDoer {
			return &runner.Stress{Date: date, Level: level, Persistence: p}
		})
	addLogNotes(cmd)

	topLevel.AddCommand(cmd)
}

type runnerDoer interface {
	Do(ctx context.Context) error
}

func addLogAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a timestamped journal entry",
		Example: `
lifedash log add 完成TradingView串接
lifedash log add 補記 --on 2026-01-14
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires entry text")
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
			s := runner.Add{Date: date, Text: text, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addLogRemove(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var id int64

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove"},
		Short:   "Delete a journal entry",
		Example: `
lifedash log rm 1736553600000
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
			s := runner.Remove{Date: date, ID: id, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addLogLevel(topLevel *cobra.Command, name, short string, valid func(int) bool,
	build func(date string, level int, p store.Persistence) runnerDoer) {
	oo := &options.OnOptions{}
	var level int

	cmd := &cobra.Command{
		Use:   name + " [level]",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a level")
			}
			v, err := strconv.Atoi(args[0])
			if err != nil || !valid(v) {
				return errors.New("level out of range")
			}
			level = v
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
			err = build(date, level, p).Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addLogNotes(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "notes [text]",
		Short: "Replace the day's notes",
		Example: `
lifedash log notes 今天狀態不錯
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
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
			s := runner.Notes{Date: date, Text: text, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
