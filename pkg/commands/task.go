package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/commands/options"
	"github.com/ycwu/lifedash/pkg/runner/task"
	"github.com/ycwu/lifedash/pkg/store"
)

func addTask(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "List the weekly goals",
		Example: `
lifedash task
lifedash task --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Get{ShowID: io.ShowID, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	addTaskAdd(cmd)
	addTaskDone(cmd)
	addTaskEdit(cmd)
	addTaskRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	to := &options.TagOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a weekly goal",
		Example: `
lifedash task add 運動習慣啟動 --tag Health
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires goal text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Add{Text: text, Tag: to.Tag, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddTagArgs(cmd, to)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	var id int64

	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle completion on a goal",
		Example: `
lifedash task done 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return parseID(args, &id)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Toggle{ID: id, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTaskEdit(topLevel *cobra.Command) {
	var id int64
	var text string

	cmd := &cobra.Command{
		Use:   "edit [id] [text]",
		Short: "Replace a goal's text",
		Example: `
lifedash task edit 3 新的目標文字
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := parseID(args, &id); err != nil {
				return err
			}
			if len(args) < 2 {
				return errors.New("requires new text")
			}
			text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Edit{ID: id, Text: text, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTaskRemove(topLevel *cobra.Command) {
	var id int64

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove"},
		Short:   "Delete a goal",
		Example: `
lifedash task rm 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return parseID(args, &id)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Remove{ID: id, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func parseID(args []string, into *int64) error {
	if len(args) < 1 {
		return errors.New("requires an id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.New("id must be a number")
	}
	*into = id
	return nil
}
