package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/commands/options"
	"github.com/ycwu/lifedash/pkg/runner/progress"
	"github.com/ycwu/lifedash/pkg/store"
)

func addProgress(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "List the yearly progress metrics",
		Example: `
lifedash progress
lifedash progress --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := progress.Get{ShowID: io.ShowID, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	addProgressAdd(cmd)
	addProgressSet(cmd)
	addProgressRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addProgressAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new metric placeholder",
		Example: `
lifedash progress add
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := progress.Add{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addProgressSet(topLevel *cobra.Command) {
	var id int64

	cmd := &cobra.Command{
		Use:   "set [id]",
		Short: "Edit a metric's label, current value or target",
		Example: `
lifedash progress set 2 --current 5200
lifedash progress set 2 --label "Trading資本" --target 13000
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

			s := progress.Set{ID: id, Persistence: p}
			if cmd.Flags().Changed("label") {
				v, _ := cmd.Flags().GetString("label")
				s.Label = &v
			}
			if cmd.Flags().Changed("current") {
				v, _ := cmd.Flags().GetFloat64("current")
				s.Current = &v
			}
			if cmd.Flags().Changed("target") {
				v, _ := cmd.Flags().GetFloat64("target")
				s.Target = &v
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	cmd.Flags().String("label", "", "New label for the metric.")
	cmd.Flags().Float64("current", 0, "New current value.")
	cmd.Flags().Float64("target", 0, "New target value.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addProgressRemove(topLevel *cobra.Command) {
	var id int64

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove"},
		Short:   "Delete a metric",
		Example: `
lifedash progress rm 2
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
			s := progress.Remove{ID: id, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
