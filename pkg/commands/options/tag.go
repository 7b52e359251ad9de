package options

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/task"
)

// TagOptions
type TagOptions struct {
	Tag string
}

func AddTagArgs(cmd *cobra.Command, o *TagOptions) {
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "Work",
		"Tag for the goal, one of: "+strings.Join(task.Tags, ", ")+".")

	_ = cmd.RegisterFlagCompletionFunc("tag", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return task.Tags, cobra.ShellCompDirectiveNoFileComp
	})
}
