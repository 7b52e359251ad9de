package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/ycwu/lifedash/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "lifedash",
		Short: base.Wrap80("Personal life dashboard on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addTask(topLevel)
	addProgress(topLevel)
	addLog(topLevel)
	addEvent(topLevel)
	addCalendar(topLevel)
	addLocation(topLevel)
	addSummary(topLevel)
	addTemplate(topLevel)
	addForecast(topLevel)
	addVersion(topLevel)
}
