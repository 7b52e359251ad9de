package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/commands/options"
	"github.com/ycwu/lifedash/pkg/runner/forecast"
)

func addForecast(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Show the yearly stress forecast, timeline and protocols",
		Example: `
lifedash forecast
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := forecast.Forecast{}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
