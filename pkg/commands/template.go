package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/commands/options"
	"github.com/ycwu/lifedash/pkg/runner/template"
)

func addTemplate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "List the daily-schedule templates",
		Example: `
lifedash template
lifedash template show A --copy
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := template.List{}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	addTemplateShow(cmd)

	topLevel.AddCommand(cmd)
}

func addTemplateShow(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	co := &options.CopyOptions{}
	var key string

	cmd := &cobra.Command{
		Use:   "show [key]",
		Short: "Render a template's daily-log markdown",
		Example: `
lifedash template show A
lifedash template show F --copy --on 2026-01-15
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a template key (A, B, C, D, F)")
			}
			key = strings.ToUpper(args[0])
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := template.Show{Key: key, Date: date, Copy: co.Copy}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddCopyArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
