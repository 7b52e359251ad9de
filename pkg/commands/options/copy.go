package options

import (
	"github.com/spf13/cobra"
)

// CopyOptions
type CopyOptions struct {
	Copy bool
}

func AddCopyArgs(cmd *cobra.Command, o *CopyOptions) {
	cmd.Flags().BoolVarP(&o.Copy, "copy", "c", false,
		"Copy the rendered markdown to the clipboard.")
}
