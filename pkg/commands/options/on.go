package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ycwu/lifedash/pkg/dateutil"
)

const layoutShort = "1/2"

// OnOptions selects the date a command operates on. Empty means today.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-02-28" or --on="2/28".`)
}

// GetOn resolves the flag to an ISO date key. Short dates take the current
// year.
func (o *OnOptions) GetOn() (string, error) {
	if o.OnString == "" {
		return dateutil.Format(time.Now()), nil
	}
	if t, err := dateutil.Parse(o.OnString); err == nil {
		return dateutil.Format(t), nil
	}
	t, err := time.ParseInLocation(layoutShort, o.OnString, time.Local)
	if err != nil {
		return "", err
	}
	t = t.AddDate(time.Now().Year(), 0, 0)
	return dateutil.Format(t), nil
}
