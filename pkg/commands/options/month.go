package options

import (
	"time"

	"github.com/spf13/cobra"
)

// MonthOptions selects the month a calendar command renders. Zero values
// mean the current month.
type MonthOptions struct {
	Year  int
	Month int
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0, "Year to show.")
	cmd.Flags().IntVarP(&o.Month, "month", "m", 0, "Month to show (1-12).")
}

// GetMonth resolves the flags, defaulting to now.
func (o *MonthOptions) GetMonth() (int, time.Month) {
	now := time.Now()
	year, month := o.Year, o.Month
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, time.Month(month)
}
