package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/dates"
)

// RangeOptions selects an inclusive date range, defaulting to the current
// year.
type RangeOptions struct {
	From string
	To   string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		"Start of the range, YYYY-MM-DD. Defaults to January 1st.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"End of the range, YYYY-MM-DD. Defaults to December 31st.")
}

func (o *RangeOptions) Range() (dates.Key, dates.Key, error) {
	year := time.Now().Year()
	from := dates.New(year, time.January, 1)
	to := dates.New(year, time.December, 31)

	var err error
	if o.From != "" {
		if from, err = dates.Parse(o.From); err != nil {
			return "", "", err
		}
	}
	if o.To != "" {
		if to, err = dates.Parse(o.To); err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}
