// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/dates"
)

// OnOptions selects the day a command operates on.
type OnOptions struct {
	On string
}

// AddOnArgs wires the date selection flag on the provided command.
func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVarP(&o.On, "on", "o", "",
		"Date to operate on, YYYY-MM-DD. Defaults to today.")
}

// Date resolves the flag to a key, defaulting to today.
func (o *OnOptions) Date() (dates.Key, error) {
	if o.On == "" {
		return dates.Today(), nil
	}
	return dates.Parse(o.On)
}
