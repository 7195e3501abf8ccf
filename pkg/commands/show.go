package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/commands/options"
	"tableflip.dev/haru/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	opts := &options.OnOptions{}
	month := false
	grid := false

	cmd := &cobra.Command{
		Use:   "show",
		Short: "show a day or a month",
		Example: `
haru show
haru show --on 2025-05-01
haru show --month
haru show --month --grid
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := opts.Date()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			defer p.Close()
			s := show.Show{
				Persistence: p,
				On:          on,
				Month:       month,
				Grid:        grid,
			}
			if oo.JSON {
				s.Output = "json"
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, opts)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVarP(&month, "month", "m", false, "Show the whole month.")
	cmd.Flags().BoolVar(&grid, "grid", false, "Compact month grid instead of per-day detail.")

	topLevel.AddCommand(cmd)
}
