package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/commands/options"
	"tableflip.dev/haru/pkg/runner/holiday"
)

func addHoliday(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	clear := false

	cmd := &cobra.Command{
		Use:   "holiday [name...]",
		Short: "mark a day as a holiday",
		Long: options.Wrap80("Marks the day as a holiday, independent of its " +
			"tasks. Without a name the default holiday name is used."),
		Example: `
haru holiday --on 2025-05-05 어린이날
haru holiday --on 2025-09-29
haru holiday --on 2025-05-05 --clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.Date()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			defer p.Close()
			h := holiday.Holiday{
				Persistence: p,
				On:          on,
				Name:        strings.Join(args, " "),
				Clear:       clear,
			}
			return h.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the holiday mark.")

	topLevel.AddCommand(cmd)
}
