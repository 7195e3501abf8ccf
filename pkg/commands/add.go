package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/commands/options"
	"tableflip.dev/haru/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	done := false

	cmd := &cobra.Command{
		Use:   "add <task...>",
		Short: "add a task to a day",
		Example: `
haru add buy milk
haru add --on 2025-05-01 water plants
haru add --done groceries already handled
`,
		Args: cobra.MinimumNArgs(1),
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
			a := add.Add{
				Persistence: p,
				On:          on,
				Text:        strings.Join(args, " "),
				Done:        done,
			}
			return a.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVar(&done, "done", false, "Add the task already completed.")

	topLevel.AddCommand(cmd)
}
