package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/commands/options"
	"tableflip.dev/haru/pkg/runner/toggle"
)

func addDone(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "done <line>",
		Aliases: []string{"toggle"},
		Short:   "toggle a task between open and done",
		Long: options.Wrap80("Flips the task at the given line number, counting " +
			"from 1 in the order show prints. Toggling a completed task reopens it."),
		Example: `
haru done 2
haru done --on 2025-05-01 1
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			on, err := oo.Date()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			defer p.Close()
			t := toggle.Toggle{
				Persistence: p,
				On:          on,
				Index:       index,
			}
			return t.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
