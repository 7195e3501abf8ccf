package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive calendar",
		Example: `
haru ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			defer p.Close()
			i := ui.UI{Persistence: p}
			return oo.HandleError(i.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
