package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "print the marker legend",
		Example: `
haru key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
