package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/commands/options"
	"tableflip.dev/haru/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "search <keyword...>",
		Short: "find tasks by keyword",
		Example: `
haru search milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			defer p.Close()
			s := search.Search{
				Persistence: p,
				Keyword:     strings.Join(args, " "),
			}
			if oo.JSON {
				s.Output = "json"
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
