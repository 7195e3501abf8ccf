package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/commands/options"
	"tableflip.dev/haru/pkg/runner/backup"
)

func addBackup(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}
	output := "haru-backup.zip"

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "export a date range to a zip of monthly spreadsheets",
		Example: `
haru backup
haru backup --from 2025-01-01 --to 2025-06-30 --output h1.zip
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := ro.Range()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			defer p.Close()
			b := backup.Backup{
				Persistence: p,
				From:        from,
				To:          to,
				Output:      output,
			}
			return b.Do(context.Background())
		},
	}

	options.AddRangeArgs(cmd, ro)
	cmd.Flags().StringVar(&output, "output", output, "Archive file to write.")

	topLevel.AddCommand(cmd)
}
