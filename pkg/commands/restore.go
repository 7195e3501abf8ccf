package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/runner/restore"
)

func addRestore(topLevel *cobra.Command) {
	dryRun := false

	cmd := &cobra.Command{
		Use:   "restore <archive>",
		Short: "import a backup archive",
		Example: `
haru restore haru-backup.zip
haru restore --dry-run haru-backup.zip
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			defer p.Close()
			r := restore.Restore{
				Persistence: p,
				Input:       args[0],
				DryRun:      dryRun,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be restored without writing.")

	topLevel.AddCommand(cmd)
}
