// Package commands wires the CLI surface.
package commands

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/commands/options"
	"tableflip.dev/haru/pkg/identity"
	"tableflip.dev/haru/pkg/logger"
	"tableflip.dev/haru/pkg/store"
)

var (
	oo    = &options.OutputOptions{}
	debug bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "haru",
		Short: options.Wrap80("A personal calendar and task list on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			return logger.Init(logger.Config{
				Debug:  debug,
				LogDir: filepath.Join(cfg.BasePath(), "logs"),
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose logging to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addAdd(topLevel)
	addDone(topLevel)
	addHoliday(topLevel)
	addSearch(topLevel)
	addBackup(topLevel)
	addRestore(topLevel)
	addAccount(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}

// provider returns the identity provider rooted next to the document store.
func provider() (identity.Provider, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return identity.NewFileProvider(filepath.Join(cfg.BasePath(), "identity.json")), nil
}

// loadPersistence opens the store scoped to the signed-in user.
func loadPersistence() (store.Persistence, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := provider()
	if err != nil {
		return nil, err
	}
	id, ok := p.Current()
	if !ok {
		return nil, errors.New("not signed in, run: haru account login --email you@example.com")
	}
	return store.Load(cfg, id.ID)
}
