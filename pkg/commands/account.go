package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/haru/pkg/commands/options"
	"tableflip.dev/haru/pkg/runner/account"
)

func addAccount(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "manage the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLogin(cmd)
	addLogout(cmd)
	addWhoami(cmd)
	addDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addLogin(topLevel *cobra.Command) {
	email := ""

	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in",
		Example: `
haru account login --email you@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			prov, err := provider()
			if err != nil {
				return err
			}
			l := account.Login{Provider: prov, Email: email}
			return l.Do(context.Background())
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address to sign in with.")

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			prov, err := provider()
			if err != nil {
				return err
			}
			l := account.Logout{Provider: prov}
			return l.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "show the signed-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			prov, err := provider()
			if err != nil {
				return err
			}
			w := account.Whoami{Provider: prov}
			if oo.JSON {
				w.Output = "json"
			}
			return oo.HandleError(w.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "delete the account and all of its data",
		Long: "Deletes every stored day along with the account itself. " +
			"Requires a recent sign-in; a stale session is signed out instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			prov, err := provider()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			defer p.Close()
			d := account.Delete{Provider: prov, Persistence: p}
			return d.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}
