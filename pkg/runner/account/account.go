// Package account handles sign-in, sign-out, and account deletion.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/haru/pkg/identity"
	"tableflip.dev/haru/pkg/store"
)

type Login struct {
	Provider identity.Provider
	Email    string
}

func (l *Login) Do(ctx context.Context) error {
	if l.Provider == nil {
		return errors.New("no identity provider")
	}
	id, err := l.Provider.SignIn(l.Email)
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", id.Email)
	return nil
}

type Logout struct {
	Provider identity.Provider
}

func (l *Logout) Do(ctx context.Context) error {
	if l.Provider == nil {
		return errors.New("no identity provider")
	}
	if err := l.Provider.SignOut(); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}

type Whoami struct {
	Provider identity.Provider
	Output   string
}

func (w *Whoami) Do(ctx context.Context) error {
	if w.Provider == nil {
		return errors.New("no identity provider")
	}
	id, ok := w.Provider.Current()

	if w.Output == "json" {
		out := map[string]any{"signedIn": ok}
		if ok {
			out["email"] = id.Email
			out["id"] = id.ID
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	if !ok {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("%s (%s)\n", id.Email, id.ID)
	return nil
}

// Delete removes the account and all of its stored days. A stale sign-in
// forces a sign-out instead, matching how the refusal must be surfaced.
type Delete struct {
	Provider    identity.Provider
	Persistence store.Persistence
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Provider == nil {
		return errors.New("no identity provider")
	}
	err := d.Provider.Delete()
	if errors.Is(err, identity.ErrRequiresRecentLogin) {
		_ = d.Provider.SignOut()
		return fmt.Errorf("sign in again to delete the account: %w", err)
	}
	if err != nil {
		return err
	}
	if d.Persistence != nil {
		if err := d.Persistence.DeleteAll(ctx); err != nil {
			return err
		}
	}
	fmt.Println("account deleted")
	return nil
}
