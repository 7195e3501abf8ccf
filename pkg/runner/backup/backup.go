// Package backup exports a date range to a zip of monthly spreadsheets.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/export"
	"tableflip.dev/haru/pkg/store"
)

type Backup struct {
	Persistence store.Persistence

	From   dates.Key
	To     dates.Key
	Output string
}

func (b *Backup) Do(ctx context.Context) error {
	if b.Persistence == nil {
		return errors.New("can not back up, no persistence")
	}
	if b.Output == "" {
		return errors.New("no output file")
	}
	if !b.From.Valid() || !b.To.Valid() {
		return fmt.Errorf("invalid range %q..%q", b.From, b.To)
	}

	snap := b.Persistence.Snapshot(ctx)

	f, err := os.Create(b.Output)
	if err != nil {
		return err
	}
	if err := export.Range(b.From, b.To, snap, f); err != nil {
		_ = f.Close()
		_ = os.Remove(b.Output)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", b.Output)
	return nil
}
