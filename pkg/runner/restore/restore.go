// Package restore imports a backup archive into the store.
package restore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/export"
	"tableflip.dev/haru/pkg/store"
)

type Restore struct {
	Persistence store.Persistence

	Input  string
	DryRun bool
}

func (r *Restore) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not restore, no persistence")
	}

	f, err := os.Open(r.Input)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}

	snap, skipped, err := export.Import(f, info.Size())
	if err != nil {
		return err
	}
	if skipped > 0 {
		fmt.Printf("skipped %d rows without a date\n", skipped)
	}
	if r.DryRun {
		fmt.Printf("would restore %d days and %d holidays\n", len(snap.Events), len(snap.Holidays))
		return nil
	}

	// Per-day writes go through the store's apply queue in date order so a
	// failure report names the first day that did not land.
	for _, d := range sortedKeys(snap.Events) {
		if err := <-r.Persistence.Write(d, snap.Events[d]); err != nil {
			return fmt.Errorf("restore %s: %w", d, err)
		}
	}
	for _, d := range sortedKeys(snap.Holidays) {
		if err := <-r.Persistence.SetHoliday(d, snap.Holidays[d]); err != nil {
			return fmt.Errorf("restore holiday %s: %w", d, err)
		}
	}

	fmt.Printf("restored %d days and %d holidays\n", len(snap.Events), len(snap.Holidays))
	return nil
}

func sortedKeys(m map[dates.Key]string) []dates.Key {
	out := make([]dates.Key, 0, len(m))
	for d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
