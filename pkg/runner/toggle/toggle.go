// Package toggle flips one task line between open and done.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/printers"
	"tableflip.dev/haru/pkg/store"
)

type Toggle struct {
	Persistence store.Persistence

	On dates.Key
	// Index is the 1-based line number as printed by show.
	Index int
}

func (t *Toggle) Do(ctx context.Context) error {
	if t.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}
	if !t.On.Valid() {
		t.On = dates.Today()
	}

	rec, _, err := t.Persistence.Record(t.On)
	if err != nil {
		return err
	}
	lines := content.Parse(rec.Content)
	if t.Index < 1 || t.Index > len(lines) {
		return fmt.Errorf("no line %d on %s", t.Index, t.On)
	}

	text := content.Serialize(content.Toggle(lines, t.Index-1))
	if err := <-t.Persistence.Write(t.On, text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowWeekday: true}
	fmt.Println("")
	name, _ := rec.Holiday()
	pp.Day(t.On, text, name)
	return nil
}
