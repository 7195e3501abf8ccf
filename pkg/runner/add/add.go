// Package add appends a task line to a day.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/printers"
	"tableflip.dev/haru/pkg/store"
)

type Add struct {
	Persistence store.Persistence

	On   dates.Key
	Text string
	Done bool
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if a.Text == "" {
		return errors.New("nothing to add")
	}
	if !a.On.Valid() {
		a.On = dates.Today()
	}

	rec, _, err := a.Persistence.Record(a.On)
	if err != nil {
		return err
	}
	lines := append(content.Parse(rec.Content), content.Line{Done: a.Done, Text: a.Text})
	text := content.Serialize(lines)
	if err := <-a.Persistence.Write(a.On, text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowWeekday: true}
	fmt.Println("")
	name, _ := rec.Holiday()
	pp.Day(a.On, text, name)
	return nil
}
