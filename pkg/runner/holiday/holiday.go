// Package holiday marks or clears a day's holiday.
package holiday

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/printers"
	"tableflip.dev/haru/pkg/store"
)

type Holiday struct {
	Persistence store.Persistence

	On    dates.Key
	Name  string
	Clear bool
}

func (h *Holiday) Do(ctx context.Context) error {
	if h.Persistence == nil {
		return errors.New("can not mark holiday, no persistence")
	}
	if !h.On.Valid() {
		return fmt.Errorf("invalid date %q", h.On)
	}

	name := h.Name
	if h.Clear {
		name = ""
	} else if name == "" {
		name = store.DefaultHolidayName
	}

	if err := <-h.Persistence.SetHoliday(h.On, name); err != nil {
		return err
	}

	rec, _, err := h.Persistence.Record(h.On)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowWeekday: true}
	fmt.Println("")
	got, _ := rec.Holiday()
	pp.Day(h.On, rec.Content, got)
	return nil
}
