// Package show renders a day or a month to the terminal.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/printers"
	"tableflip.dev/haru/pkg/store"
)

type Show struct {
	Persistence store.Persistence

	// On selects the day to show. When Month is set the whole month around
	// On is rendered instead.
	On     dates.Key
	Month  bool
	Grid   bool
	Output string
}

// day is the JSON shape of one rendered day.
type day struct {
	Date    dates.Key `json:"date"`
	Content string    `json:"content,omitempty"`
	Holiday string    `json:"holiday,omitempty"`
}

func (s *Show) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not show, no persistence")
	}
	if !s.On.Valid() {
		s.On = dates.Today()
	}
	if s.Output == "json" {
		return s.doJSON(ctx)
	}

	pp := printers.PrettyPrint{ShowWeekday: true}
	fmt.Println("")

	if s.Month {
		snap := s.Persistence.Snapshot(ctx)
		if s.Grid {
			pp.Month(s.On.Year(), s.On.Month(), snap)
			return nil
		}
		pp.MonthDetail(s.On.Year(), s.On.Month(), snap)
		pp.Summary(snap)
		return nil
	}

	rec, _, err := s.Persistence.Record(s.On)
	if err != nil {
		return err
	}
	name, _ := rec.Holiday()
	pp.Day(s.On, rec.Content, name)
	return nil
}

func (s *Show) doJSON(ctx context.Context) error {
	if s.Month {
		snap := s.Persistence.Snapshot(ctx)
		days := make([]day, 0, dates.DaysIn(s.On.Year(), s.On.Month()))
		for d := 1; d <= dates.DaysIn(s.On.Year(), s.On.Month()); d++ {
			key := dates.New(s.On.Year(), s.On.Month(), d)
			entry := day{
				Date:    key,
				Content: snap.Events[key],
				Holiday: snap.Holidays[key],
			}
			if entry.Content == "" && entry.Holiday == "" {
				continue
			}
			days = append(days, entry)
		}
		b, err := json.Marshal(days)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	rec, _, err := s.Persistence.Record(s.On)
	if err != nil {
		return err
	}
	name, _ := rec.Holiday()
	b, err := json.Marshal(day{Date: s.On, Content: rec.Content, Holiday: name})
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
