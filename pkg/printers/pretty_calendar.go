package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/store"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints one month as a compact grid: days that carry content render
// bold, holidays red, everything else faint.
func (pp *PrettyPrint) Month(year int, month time.Month, snap store.Snapshot) {
	tf := color.New(color.FgWhite, color.Italic)

	m := month.String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s %d\n", strings.Repeat(" ", mid), m, year)

	empty := color.New(color.Faint, color.FgWhite)
	filled := color.New(color.Bold, color.FgHiWhite)
	holiday := color.New(color.FgHiRed)

	col := 0
	for _, d := range dates.MonthGrid(year, month) {
		if d == dates.None {
			fmt.Print("   ")
			col++
			continue
		}
		printer := empty
		switch {
		case snap.Holidays[d] != "":
			printer = holiday
		case snap.Events[d] != "":
			printer = filled
		}
		_, _ = printer.Printf("%2d ", d.Day())
		col++
		if col%7 == 0 {
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// MonthDetail prints one line per day of the month that has anything to
// show, in date order.
func (pp *PrettyPrint) MonthDetail(year int, month time.Month, snap store.Snapshot) {
	pp.Title(fmt.Sprintf("%s %d", month.String(), year))
	fmt.Println("")

	printed := false
	for _, d := range dates.MonthGrid(year, month) {
		if d == dates.None {
			continue
		}
		text := snap.Events[d]
		name := snap.Holidays[d]
		if text == "" && name == "" {
			continue
		}
		pp.Day(d, text, name)
		printed = true
	}
	if !printed {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
	}
}

// Year prints the count grid for every month of a calendar year.
func (pp *PrettyPrint) Year(year int, snap store.Snapshot) {
	for m := time.January; m <= time.December; m++ {
		pp.Month(year, m, snap)
	}
}

// Summary prints how many open and completed tasks the snapshot holds.
func (pp *PrettyPrint) Summary(snap store.Snapshot) {
	open, done := 0, 0
	for _, text := range snap.Events {
		for _, l := range content.Parse(text) {
			if l.Done {
				done++
			} else {
				open++
			}
		}
	}
	c := color.New(color.Faint)
	_, _ = c.Printf("%d open, %d completed, %d holidays\n", open, done, len(snap.Holidays))
}
