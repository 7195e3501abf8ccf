package tui

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/store"
)

// dayCell describes one rendered day of the month grid.
type dayCell struct {
	date       dates.Key
	hasContent bool
	isHoliday  bool
	isToday    bool
	isSelected bool
}

// monthCells derives the grid cells for a month from the snapshot.
func monthCells(year int, month time.Month, snap store.Snapshot, selected, today dates.Key) []dayCell {
	grid := dates.MonthGrid(year, month)
	cells := make([]dayCell, 0, len(grid))
	for _, d := range grid {
		c := dayCell{date: d}
		if d != dates.None {
			c.hasContent = snap.Events[d] != ""
			c.isHoliday = snap.Holidays[d] != ""
			c.isToday = d == today
			c.isSelected = d == selected
		}
		cells = append(cells, c)
	}
	return cells
}

// renderMonth lays the cells out Sunday-first, one styled 2-wide cell per
// day.
func renderMonth(title string, cells []dayCell) string {
	var lines []string
	lines = append(lines, headerStyle.Render(title))
	lines = append(lines, headerStyle.Render("Su Mo Tu We Th Fr Sa"))

	var row []string
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, strings.Join(row, " "))
			row = nil
		}
	}
	for _, c := range cells {
		if c.date == dates.None {
			row = append(row, "  ")
		} else {
			row = append(row, renderDayCell(c))
		}
		if len(row) == 7 {
			flush()
		}
	}
	flush()
	return strings.Join(lines, "\n")
}

func renderDayCell(c dayCell) string {
	text := fmt.Sprintf("%2d", c.date.Day())

	style := blankDayStyle
	if c.hasContent {
		style = filledDayStyle
	}
	if c.isHoliday {
		style = holidayStyle
	}
	if c.isToday {
		style = style.Inherit(todayStyle)
	}
	if c.isSelected {
		style = selectedStyle
	}
	return style.Render(text)
}

// monthTitle is the grid heading, e.g. "May 2025".
func monthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}
