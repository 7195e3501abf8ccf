// Package dates provides the canonical YYYY-MM-DD day key and the calendar
// arithmetic built on top of it.
package dates

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Key identifies one calendar day as a zero-padded YYYY-MM-DD string.
// Lexicographic order on keys is calendar order.
type Key string

// None is the zero Key, used for blank slots in month grids.
const None Key = ""

// New builds a Key from calendar components.
func New(year int, month time.Month, day int) Key {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime converts any instant to the Key of its calendar day.
func FromTime(t time.Time) Key {
	return Key(t.Format(layoutISO))
}

// Today returns the Key for the local current day.
func Today() Key {
	return FromTime(time.Now())
}

// Parse validates s as a canonical day key.
func Parse(s string) (Key, error) {
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return None, fmt.Errorf("dates: parse %q: %w", s, err)
	}
	return FromTime(t), nil
}

// ParseTime returns the midnight UTC instant for the key.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func (k Key) Valid() bool {
	_, err := ParseTime(string(k))
	return err == nil
}

// Time returns the key's day at midnight UTC. Invalid keys return the zero
// time.
func (k Key) Time() time.Time {
	t, err := ParseTime(string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (k Key) Year() int { return k.Time().Year() }

func (k Key) Month() time.Month { return k.Time().Month() }

func (k Key) Day() int { return k.Time().Day() }

func (k Key) Weekday() time.Weekday { return k.Time().Weekday() }

func (k Key) String() string { return string(k) }

// AddDays shifts the key by n calendar days, rolling over months and years
// with proleptic Gregorian rules.
func (k Key) AddDays(n int) Key {
	return FromTime(k.Time().AddDate(0, 0, n))
}

// Direction names a focus movement between day cells.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Shift returns the key focused after moving one cell in the given direction:
// left/right move a day, up/down move a week.
func (k Key) Shift(d Direction) Key {
	switch d {
	case Left:
		return k.AddDays(-1)
	case Right:
		return k.AddDays(1)
	case Up:
		return k.AddDays(-7)
	case Down:
		return k.AddDays(7)
	}
	return k
}

// DaysIn reports the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// MonthGrid lays out a month for a Sunday-first calendar: leading None slots
// equal to the first-of-month weekday offset, then one Key per day.
func MonthGrid(year int, month time.Month) []Key {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	days := DaysIn(year, month)

	grid := make([]Key, 0, offset+days)
	for i := 0; i < offset; i++ {
		grid = append(grid, None)
	}
	for d := 1; d <= days; d++ {
		grid = append(grid, New(year, month, d))
	}
	return grid
}
