package store

import (
	"tableflip.dev/haru/pkg/dates"
)

// RecordType marks whether a day is flagged as a holiday.
type RecordType string

const (
	TypeNormal  RecordType = "normal"
	TypeHoliday RecordType = "holiday"
)

// DefaultHolidayName labels holiday records stored without a name.
const DefaultHolidayName = "휴일"

// DayRecord is the persisted per-day document. Content and the holiday mark
// are independent fields merged separately; absence of Content is the
// canonical "no tasks" state, never an empty string.
type DayRecord struct {
	Content string     `json:"content,omitempty"`
	Type    RecordType `json:"type,omitempty"`
	Name    string     `json:"name,omitempty"`
}

// Holiday returns the display name when the record marks a holiday.
func (r DayRecord) Holiday() (string, bool) {
	if r.Type != TypeHoliday {
		return "", false
	}
	if r.Name == "" {
		return DefaultHolidayName, true
	}
	return r.Name, true
}

// Empty reports whether the record carries no information and can be removed
// from the store entirely.
func (r DayRecord) Empty() bool {
	if r.Content != "" {
		return false
	}
	if r.Type == TypeHoliday {
		return false
	}
	return true
}

// Snapshot is the authoritative full-collection view derived from every
// stored document. Feeds deliver whole snapshots, never deltas; consumers
// diff against their own baseline.
type Snapshot struct {
	Events   map[dates.Key]string
	Holidays map[dates.Key]string
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Events:   map[dates.Key]string{},
		Holidays: map[dates.Key]string{},
	}
}

// Content returns the day's content, empty when absent.
func (s Snapshot) Content(date dates.Key) string {
	return s.Events[date]
}

// HolidayName returns the day's holiday label, empty when the day is not
// marked.
func (s Snapshot) HolidayName(date dates.Key) string {
	return s.Holidays[date]
}

// Clone deep-copies the snapshot so consumers can hold it across pushes.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Events:   make(map[dates.Key]string, len(s.Events)),
		Holidays: make(map[dates.Key]string, len(s.Holidays)),
	}
	for k, v := range s.Events {
		out.Events[k] = v
	}
	for k, v := range s.Holidays {
		out.Holidays[k] = v
	}
	return out
}
