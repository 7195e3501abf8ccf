// Package daybook is the commit path shared by the TUI and the CLI runners:
// it owns the locally-known authoritative snapshot, cleans drafts, records
// prior values on the undo stack, and issues store mutations.
package daybook

import (
	"sort"
	"strings"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/store"
	"tableflip.dev/haru/pkg/undo"
)

// Mutator is the store surface the commit path needs. store.Persistence
// satisfies it.
type Mutator interface {
	Write(date dates.Key, text string) <-chan error
	SetHoliday(date dates.Key, name string) <-chan error
}

// Book mediates between rendered views and the document store. All mutation
// goes through Book; views only read.
type Book struct {
	p    Mutator
	undo *undo.Stack
	snap store.Snapshot
}

func New(p Mutator, initial store.Snapshot) *Book {
	if initial.Events == nil || initial.Holidays == nil {
		initial = initial.Clone()
	}
	return &Book{
		p:    p,
		undo: undo.NewStack(),
		snap: initial,
	}
}

// ApplySnapshot replaces the authoritative baseline with a fresh push from
// the subscription feed.
func (b *Book) ApplySnapshot(s store.Snapshot) {
	b.snap = s
}

func (b *Book) Snapshot() store.Snapshot {
	return b.snap
}

func (b *Book) Content(date dates.Key) string {
	return b.snap.Content(date)
}

func (b *Book) HolidayName(date dates.Key) string {
	return b.snap.HolidayName(date)
}

func (b *Book) UndoDepth() int {
	return b.undo.Len()
}

// CommitContent cleans text and, when it differs from the last known
// committed value, records the prior value and issues the write. The second
// return is false when nothing changed and no write was issued.
func (b *Book) CommitContent(date dates.Key, text string) (<-chan error, bool) {
	cleaned := content.Clean(text)
	prev := b.snap.Content(date)
	if cleaned == prev {
		return nil, false
	}
	b.undo.Record(undo.Entry{Kind: undo.KindContent, Date: date, PrevContent: prev})
	b.applyContentLocally(date, cleaned)
	return b.p.Write(date, cleaned), true
}

// ToggleLine flips one line's done flag and commits, bypassing the undo diff
// only in the sense that the toggled serialization is the new content.
func (b *Book) ToggleLine(date dates.Key, index int) (<-chan error, bool) {
	raw := b.snap.Content(date)
	toggled := content.ToggleRaw(raw, index)
	if toggled == raw {
		return nil, false
	}
	return b.CommitContent(date, toggled)
}

// AppendLine adds one task line to the end of the day.
func (b *Book) AppendLine(date dates.Key, text string, done bool) (<-chan error, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	lines := append(content.Parse(b.snap.Content(date)), content.Line{Done: done, Text: text})
	return b.CommitContent(date, content.Serialize(lines))
}

// SetHoliday marks, renames, or (with empty name) clears the holiday flag,
// recording the prior mark for undo. Content is untouched.
func (b *Book) SetHoliday(date dates.Key, name string) (<-chan error, bool) {
	name = strings.TrimSpace(name)
	prev, wasHoliday := b.snap.Holidays[date]
	if (name == "" && !wasHoliday) || (wasHoliday && name == prev) {
		return nil, false
	}
	b.undo.Record(undo.Entry{
		Kind:        undo.KindHoliday,
		Date:        date,
		PrevHoliday: wasHoliday,
		PrevName:    prev,
	})
	b.applyHolidayLocally(date, name)
	return b.p.SetHoliday(date, name), true
}

// Undo reverses the most recent committed change. ok is false when the stack
// is empty.
func (b *Book) Undo() (<-chan error, bool) {
	e, done, ok := b.undo.Undo(b.p)
	if !ok {
		return nil, false
	}
	switch e.Kind {
	case undo.KindHoliday:
		if e.PrevHoliday {
			b.applyHolidayLocally(e.Date, e.PrevName)
		} else {
			b.applyHolidayLocally(e.Date, "")
		}
	default:
		b.applyContentLocally(e.Date, e.PrevContent)
	}
	return done, true
}

// applyContentLocally mirrors the write into the local snapshot so views
// update before the feed echoes the authoritative state back.
func (b *Book) applyContentLocally(date dates.Key, cleaned string) {
	snap := b.snap.Clone()
	if cleaned == "" {
		delete(snap.Events, date)
	} else {
		snap.Events[date] = cleaned
	}
	b.snap = snap
}

func (b *Book) applyHolidayLocally(date dates.Key, name string) {
	snap := b.snap.Clone()
	if name == "" {
		delete(snap.Holidays, date)
	} else {
		snap.Holidays[date] = name
	}
	b.snap = snap
}

// Match is one search hit.
type Match struct {
	Date    dates.Key `json:"date"`
	Content string    `json:"content"`
}

// Search scans day contents for the keyword, results in calendar order.
func (b *Book) Search(keyword string) []Match {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	var out []Match
	for date, c := range b.snap.Events {
		if strings.Contains(c, keyword) {
			out = append(out, Match{Date: date, Content: c})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
