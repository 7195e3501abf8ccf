// Package tui is the interactive calendar: a month grid beside a day pane,
// driven by the edit session, drag reorder, and undo machinery, fed by the
// store's snapshot subscription.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/haru/pkg/daybook"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/drag"
	"tableflip.dev/haru/pkg/session"
	"tableflip.dev/haru/pkg/settings"
	"tableflip.dev/haru/pkg/store"
)

type mode int

const (
	modeMonth mode = iota
	modeEdit
	modeHoliday
	modeSearch
	modeJump
)

// Day-pane geometry, shared by the renderer and mouse hit testing.
const (
	calendarWidth = 23
	dayPaneLeft   = calendarWidth + 3
	dayPaneTop    = 2 // border plus title row
)

type Model struct {
	store store.Persistence
	book  *daybook.Book
	sess  *session.Session

	view  settings.Settings
	saver *settings.Saver

	keys  KeyMap
	help  help.Model
	input textinput.Model
	mode  mode

	selected dates.Key
	today    dates.Key
	cursor   int

	drag      *drag.Drag
	dragDate  dates.Key
	pressLine int // line index under the pointer at press time
	guard     *drag.ClickGuard

	snapshots <-chan store.Snapshot

	results []daybook.Match
	status  string
	errText string

	width, height int
	quitting      bool
}

type snapshotMsg store.Snapshot

type writeResultMsg struct{ err error }

func New(p store.Persistence, initial store.Snapshot, snapshots <-chan store.Snapshot, view settings.Settings, saver *settings.Saver) Model {
	input := textinput.New()
	input.CharLimit = 64

	view = view.Normalize()
	m := Model{
		store:     p,
		book:      daybook.New(p, initial),
		view:      view,
		saver:     saver,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		selected:  seedSelection(view),
		today:     dates.Today(),
		guard:     drag.NewClickGuard(),
		snapshots: snapshots,
	}
	return m
}

// seedSelection reopens the month the user last had focused, via the
// persisted quick-jump fields. When that month is the current one the
// selection lands on today rather than the first.
func seedSelection(view settings.Settings) dates.Key {
	today := dates.Today()
	if view.QuickYear == today.Year() && time.Month(view.QuickMonth) == today.Month() {
		return today
	}
	if d := dates.New(view.QuickYear, time.Month(view.QuickMonth), 1); d.Valid() {
		return d
	}
	return today
}

// stripMonths lists the month panels of the logical year containing the
// selection, in the configured year style.
func (m Model) stripMonths() []settings.YearMonth {
	year := m.selected.Year()
	if m.view.YearType == settings.YearAcademic && m.selected.Month() < time.March {
		year--
	}
	return settings.MonthsForYear(year, m.view.YearType)
}

func (m Model) Init() tea.Cmd {
	return waitSnapshot(m.snapshots)
}

func waitSnapshot(ch <-chan store.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(s)
	}
}

// awaitWrite surfaces a write's eventual result without blocking input.
func awaitWrite(done <-chan error) tea.Cmd {
	if done == nil {
		return nil
	}
	return func() tea.Msg {
		return writeResultMsg{err: <-done}
	}
}

// editing reports whether a cell edit session is active.
func (m Model) editing() bool {
	return m.mode == modeEdit && m.sess != nil && m.sess.Editing()
}

// focus moves the selection and remembers it as the quick-jump target.
func (m *Model) focus(d dates.Key) {
	if !d.Valid() {
		return
	}
	m.selected = d
	m.cursor = 0
	m.view.QuickYear = d.Year()
	m.view.QuickMonth = int(d.Month())
	if m.saver != nil {
		m.saver.Update(m.view)
	}
}
