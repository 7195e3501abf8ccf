package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/drag"
	"tableflip.dev/haru/pkg/logger"
	"tableflip.dev/haru/pkg/session"
	"tableflip.dev/haru/pkg/settings"
	"tableflip.dev/haru/pkg/store"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.book.ApplySnapshot(store.Snapshot(msg))
		if m.sess != nil {
			// The session decides whether a push may replace its state.
			m.sess.ApplySnapshot(m.book.Content(m.sess.Date()))
		}
		return m, waitSnapshot(m.snapshots)

	case writeResultMsg:
		if msg.err != nil {
			logger.Error("write failed", "err", msg.err)
			m.errText = "write failed: " + msg.err.Error()
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		m.errText = ""
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeHoliday, modeSearch, modeJump:
			return m.updatePrompt(msg)
		default:
			return m.updateMonth(msg)
		}
	}
	return m, nil
}

func (m Model) updateMonth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.focus(m.selected.Shift(dates.Up))
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.lines())-1 {
			m.cursor++
		} else {
			m.focus(m.selected.Shift(dates.Down))
		}

	case key.Matches(msg, m.keys.Left):
		m.focus(m.selected.Shift(dates.Left))

	case key.Matches(msg, m.keys.Right):
		m.focus(m.selected.Shift(dates.Right))

	case key.Matches(msg, m.keys.Today):
		m.focus(dates.Today())

	// Append and Edit both open the session; Activate already seeds a fresh
	// bullet line at the end of the existing content.
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Append):
		m.startEdit(m.selected)

	case key.Matches(msg, m.keys.Toggle):
		if done, changed := m.book.ToggleLine(m.selected, m.cursor); changed {
			return m, awaitWrite(done)
		}

	case key.Matches(msg, m.keys.Undo):
		if done, ok := m.book.Undo(); ok {
			m.status = "undone"
			return m, awaitWrite(done)
		}
		m.status = "nothing to undo"

	case key.Matches(msg, m.keys.Holiday):
		m.mode = modeHoliday
		m.input.Placeholder = "holiday name (empty clears)"
		m.input.SetValue(m.book.HolidayName(m.selected))
		m.input.Focus()

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.input.Placeholder = "search tasks"
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, m.keys.Jump):
		m.mode = modeJump
		m.input.Placeholder = "YYYY-MM-DD"
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, m.keys.View):
		if m.view.YearType == settings.YearCalendar {
			m.view.YearType = settings.YearAcademic
		} else {
			m.view.YearType = settings.YearCalendar
		}
		if m.saver != nil {
			m.saver.Update(m.view)
		}
	}
	return m, nil
}

func (m *Model) startEdit(d dates.Key) {
	m.sess = session.New(d, m.book.Content(d))
	m.sess.Activate()
	m.mode = modeEdit
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		return m.finishEdit()

	case key.Matches(msg, m.keys.Cancel):
		m.sess.Discard()
		m.sess = nil
		m.mode = modeMonth
		return m, nil

	case key.Matches(msg, m.keys.NewLine):
		m.sess.InsertNewline()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight:
		dir := directionFor(msg.Type)
		if next, crossed := m.sess.Move(dir); crossed {
			// Leaving the cell commits it, then editing continues on the
			// neighbor.
			model, cmd := m.finishEdit()
			next2 := model.(Model)
			next2.focus(next)
			next2.startEdit(next)
			return next2, cmd
		}
		return m, nil

	case tea.KeyBackspace:
		m.sess.Backspace()
		return m, nil

	case tea.KeySpace:
		m.sess.InsertRune(' ')
		return m, nil

	case tea.KeyRunes:
		m.sess.InsertString(string(msg.Runes))
		return m, nil

	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) finishEdit() (tea.Model, tea.Cmd) {
	date := m.sess.Date()
	res := m.sess.Commit()
	m.sess = nil
	m.mode = modeMonth
	if !res.Changed {
		return m, nil
	}
	done, changed := m.book.CommitContent(date, res.Content)
	if !changed {
		return m, nil
	}
	return m, awaitWrite(done)
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = modeMonth
		m.input.Blur()
		m.results = nil
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeMonth
		m.input.Blur()
		switch mode {
		case modeHoliday:
			if done, changed := m.book.SetHoliday(m.selected, value); changed {
				return m, awaitWrite(done)
			}
		case modeSearch:
			m.results = m.book.Search(value)
			m.status = fmt.Sprintf("%d matches", len(m.results))
		case modeJump:
			d, err := dates.Parse(value)
			if err != nil {
				m.errText = "not a date: " + value
				return m, nil
			}
			m.focus(d)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.editing() {
			return m, nil
		}
		if idx, ok := m.hitLine(msg.X, msg.Y); ok {
			m.cursor = idx
			m.dragDate = m.selected
			m.pressLine = idx
			if d := drag.Start(m.lines(), idx, 1, float64(msg.Y)); d != nil {
				m.drag = d
				return m, nil
			}
			// A single-line day has nothing to reorder; the press is a
			// plain click.
			if m.guard.Consume() {
				return m, nil
			}
			if done, changed := m.book.ToggleLine(m.selected, idx); changed {
				return m, awaitWrite(done)
			}
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.drag.Move(float64(msg.Y))
			m.cursor = m.drag.Index()
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		res := m.drag.Release()
		m.drag = nil
		if res.Tap {
			m.cursor = m.pressLine
			if m.guard.Consume() {
				return m, nil
			}
			// Toggle the line that was pressed, not wherever the cursor
			// drifted to during motion.
			if done, changed := m.book.ToggleLine(m.dragDate, m.pressLine); changed {
				return m, awaitWrite(done)
			}
			return m, nil
		}
		m.guard.Arm()
		if res.Changed {
			if done, changed := m.book.CommitContent(m.dragDate, res.Content); changed {
				return m, awaitWrite(done)
			}
		}
		return m, nil
	}
	return m, nil
}

// hitLine maps a terminal coordinate to a day-pane line index.
func (m Model) hitLine(x, y int) (int, bool) {
	if x < dayPaneLeft {
		return 0, false
	}
	idx := y - dayPaneTop
	if idx < 0 || idx >= len(m.lines()) {
		return 0, false
	}
	return idx, true
}

func (m Model) lines() []content.Line {
	return content.Parse(m.book.Content(m.selected))
}

func directionFor(t tea.KeyType) dates.Direction {
	switch t {
	case tea.KeyUp:
		return dates.Up
	case tea.KeyDown:
		return dates.Down
	case tea.KeyLeft:
		return dates.Left
	}
	return dates.Right
}
