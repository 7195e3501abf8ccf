package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/printers"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cal := m.viewCalendar()
	day := m.viewDay()
	body := lipgloss.JoinHorizontal(lipgloss.Top, cal, " ", day)

	parts := []string{
		titleStyle.Render("haru"),
		body,
	}
	if len(m.results) > 0 {
		parts = append(parts, m.viewResults())
	}
	parts = append(parts, m.viewFooter())
	return strings.Join(parts, "\n")
}

func (m Model) viewCalendar() string {
	cells := monthCells(m.selected.Year(), m.selected.Month(), m.book.Snapshot(), m.selected, m.today)
	grid := renderMonth(monthTitle(m.selected.Year(), m.selected.Month()), cells)
	grid += "\n\n" + m.viewYearStrip() + "\n" + m.viewMonthStrip()
	return paneStyle.Width(calendarWidth).Render(grid)
}

// viewYearStrip lists the configured years with the selected one marked. The
// all-years view collapses to its bounds so the pane keeps its width.
func (m Model) viewYearStrip() string {
	years := m.view.Years()
	if len(years) > 4 {
		return blankDayStyle.Render(fmt.Sprintf("%d..%d", years[0], years[len(years)-1]))
	}
	var b strings.Builder
	for i, y := range years {
		if i > 0 {
			b.WriteString(" ")
		}
		label := strconv.Itoa(y)
		if y == m.selected.Year() {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(blankDayStyle.Render(label))
		}
	}
	return b.String()
}

// viewMonthStrip lays out the months of the logical year containing the
// selection, so a calendar year reads Jan..Dec and an academic one
// Mar..Feb.
func (m Model) viewMonthStrip() string {
	months := m.stripMonths()
	var b strings.Builder
	for i, ym := range months {
		if i > 0 {
			if i%6 == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		label := ym.Month.String()[:3]
		if ym.Year == m.selected.Year() && ym.Month == m.selected.Month() {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(blankDayStyle.Render(label))
		}
	}
	return b.String()
}

func (m Model) viewDay() string {
	var b strings.Builder

	title := string(m.selected) + " " + m.selected.Weekday().String()[:3]
	b.WriteString(headerStyle.Render(title))
	if name := m.book.HolidayName(m.selected); name != "" {
		b.WriteString(" " + holidayStyle.Render(name))
	}
	if content.AllDone(m.book.Content(m.selected)) {
		b.WriteString(" " + crownStyle.Render(printers.Crown))
	}
	b.WriteString("\n")

	if m.editing() {
		b.WriteString(m.viewDraft())
	} else {
		b.WriteString(m.viewLines())
	}

	style := paneStyle
	if m.editing() {
		style = focusedPaneStyle
	}
	return style.Width(40).Render(b.String())
}

func (m Model) viewLines() string {
	lines := m.lines()
	if m.drag != nil {
		lines = m.drag.Lines()
	}
	if len(lines) == 0 {
		return blankDayStyle.Render("no tasks")
	}

	var b strings.Builder
	for i, l := range lines {
		style := openLineStyle
		if l.Done {
			style = doneLineStyle
		}
		text := l.Marker().Prefix() + l.Text
		switch {
		case m.drag != nil && i == m.drag.Index():
			text = draggingLineStyle.Render(text)
		case i == m.cursor:
			text = cursorLineStyle.Render(style.Render(text))
		default:
			text = style.Render(text)
		}
		b.WriteString(text)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// viewDraft renders the raw draft with a visible caret. The draft is shown
// as typed, markers and all; normalization happens on commit, not per
// keystroke.
func (m Model) viewDraft() string {
	draft := m.sess.Draft()
	caret := m.sess.Caret()

	before := draft[:caret]
	after := draft[caret:]

	var cursor, rest string
	if after == "" {
		cursor = caretStyle.Render(" ")
	} else if after[0] == '\n' {
		cursor = caretStyle.Render(" ")
		rest = after
	} else {
		r := []rune(after)
		cursor = caretStyle.Render(string(r[0]))
		rest = string(r[1:])
	}
	return before + cursor + rest
}

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("matches"))
	for _, r := range m.results {
		first := ""
		if ls := content.Parse(r.Content); len(ls) > 0 {
			first = ls[0].Text
			if len(ls) > 1 {
				first += fmt.Sprintf(" (+%d)", len(ls)-1)
			}
		}
		b.WriteString("\n" + string(r.Date) + "  " + first)
	}
	width := m.width - 4
	if width < 20 {
		width = 64
	}
	return paneStyle.Render(wordwrap.String(b.String(), width))
}

func (m Model) viewFooter() string {
	if m.mode == modeHoliday || m.mode == modeSearch || m.mode == modeJump {
		return m.input.View()
	}
	if m.errText != "" {
		return errorStyle.Render(m.errText)
	}

	var left string
	if m.editing() {
		bindings := m.keys.EditHelp()
		parts := make([]string, 0, len(bindings))
		for _, b := range bindings {
			parts = append(parts, b.Help().Key+" "+b.Help().Desc)
		}
		left = statusStyle.Render(strings.Join(parts, " · "))
	} else {
		left = m.help.View(m.keys)
	}
	if m.status != "" {
		return left + "\n" + statusStyle.Render(m.status)
	}
	return left
}
