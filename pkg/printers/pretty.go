package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/daybook"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/glyph"
)

// Crown marks a day whose every task is completed.
const Crown = "👑"

type PrettyPrint struct {
	// ShowWeekday appends the weekday to day titles.
	ShowWeekday bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Day prints one day: a title line, the holiday mark if any, then the task
// list. Done lines render faint; an all-done day earns the crown.
func (pp *PrettyPrint) Day(d dates.Key, text, holiday string) {
	title := string(d)
	if pp.ShowWeekday {
		title += " " + d.Weekday().String()[:3]
	}

	t := color.New(color.Bold, color.Underline)
	h := color.New(color.FgHiRed)
	_, _ = t.Print(title)
	if holiday != "" {
		_, _ = h.Printf("  %s", holiday)
	}
	if content.AllDone(text) {
		fmt.Printf("  %s", Crown)
	}
	fmt.Println("")

	pp.Lines(text)
}

// Lines prints a task list without a title.
func (pp *PrettyPrint) Lines(text string) {
	lines := content.Parse(text)
	if len(lines) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	open := color.New()
	done := color.New(color.Faint)

	for _, l := range lines {
		if l.Done {
			_, _ = done.Printf("%s%s\n", glyph.Done.Prefix(), glyph.Strike(l.Text))
		} else {
			_, _ = open.Printf("%s%s\n", glyph.Task.Prefix(), l.Text)
		}
	}
	fmt.Println("")
}

// SearchResults renders matches as a date/content table, one row per line of
// each matched day.
func (pp *PrettyPrint) SearchResults(matches []daybook.Match) {
	if len(matches) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no matches\n\n")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Content"))
	for _, m := range matches {
		for i, l := range content.Parse(m.Content) {
			d := ""
			if i == 0 {
				d = string(m.Date)
			}
			tbl.AddRow(d, l.String())
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Key prints the marker legend.
func (pp *PrettyPrint) Key() {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mark"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.AddRow(Crown, "every task completed")
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
