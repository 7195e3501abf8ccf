// Package content implements the line-oriented day content model: an ordered
// task list serialized as marker-prefixed lines joined by newline.
package content

import (
	"strings"

	"tableflip.dev/haru/pkg/glyph"
)

// Line is one task entry within a day.
type Line struct {
	Done bool
	Text string
}

func (l Line) Marker() glyph.Marker {
	if l.Done {
		return glyph.Done
	}
	return glyph.Task
}

func (l Line) String() string {
	return l.Marker().Prefix() + l.Text
}

// Parse splits raw content into its ordered lines. A line starting with the
// done marker is completed, one starting with the task marker is open, and a
// bare unmarked line is treated as an open task so legacy or imported data
// still renders.
func Parse(raw string) []Line {
	if raw == "" {
		return nil
	}
	var lines []Line
	for _, l := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, glyph.Done.String()):
			lines = append(lines, Line{
				Done: true,
				Text: strings.TrimLeft(strings.TrimPrefix(trimmed, glyph.Done.String()), " "),
			})
		case strings.HasPrefix(trimmed, glyph.Task.String()):
			lines = append(lines, Line{
				Text: strings.TrimLeft(strings.TrimPrefix(trimmed, glyph.Task.String()), " "),
			})
		default:
			lines = append(lines, Line{Text: trimmed})
		}
	}
	return lines
}

// Serialize joins the lines back into persisted form, marker-prefixed and
// newline-separated, in sequence order.
func Serialize(lines []Line) string {
	if len(lines) == 0 {
		return ""
	}
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, "\n")
}

// Clean is the single normalization choke-point every commit path runs before
// writing: right-trim each line, drop lines that are blank or a lone task
// marker, rejoin. Clean is idempotent.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	var kept []string
	for _, l := range strings.Split(raw, "\n") {
		l = strings.TrimRight(l, " \t")
		trimmed := strings.TrimSpace(l)
		if trimmed == "" || trimmed == glyph.Task.String() {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n")
}

// Toggle flips the done flag at index, leaving order and every other line
// untouched. An out-of-range index is a no-op: the index always comes from a
// freshly rendered list, but a stale click must not panic.
func Toggle(lines []Line, index int) []Line {
	if index < 0 || index >= len(lines) {
		return lines
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	out[index].Done = !out[index].Done
	return out
}

// ToggleRaw parses, toggles, and reserializes in one step. Lines that carried
// no marker gain one here, which is how unmarked legacy lines pick up the done
// marker on their first toggle.
func ToggleRaw(raw string, index int) string {
	return Serialize(Toggle(Parse(raw), index))
}

// AllDone reports whether the content has at least one line and every line is
// completed.
func AllDone(raw string) bool {
	lines := Parse(raw)
	if len(lines) == 0 {
		return false
	}
	for _, l := range lines {
		if !l.Done {
			return false
		}
	}
	return true
}
