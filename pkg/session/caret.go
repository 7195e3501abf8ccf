package session

import (
	"strings"
	"unicode/utf8"

	"tableflip.dev/haru/pkg/dates"
)

// Move applies an arrow key to the caret. When the caret sits at the text
// boundary for that direction there is nothing left to consume, so the key
// becomes a navigation request toward the adjacent day and the second return
// is true. Left/Up fire at offset zero; Right/Down fire at the end.
func (s *Session) Move(d dates.Direction) (dates.Key, bool) {
	if s.state != Edit {
		return s.date.Shift(d), true
	}
	switch d {
	case dates.Left:
		if s.caret == 0 {
			return s.date.Shift(d), true
		}
		_, size := lastRune(s.draft[:s.caret])
		s.caret -= size
	case dates.Right:
		if s.caret == len(s.draft) {
			return s.date.Shift(d), true
		}
		_, size := utf8.DecodeRuneInString(s.draft[s.caret:])
		s.caret += size
	case dates.Up:
		if s.caret == 0 {
			return s.date.Shift(d), true
		}
		s.caret = moveLine(s.draft, s.caret, -1)
	case dates.Down:
		if s.caret == len(s.draft) {
			return s.date.Shift(d), true
		}
		s.caret = moveLine(s.draft, s.caret, +1)
	}
	return dates.None, false
}

// moveLine shifts the caret one line up or down, preserving the column where
// the target line is long enough and clamping otherwise. At the first or
// last line it clamps to the text boundary, which is what arms the next
// press to navigate away.
func moveLine(text string, caret, delta int) int {
	lineStart := strings.LastIndexByte(text[:caret], '\n') + 1
	col := caret - lineStart

	if delta < 0 {
		if lineStart == 0 {
			return 0
		}
		prevStart := strings.LastIndexByte(text[:lineStart-1], '\n') + 1
		prevLen := lineStart - 1 - prevStart
		return prevStart + min(col, prevLen)
	}

	lineEnd := strings.IndexByte(text[caret:], '\n')
	if lineEnd < 0 {
		return len(text)
	}
	nextStart := caret + lineEnd + 1
	nextEnd := strings.IndexByte(text[nextStart:], '\n')
	nextLen := len(text) - nextStart
	if nextEnd >= 0 {
		nextLen = nextEnd
	}
	return nextStart + min(col, nextLen)
}

func lastRune(s string) (rune, int) {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return r, 1
	}
	return r, size
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
