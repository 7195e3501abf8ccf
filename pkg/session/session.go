// Package session implements the per-day optimistic edit lifecycle: a cell
// moves from viewing rendered lines to editing a raw local draft and back,
// committing through the clean-then-write path without ever losing a
// keystroke to a concurrent snapshot push.
package session

import (
	"strings"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/glyph"
)

// State is the edit lifecycle phase.
type State int

const (
	View State = iota
	Edit
)

// Session owns one date key's draft. The draft and caret are exclusively
// local; the committed baseline is only replaced by feed pushes while the
// session is in View.
type Session struct {
	date     dates.Key
	state    State
	baseline string // last committed content known to this session
	draft    string
	caret    int // byte offset into draft
}

func New(date dates.Key, committed string) *Session {
	return &Session{date: date, baseline: committed}
}

func (s *Session) Date() dates.Key { return s.date }
func (s *Session) State() State    { return s.state }
func (s *Session) Editing() bool   { return s.state == Edit }
func (s *Session) Draft() string   { return s.draft }
func (s *Session) Caret() int      { return s.caret }
func (s *Session) Baseline() string {
	return s.baseline
}

// Activate moves View -> Edit, seeding the draft from the committed content
// with one fresh bullet pre-staged for immediate typing, caret at the end.
// Activating an already-editing session is a no-op.
func (s *Session) Activate() {
	if s.state == Edit {
		return
	}
	base := s.baseline
	if strings.TrimSpace(base) == "" || strings.TrimSpace(base) == glyph.Task.String() {
		s.draft = glyph.Task.Prefix()
	} else {
		s.draft = base + "\n" + glyph.Task.Prefix()
	}
	s.caret = len(s.draft)
	s.state = Edit
}

// SetDraft replaces the draft wholesale (used when an external text input
// owns the editing surface). Caret is clamped into range.
func (s *Session) SetDraft(text string, caret int) {
	if s.state != Edit {
		return
	}
	s.draft = text
	s.caret = clamp(caret, 0, len(text))
}

// InsertRune types one rune at the caret.
func (s *Session) InsertRune(r rune) {
	if s.state != Edit {
		return
	}
	s.draft = s.draft[:s.caret] + string(r) + s.draft[s.caret:]
	s.caret += len(string(r))
}

// InsertString types text at the caret.
func (s *Session) InsertString(text string) {
	if s.state != Edit || text == "" {
		return
	}
	s.draft = s.draft[:s.caret] + text + s.draft[s.caret:]
	s.caret += len(text)
}

// InsertNewline handles a plain Enter: a literal newline plus a fresh task
// marker at the caret, caret advanced past the inserted marker.
func (s *Session) InsertNewline() {
	s.InsertString("\n" + glyph.Task.Prefix())
}

// Backspace deletes the rune before the caret.
func (s *Session) Backspace() {
	if s.state != Edit || s.caret == 0 {
		return
	}
	_, size := lastRune(s.draft[:s.caret])
	s.draft = s.draft[:s.caret-size] + s.draft[s.caret:]
	s.caret -= size
}

// CommitResult reports what a commit decided.
type CommitResult struct {
	Content string // cleaned final content
	Changed bool   // true when Content differs from the committed baseline
}

// Commit runs Clean over the draft, returns to View, and optimistically
// adopts the cleaned text as the new baseline. The caller issues the store
// write when Changed.
func (s *Session) Commit() CommitResult {
	if s.state != Edit {
		return CommitResult{Content: s.baseline}
	}
	cleaned := content.Clean(s.draft)
	changed := cleaned != s.baseline
	s.baseline = cleaned
	s.draft = ""
	s.caret = 0
	s.state = View
	return CommitResult{Content: cleaned, Changed: changed}
}

// Discard throws the draft away and reverts to the committed baseline
// without writing.
func (s *Session) Discard() {
	s.draft = ""
	s.caret = 0
	s.state = View
}

// ApplySnapshot folds an incoming authoritative push into the session. While
// editing, the push is suppressed so the live draft survives; the baseline
// only tracks pushes in View.
func (s *Session) ApplySnapshot(committed string) {
	if s.state == Edit {
		return
	}
	s.baseline = committed
}
