package glyph

import "fmt"

// Marker distinguishes an open task line from a completed one.
type Marker int

const (
	Task Marker = iota
	Done
)

type Glyph struct {
	Symbol  string
	Meaning string
}

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	underCode  = 4
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Symbol:  "•",
			Meaning: "task",
		}, {
			Symbol:  "✔",
			Meaning: "task completed",
		},
	}
}

func (m Marker) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Marker) String() string {
	return m.Glyph().Symbol
}

// Prefix is the serialized line prefix for the marker, symbol plus a space.
func (m Marker) Prefix() string {
	return m.Glyph().Symbol + " "
}
