package options

import "strings"

// Wrap80 reflows command help prose to the conventional 80 columns.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap lays words out greedily, breaking the line before any word that would
// run past width. Existing whitespace collapses; words longer than width get
// a line of their own.
func Wrap(text string, width int) string {
	words := strings.Fields(strings.TrimSpace(text))
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString(words[0])
	room := width - len(words[0])
	for _, word := range words[1:] {
		if len(word)+1 > room {
			b.WriteString("\n")
			b.WriteString(word)
			room = width - len(word)
			continue
		}
		b.WriteString(" ")
		b.WriteString(word)
		room -= 1 + len(word)
	}
	return b.String()
}
