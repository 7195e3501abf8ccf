package options

import "testing"

func TestWrap(t *testing.T) {
	if got := Wrap("a b c d", 3); got != "a b\nc d" {
		t.Errorf("Wrap = %q", got)
	}
	if got := Wrap("  spaced   out  ", 80); got != "spaced out" {
		t.Errorf("Wrap collapses whitespace, got %q", got)
	}
	if got := Wrap("", 80); got != "" {
		t.Errorf("Wrap of empty = %q", got)
	}
	if got := Wrap("unbreakable", 3); got != "unbreakable" {
		t.Errorf("long word = %q", got)
	}
}
