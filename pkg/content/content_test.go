package content

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanDropsBlankAndMarkerOnlyLines(t *testing.T) {
	got := Clean("• a\n\n•  \n• b")
	if got != "• a\n• b" {
		t.Errorf("Clean = %q, want %q", got, "• a\n• b")
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"• a\n\n•  \n• b",
		"✔ done\n•\n   \n• open  ",
		"plain line\n\n\n•",
		"\n\n\n",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean(Clean(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestCleanLeavesNoInvariantViolations(t *testing.T) {
	for _, in := range []string{"• a\n\n• \n✔ b", "•\n•\n•", "  \n\t\n• x  \t"} {
		out := Clean(in)
		if out == "" {
			continue
		}
		for _, l := range strings.Split(out, "\n") {
			trimmed := strings.TrimSpace(l)
			if trimmed == "" || trimmed == "•" {
				t.Errorf("Clean(%q) kept invalid line %q", in, l)
			}
		}
	}
}

func TestParseSerializeRoundTrip(t *testing.T) {
	lines := []Line{
		{Done: false, Text: "buy milk"},
		{Done: true, Text: "call mom"},
		{Done: false, Text: "check https://example.com for details"},
	}
	if got := Parse(Serialize(lines)); !reflect.DeepEqual(got, lines) {
		t.Errorf("round-trip mismatch: %#v", got)
	}
}

func TestParseToleratesUnmarkedLines(t *testing.T) {
	got := Parse("imported without marker\n✔ done one")
	want := []Line{
		{Done: false, Text: "imported without marker"},
		{Done: true, Text: "done one"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %#v", got)
	}
}

func TestToggleIsInvolutive(t *testing.T) {
	lines := Parse("• buy milk\n• call mom\n✔ ship box")
	for i := range lines {
		if got := Toggle(Toggle(lines, i), i); !reflect.DeepEqual(got, lines) {
			t.Errorf("double toggle at %d changed lines: %#v", i, got)
		}
	}
}

func TestToggleScenario(t *testing.T) {
	got := ToggleRaw("• buy milk\n• call mom", 0)
	if got != "✔ buy milk\n• call mom" {
		t.Errorf("ToggleRaw = %q", got)
	}
}

func TestToggleOutOfRangeIsNoOp(t *testing.T) {
	lines := Parse("• only")
	for _, i := range []int{-1, 1, 99} {
		if got := Toggle(lines, i); !reflect.DeepEqual(got, lines) {
			t.Errorf("Toggle(%d) mutated lines", i)
		}
	}
	if got := ToggleRaw("", 0); got != "" {
		t.Errorf("ToggleRaw on empty content = %q", got)
	}
}

func TestToggleInsertsMarkerOnUnmarkedLine(t *testing.T) {
	if got := ToggleRaw("legacy line", 0); got != "✔ legacy line" {
		t.Errorf("ToggleRaw = %q", got)
	}
}

func TestAllDone(t *testing.T) {
	if !AllDone("✔ a\n✔ b") {
		t.Error("fully completed content should report all done")
	}
	if AllDone("✔ a\n• b") {
		t.Error("mixed content should not report all done")
	}
	if AllDone("") {
		t.Error("empty content should not report all done")
	}
}
