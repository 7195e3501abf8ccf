package drag

import (
	"testing"
	"time"

	"tableflip.dev/haru/pkg/content"
)

func lines(texts ...string) []content.Line {
	out := make([]content.Line, 0, len(texts))
	for _, t := range texts {
		out = append(out, content.Line{Text: t})
	}
	return out
}

func order(ls []content.Line) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Text)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStartRejectsUndraggable(t *testing.T) {
	if d := Start(lines("only"), 0, 20, 0); d != nil {
		t.Error("expected nil drag for a single line")
	}
	if d := Start(lines("a", "b"), 5, 20, 0); d != nil {
		t.Error("expected nil drag for an out-of-range index")
	}
	if d := Start(lines("a", "b"), 0, 0, 0); d != nil {
		t.Error("expected nil drag for zero line height")
	}
}

func TestDragTwoLinesDown(t *testing.T) {
	d := Start(lines("X", "Y", "Z"), 0, 20, 100)

	d.Move(121) // one full step
	if got := order(d.Lines()); !equal(got, []string{"Y", "X", "Z"}) {
		t.Fatalf("after one step: %v", got)
	}
	d.Move(142) // one more step from the re-based reference
	if got := order(d.Lines()); !equal(got, []string{"Y", "Z", "X"}) {
		t.Fatalf("after two steps: %v", got)
	}

	res := d.Release()
	if res.Tap {
		t.Error("a 21-unit drag is not a tap")
	}
	if !res.Changed {
		t.Error("order changed, expected Changed")
	}
	if want := content.Serialize(lines("Y", "Z", "X")); res.Content != want {
		t.Errorf("content = %q, want %q", res.Content, want)
	}
}

func TestRowHeightDragReorders(t *testing.T) {
	// Terminal callers use a line height of one row; single-row moves must
	// still count as real drags there.
	d := Start(lines("X", "Y", "Z"), 0, 1, 10)
	d.Move(11)
	d.Move(12)

	res := d.Release()
	if res.Tap {
		t.Error("a two-row drag is not a tap")
	}
	if !res.Changed {
		t.Error("order changed, expected Changed")
	}
	if want := content.Serialize(lines("Y", "Z", "X")); res.Content != want {
		t.Errorf("content = %q, want %q", res.Content, want)
	}
}

func TestTravelAnchorsAtOrigin(t *testing.T) {
	// One row per Move: each step re-bases the reference, but travel still
	// accumulates from the press coordinate.
	texts := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	d := Start(lines(texts...), 0, 1, 0)
	for y := 1.0; y <= 9; y++ {
		d.Move(y)
	}
	if d.Index() != 9 {
		t.Fatalf("index = %d, want 9", d.Index())
	}
	res := d.Release()
	if res.Tap {
		t.Error("a nine-row drag is not a tap, however slowly it went")
	}
	if !res.Changed {
		t.Error("expected Changed after moving the line to the bottom")
	}
}

func TestReorderBeneathThresholdIsNotATap(t *testing.T) {
	// A swap that happened within the tap threshold still commits; the
	// threshold only filters gestures that moved nothing.
	d := Start(lines("a", "b"), 0, 20, 0)
	d.threshold = 100
	d.Move(11) // one step, well under the inflated threshold
	res := d.Release()
	if res.Tap {
		t.Error("an order change must never be reported as a tap")
	}
	if !res.Changed {
		t.Error("expected Changed for the committed swap")
	}
}

func TestRebaseAfterSwap(t *testing.T) {
	d := Start(lines("a", "b", "c"), 0, 20, 0)

	// 11 units: rounds to one step, reference moves to 11.
	d.Move(11)
	if d.index != 1 {
		t.Fatalf("index = %d, want 1", d.index)
	}
	// Another 9 units is only 9 from the new reference: no second swap.
	d.Move(20)
	if d.index != 1 {
		t.Errorf("index = %d after sub-step move, want 1", d.index)
	}
	if off := d.Offset(); off != 9 {
		t.Errorf("offset = %v, want 9", off)
	}
}

func TestClampAtEdges(t *testing.T) {
	d := Start(lines("a", "b", "c"), 2, 20, 0)
	d.Move(500)
	if d.index != 2 {
		t.Errorf("index = %d, want clamped at 2", d.index)
	}
	d.Move(-500)
	if d.index != 0 {
		t.Errorf("index = %d, want clamped at 0", d.index)
	}
}

func TestDragIsPermutation(t *testing.T) {
	start := lines("one", "two", "three", "four", "five")
	d := Start(start, 1, 20, 0)
	for _, y := range []float64{15, 40, -30, 70, 22, -100} {
		d.Move(y)
	}
	res := d.Release()

	got := map[string]int{}
	for _, l := range content.Parse(res.Content) {
		got[l.Text]++
	}
	for _, l := range start {
		if got[l.Text] != 1 {
			t.Fatalf("line %q count = %d after drag", l.Text, got[l.Text])
		}
	}
	if len(got) != len(start) {
		t.Fatalf("got %d distinct lines, want %d", len(got), len(start))
	}
}

func TestTapCommitsNothing(t *testing.T) {
	d := Start(lines("a", "b"), 0, 20, 50)
	d.Move(52)
	res := d.Release()
	if !res.Tap {
		t.Error("2 units of travel should be a tap")
	}
	if res.Changed {
		t.Error("tap must not report a change")
	}
}

func TestClickGuard(t *testing.T) {
	now := time.Unix(0, 0)
	g := &ClickGuard{now: func() time.Time { return now }}

	if g.Consume() {
		t.Error("unarmed guard must not swallow clicks")
	}
	g.Arm()
	if !g.Consume() {
		t.Error("armed guard should swallow the first click")
	}
	if g.Consume() {
		t.Error("guard should swallow exactly one click")
	}

	g.Arm()
	now = now.Add(DefaultGuardTTL + time.Millisecond)
	if g.Consume() {
		t.Error("expired guard must not swallow clicks")
	}
}
