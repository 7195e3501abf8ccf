// Package drag turns pointer movement into live line reordering for one
// day's content: deltas snap to whole-line steps, the dragged line carries a
// residual visual offset between snap points, and release feeds the permuted
// list back into the normal commit path.
package drag

import (
	"math"

	"tableflip.dev/haru/pkg/content"
)

// DefaultTapThreshold is the fraction of a line height the pointer must
// travel before a drag stops counting as a tap. Expressing it relative to
// the line height keeps the feel consistent whether the coordinate space is
// pixels or terminal rows.
const DefaultTapThreshold = 0.25

// Drag is one in-progress reorder. It is a plain local state machine: callers
// feed it pointer coordinates and render from Lines/Offset; no global pointer
// state is shared between drags.
type Drag struct {
	lines      []content.Line
	original   []content.Line
	index      int // current position of the dragged line
	lineHeight float64
	originY    float64 // coordinate of the initial press, never re-based
	baseY      float64 // reference coordinate, re-based on every snap
	lastY      float64
	travel     float64 // max absolute travel from the origin
	threshold  float64
}

// Start begins dragging the line at index. It returns nil when there is
// nothing to reorder: fewer than two lines, a bad index, or a non-positive
// line height.
func Start(lines []content.Line, index int, lineHeight, y float64) *Drag {
	if len(lines) < 2 || index < 0 || index >= len(lines) || lineHeight <= 0 {
		return nil
	}
	snapshot := make([]content.Line, len(lines))
	copy(snapshot, lines)
	working := make([]content.Line, len(lines))
	copy(working, lines)
	return &Drag{
		lines:      working,
		original:   snapshot,
		index:      index,
		lineHeight: lineHeight,
		originY:    y,
		baseY:      y,
		lastY:      y,
		threshold:  DefaultTapThreshold * lineHeight,
	}
}

// Index is the dragged line's current position in the working order.
func (d *Drag) Index() int { return d.index }

// Lines is the current working order; the rendering layer lays lines out in
// this order and applies Offset to the dragged one.
func (d *Drag) Lines() []content.Line { return d.lines }

// Offset is the residual unsnapped delta, in the same units as the pointer
// coordinate, so the dragged line visually tracks the pointer between snap
// points.
func (d *Drag) Offset() float64 { return d.lastY - d.baseY }

// Move advances the drag to pointer coordinate y. Whole-line steps splice
// the dragged line to its target slot and re-base the reference coordinate at
// the swap point, so later deltas are measured from the last swap rather
// than the drag origin.
func (d *Drag) Move(y float64) {
	d.lastY = y
	if t := math.Abs(y - d.originY); t > d.travel {
		d.travel = t
	}

	steps := int(math.Round((y - d.baseY) / d.lineHeight))
	if steps == 0 {
		return
	}
	target := clamp(d.index+steps, 0, len(d.lines)-1)
	if target == d.index {
		return
	}

	moved := d.lines[d.index]
	d.lines = append(d.lines[:d.index], d.lines[d.index+1:]...)
	rest := append(make([]content.Line, 0, len(d.lines)+1), d.lines[:target]...)
	rest = append(rest, moved)
	d.lines = append(rest, d.lines[target:]...)

	d.index = target
	d.baseY = y
}

// Result describes what a finished drag decided.
type Result struct {
	// Content is the serialized working order.
	Content string
	// Changed is true when the order differs from the starting order; only
	// then should a write be issued.
	Changed bool
	// Tap is true when the pointer never travelled past the threshold; the
	// gesture was a click, not a reorder.
	Tap bool
}

// Release ends the drag. The caller passes Content through the usual
// clean-and-commit path when Changed, and must arm a click guard so the
// pointer-up does not double as a tap-to-edit on the same cell.
func (d *Drag) Release() Result {
	out := content.Serialize(d.lines)
	orig := content.Serialize(d.original)
	// A reordered list is never a tap, no matter how short the travel was;
	// the threshold only disambiguates gestures that moved nothing.
	if d.travel < d.threshold && out == orig {
		return Result{Content: orig, Tap: true}
	}
	return Result{
		Content: out,
		Changed: out != orig,
	}
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
