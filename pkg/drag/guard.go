package drag

import "time"

// ClickGuard swallows the click that a pointer-up synthesizes right after a
// real drag, so releasing a reorder does not also open the cell for editing.
// The guard expires on its own in case the click never arrives.
type ClickGuard struct {
	until time.Time
	now   func() time.Time
}

// DefaultGuardTTL bounds how long a release may shadow the next click.
const DefaultGuardTTL = 300 * time.Millisecond

func NewClickGuard() *ClickGuard {
	return &ClickGuard{now: time.Now}
}

// Arm starts swallowing the next click for the default window.
func (g *ClickGuard) Arm() { g.ArmFor(DefaultGuardTTL) }

func (g *ClickGuard) ArmFor(ttl time.Duration) {
	g.until = g.now().Add(ttl)
}

// Consume reports whether a click should be ignored. A guarded click
// disarms the guard; only one click is ever swallowed per Arm.
func (g *ClickGuard) Consume() bool {
	if g.now().Before(g.until) {
		g.until = time.Time{}
		return true
	}
	return false
}
