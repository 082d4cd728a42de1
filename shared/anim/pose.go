// Package anim derives tick-counted animation timing from the poses a
// combatant passes through. Renderers read it; the simulation never does.
package anim

import "github.com/automoto/gladiator/shared/duel"

// PoseClock remembers the current pose and how many ticks it has lasted.
type PoseClock struct {
	Current  duel.Pose
	Previous duel.Pose
	Ticks    int // ticks spent in Current, 0 on the tick it was entered
}

// Observe records this tick's pose. It reports true when the pose changed,
// which restarts the tick count.
func (c *PoseClock) Observe(p duel.Pose) bool {
	if p == c.Current {
		c.Ticks++
		return false
	}
	c.Previous = c.Current
	c.Current = p
	c.Ticks = 0
	return true
}

// Reset starts over in pose p as if nothing came before it.
func (c *PoseClock) Reset(p duel.Pose) {
	*c = PoseClock{Current: p, Previous: p}
}

// FallProgress is how far a dead fighter has toppled, from 0 (upright) to 1
// (lying down), after ticks in the dead pose.
func FallProgress(ticks, frames int) float64 {
	if frames <= 0 || ticks >= frames {
		return 1
	}
	if ticks <= 0 {
		return 0
	}
	// Ease out so the body slows as it lands
	t := float64(ticks) / float64(frames)
	return 1 - (1-t)*(1-t)
}

// StunBlink reports whether a stunned body is drawn dimmed on this tick.
// The body alternates every period ticks, starting dimmed.
func StunBlink(ticks, period int) bool {
	if period <= 0 {
		return true
	}
	return (ticks/period)%2 == 0
}
