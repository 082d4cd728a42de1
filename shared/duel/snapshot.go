package duel

import "github.com/automoto/gladiator/shared/gamemath"

// FighterSnapshot is the read-only view of a combatant handed to renderers
// and the CPU opponent.
type FighterSnapshot struct {
	Side         Side
	Position     gamemath.Vec2
	Facing       float64
	BodyRadius   float64
	SpearReach   float64
	SpearTip     gamemath.Vec2
	ShieldAngle  float64
	ShieldCenter gamemath.Vec2
	ParryHeld    bool
	Thrusting    bool
	Alive        bool
	Pose         Pose
	StunFrames   int
}

// Snapshot is the whole match at the end of a tick.
type Snapshot struct {
	Tick     uint64
	Status   Status
	Winner   Side // meaningful only when Status is StatusWon
	Fighters [2]FighterSnapshot
}

// Snapshot copies the combatant's renderable state.
func (c *Combatant) Snapshot() FighterSnapshot {
	s := FighterSnapshot{
		Side:         c.Side,
		Position:     c.Position,
		Facing:       c.Facing,
		BodyRadius:   c.Radius,
		SpearReach:   c.Reach,
		SpearTip:     c.SpearTip(),
		ShieldAngle:  c.ShieldAngle,
		ShieldCenter: c.ShieldCenter(),
		ParryHeld:    c.ParryHeld,
		Thrusting:    c.Phase == PhaseThrusting,
		Alive:        c.Alive,
		Pose:         c.Pose(),
	}
	if c.Stun != nil {
		s.StunFrames = c.Stun.FramesRemaining
	}
	return s
}

// Fighter returns the snapshot of one side.
func (s Snapshot) Fighter(side Side) FighterSnapshot {
	return s.Fighters[side]
}
