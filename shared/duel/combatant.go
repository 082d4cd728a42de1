package duel

import (
	"math"

	"github.com/automoto/gladiator/shared/gamemath"
)

// AttackPhase is the spear's animation phase.
type AttackPhase int

const (
	PhaseIdle AttackPhase = iota
	PhaseThrusting
)

func (p AttackPhase) String() string {
	if p == PhaseThrusting {
		return "Thrusting"
	}
	return "Idle"
}

// Pose summarises a combatant for renderers and state tags.
type Pose int

const (
	PoseIdle Pose = iota
	PoseMoving
	PoseAttacking
	PoseParrying
	PoseStunned
	PoseDead
)

func (p Pose) String() string {
	switch p {
	case PoseMoving:
		return "Moving"
	case PoseAttacking:
		return "Attacking"
	case PoseParrying:
		return "Parrying"
	case PoseStunned:
		return "Stunned"
	case PoseDead:
		return "Dead"
	}
	return "Idle"
}

// Stun is the forced-displacement state applied to an attacker whose thrust
// was parried. While present it overrides all player control.
type Stun struct {
	FramesRemaining int
	Knockback       gamemath.Vec2 // applied to position once per tick
}

// Combatant is one gladiator. Fields are exported for renderers and tests;
// gameplay code mutates them only through StartAttack, Advance and the
// resolver.
type Combatant struct {
	Side     Side
	Position gamemath.Vec2
	Facing   float64 // +1 faces right, -1 faces left; fixed at spawn
	Radius   float64
	Alive    bool

	Phase          AttackPhase
	ThrustFrame    int     // ticks since the current thrust started
	ThrustProgress float64 // ThrustFrame / AttackDurationFrames
	Reach          float64 // extra spear extension beyond rest length

	ShieldAngle       float64
	ShieldTargetAngle float64
	ParryHeld         bool

	Stun                *Stun
	HitAppliedThisSwing bool
	Moving              bool

	tun   Tunables
	arena Arena
}

// NewCombatant places a fresh combatant at the arena's canonical spawn for side.
func NewCombatant(side Side, arena Arena, t Tunables) *Combatant {
	spawn := arena.Spawns[side]
	c := &Combatant{
		Side:     side,
		Position: spawn,
		Facing:   arena.FacingAt(spawn),
		Radius:   t.BodyRadius,
		Alive:    true,
		tun:      t,
		arena:    arena,
	}
	c.clamp()
	return c
}

// Stunned reports whether a stun is active.
func (c *Combatant) Stunned() bool {
	return c.Stun != nil
}

// CanAttack reports whether a new thrust may begin this tick.
func (c *Combatant) CanAttack() bool {
	return c.Alive && c.Stun == nil && c.Phase == PhaseIdle
}

// StartAttack begins a thrust when the attack input is pressed and the
// combatant is idle, alive and not stunned. Anything else is ignored: there
// is no attack buffering.
func (c *Combatant) StartAttack(in Input) {
	if !in.AttackPressed || !c.CanAttack() {
		return
	}
	c.Phase = PhaseThrusting
	c.ThrustFrame = 0
	c.ThrustProgress = 0
	c.Reach = 0
	c.HitAppliedThisSwing = false
}

// Advance runs one tick of the combatant's own state machine.
func (c *Combatant) Advance(in Input) {
	c.Moving = false
	if !c.Alive {
		return
	}

	if c.Stun != nil {
		c.advanceStun()
		return
	}

	c.move(in)
	c.updateShield(in)
	c.StartAttack(in)
	c.advanceThrust()
}

func (c *Combatant) advanceStun() {
	c.Position = c.Position.Add(c.Stun.Knockback)
	c.clamp()
	c.Stun.FramesRemaining--
	if c.Stun.FramesRemaining <= 0 {
		c.Stun.Knockback = gamemath.Vec2{}
		c.Stun = nil
	}
}

func (c *Combatant) move(in Input) {
	var d gamemath.Vec2
	if in.MoveUp {
		d.Y -= c.tun.MoveSpeed
	}
	if in.MoveDown {
		d.Y += c.tun.MoveSpeed
	}
	if in.MoveLeft {
		d.X -= c.tun.MoveSpeed
	}
	if in.MoveRight {
		d.X += c.tun.MoveSpeed
	}

	before := c.Position
	c.Position = c.Position.Add(d)
	c.clamp()
	c.Moving = c.Position != before
}

func (c *Combatant) updateShield(in Input) {
	c.ParryHeld = in.ParryHeld
	c.ShieldTargetAngle = 0
	if c.ParryHeld {
		// Inward, toward the arena centre.
		c.ShieldTargetAngle = -c.Facing * c.tun.ParryAngle
	}
	c.ShieldAngle = gamemath.Approach(c.ShieldAngle, c.ShieldTargetAngle, c.tun.ShieldSmoothing)
}

func (c *Combatant) advanceThrust() {
	if c.Phase != PhaseThrusting {
		return
	}
	c.ThrustFrame++
	c.ThrustProgress = float64(c.ThrustFrame) / float64(c.tun.AttackDurationFrames)
	c.Reach = c.tun.MaxThrust * math.Sin(c.ThrustProgress*math.Pi)
	if c.ThrustProgress >= 1 {
		c.resetThrust()
		c.HitAppliedThisSwing = false
	}
}

func (c *Combatant) resetThrust() {
	c.Phase = PhaseIdle
	c.ThrustFrame = 0
	c.ThrustProgress = 0
	c.Reach = 0
}

// cancelThrust ends the current thrust after it was resolved against a shield
// or a body. The hit guard stays set until the next thrust begins.
func (c *Combatant) cancelThrust() {
	c.resetThrust()
	c.HitAppliedThisSwing = true
}

// applyStun replaces any current stun. A non-positive duration is a no-op.
func (c *Combatant) applyStun(knockback gamemath.Vec2, frames int) {
	if frames <= 0 {
		return
	}
	c.Stun = &Stun{FramesRemaining: frames, Knockback: knockback}
}

func (c *Combatant) kill() {
	c.Alive = false
	c.Moving = false
}

func (c *Combatant) clamp() {
	c.Position = c.arena.clamp(c.Position, c.Radius, c.tun.EdgeMargin)
}

// SpearBase is where the shaft leaves the body.
func (c *Combatant) SpearBase() gamemath.Vec2 {
	return gamemath.Vec2{X: c.Position.X + c.Facing*c.Radius, Y: c.Position.Y}
}

// SpearTip is the world position of the spear point. Spears are always
// horizontal.
func (c *Combatant) SpearTip() gamemath.Vec2 {
	return gamemath.Vec2{
		X: c.Position.X + c.Facing*(c.Radius+c.tun.SpearRestLength+c.Reach),
		Y: c.Position.Y,
	}
}

// shieldLocalCenter is the shield centre in the combatant's unrotated frame.
func (c *Combatant) shieldLocalCenter() gamemath.Vec2 {
	return gamemath.Vec2{X: c.Facing * (c.Radius + c.tun.ShieldOffset)}
}

// ShieldCenter is the world position of the shield centre after rotation.
func (c *Combatant) ShieldCenter() gamemath.Vec2 {
	return gamemath.RotateAbout(c.shieldLocalCenter().Add(c.Position), c.Position, c.ShieldAngle)
}

// ShieldCovers reports whether a world point lies inside the shield ellipse.
// The point is taken into the shield's frame by rotating it by -ShieldAngle
// about the combatant's centre.
func (c *Combatant) ShieldCovers(p gamemath.Vec2) bool {
	p = gamemath.RotateAbout(p, c.Position, -c.ShieldAngle)
	return gamemath.InsideEllipse(p, c.shieldLocalCenter().Add(c.Position), c.tun.ShieldRx, c.tun.ShieldRy)
}

// Pose picks the most significant state for display.
func (c *Combatant) Pose() Pose {
	switch {
	case !c.Alive:
		return PoseDead
	case c.Stun != nil:
		return PoseStunned
	case c.Phase == PhaseThrusting:
		return PoseAttacking
	case c.ParryHeld:
		return PoseParrying
	case c.Moving:
		return PoseMoving
	}
	return PoseIdle
}
