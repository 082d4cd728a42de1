package botai

import (
	"math"
	"math/rand"

	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/shared/gamemath"
)

// State is the plan a Brain is following between re-evaluations.
type State int

const (
	StateIdle State = iota
	StateApproach
	StateAttack
	StateGuard
)

func (s State) String() string {
	switch s {
	case StateApproach:
		return "approach"
	case StateAttack:
		return "attack"
	case StateGuard:
		return "guard"
	}
	return "idle"
}

// Brain drives one side of a duel. It keeps only its own timers and random
// source; everything it knows about the fight comes from snapshots, so it
// can be replaced by a human between matches.
type Brain struct {
	Side       duel.Side
	Difficulty Difficulty
	Profile    Profile
	State      State

	tun duel.Tunables
	rng *rand.Rand

	decisionTimer  int
	attackCooldown int
	pressedLast    bool

	threatTicks  int // consecutive ticks the current enemy thrust has been seen
	threatRolled bool
	parryThis    bool
}

// NewBrain creates a Brain. The seed makes its choices reproducible.
func NewBrain(side duel.Side, d Difficulty, tun duel.Tunables, seed int64) *Brain {
	profile, ok := Profiles[d]
	if !ok {
		d = DifficultyNormal
		profile = Profiles[d]
	}
	return &Brain{
		Side:       side,
		Difficulty: d,
		Profile:    profile,
		tun:        tun,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Reset clears timers for a new match.
func (b *Brain) Reset() {
	b.State = StateIdle
	b.decisionTimer = 0
	b.attackCooldown = 0
	b.pressedLast = false
	b.clearThreat()
}

// Think returns this tick's input for the brain's side.
func (b *Brain) Think(snap duel.Snapshot) duel.Input {
	var in duel.Input
	me, foe := snap.Fighter(b.Side), snap.Fighter(b.Side.Opponent())

	if snap.Status == duel.StatusWon || !me.Alive || !foe.Alive {
		b.State = StateIdle
		return in
	}

	if b.decisionTimer > 0 {
		b.decisionTimer--
	}
	if b.attackCooldown > 0 {
		b.attackCooldown--
	}

	// Stun overrides control anyway; don't waste the press.
	if me.StunFrames > 0 {
		b.pressedLast = false
		return in
	}

	// PRIORITY 1: react to an incoming thrust
	if b.guard(me, foe, &in) {
		b.State = StateGuard
		b.pressedLast = false
		return in
	}

	if b.decisionTimer <= 0 || b.State == StateGuard {
		b.State = b.decide(me, foe)
		b.decisionTimer = max(1, b.Profile.ReactionDelay/3)
	}

	switch b.State {
	case StateApproach:
		b.approach(me, foe, &in)
	case StateAttack:
		b.attack(me, foe, &in)
	}

	b.pressedLast = in.AttackPressed
	return in
}

// strikeGap is the horizontal distance the brain tries to keep: close enough
// that the spear at full extension passes through the enemy's centre.
func (b *Brain) strikeGap() float64 {
	return b.tun.SpearReachMax() - b.tun.BodyRadius/2
}

// inFront returns the distance to foe along me's facing axis.
func inFront(me, foe duel.FighterSnapshot) float64 {
	return (foe.Position.X - me.Position.X) * me.Facing
}

func (b *Brain) inRange(me, foe duel.FighterSnapshot) bool {
	gap := inFront(me, foe)
	dy := math.Abs(foe.Position.Y - me.Position.Y)
	return gap > 0 && math.Abs(gap-b.strikeGap()) <= b.tun.BodyRadius*0.7 && dy <= b.Profile.AimSlack
}

func (b *Brain) decide(me, foe duel.FighterSnapshot) State {
	if b.inRange(me, foe) {
		return StateAttack
	}
	return StateApproach
}

// steer sets movement flags toward target with a dead zone of one step.
func (b *Brain) steer(me duel.FighterSnapshot, target gamemath.Vec2, in *duel.Input) {
	d := target.Sub(me.Position)
	step := b.tun.MoveSpeed
	if d.X > step {
		in.MoveRight = true
	} else if d.X < -step {
		in.MoveLeft = true
	}
	if d.Y > step {
		in.MoveDown = true
	} else if d.Y < -step {
		in.MoveUp = true
	}
}

func (b *Brain) strikeSpot(me, foe duel.FighterSnapshot) gamemath.Vec2 {
	return gamemath.V(foe.Position.X-me.Facing*b.strikeGap(), foe.Position.Y)
}

func (b *Brain) approach(me, foe duel.FighterSnapshot, in *duel.Input) {
	b.steer(me, b.strikeSpot(me, foe), in)
}

func (b *Brain) attack(me, foe duel.FighterSnapshot, in *duel.Input) {
	b.steer(me, b.strikeSpot(me, foe), in)

	if b.attackCooldown > 0 || me.Thrusting || b.pressedLast || !b.inRange(me, foe) {
		return
	}
	if b.Profile.Patience > 0 && b.rng.Float64() < b.Profile.Patience {
		return
	}
	in.AttackPressed = true
	b.attackCooldown = b.Profile.AttackCooldown
}

// threatened reports whether foe's spear, at full extension, would come near
// enough to touch me's body or shield.
func (b *Brain) threatened(me, foe duel.FighterSnapshot) bool {
	base := gamemath.V(foe.Position.X+foe.Facing*foe.BodyRadius, foe.Position.Y)
	far := gamemath.V(foe.Position.X+foe.Facing*b.tun.SpearReachMax(), foe.Position.Y)
	return gamemath.CircleTouchesSegment(me.Position, b.tun.GuardReach(), base, far)
}

func (b *Brain) clearThreat() {
	b.threatTicks = 0
	b.threatRolled = false
	b.parryThis = false
}

func (b *Brain) guard(me, foe duel.FighterSnapshot, in *duel.Input) bool {
	if !foe.Thrusting || !b.threatened(me, foe) {
		b.clearThreat()
		return false
	}

	b.threatTicks++
	if b.threatTicks < max(1, b.Profile.ReactionDelay/5) {
		return false
	}
	if !b.threatRolled {
		b.threatRolled = true
		b.parryThis = b.rng.Float64() < b.Profile.ParryChance
	}
	if !b.parryThis {
		return false
	}

	in.ParryHeld = true
	// A raised shield sits above the body; put it in the spear's path.
	lift := b.tun.BodyRadius + b.tun.ShieldOffset
	b.steer(me, gamemath.V(me.Position.X, foe.Position.Y+lift), in)
	return true
}
