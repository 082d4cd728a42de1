package duel

import (
	"github.com/automoto/gladiator/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	tagHurt  = "hurt"
	tagSpear = "spear"

	broadphaseCell = 16
)

// ResolutionKind is the outcome of one attacker/defender pair in a tick.
type ResolutionKind int

const (
	ResolveParry ResolutionKind = iota + 1
	ResolveHit
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolveParry:
		return "Parry"
	case ResolveHit:
		return "Hit"
	}
	return "None"
}

// Resolution records a parry or body hit that was applied this tick.
type Resolution struct {
	Kind     ResolutionKind
	Attacker Side
	Defender Side
	Tip      gamemath.Vec2 // spear tip world position at contact
}

// Resolver decides parry vs body hit vs miss between the two combatants.
//
// A resolv space acts as the broadphase: each combatant owns a square hurt
// region large enough to contain its body margin and its shield in any
// orientation, and each spear tip is a 1x1 probe. Only pairs whose probe
// shares a cell with the defender's hurt region go on to the exact geometric
// tests, which alone decide the outcome. The hurt regions are also what the
// debug overlay draws.
type Resolver struct {
	tun   Tunables
	space *resolv.Space
	pad   float64 // world -> space offset, so probes beyond the walls stay in the grid
	guard float64

	hurt [2]*resolv.Object
	tip  [2]*resolv.Object
}

// NewResolver builds the broadphase space for an arena.
func NewResolver(arena Arena, t Tunables) *Resolver {
	pad := t.SpearReachMax() + t.GuardReach()
	guard := t.GuardReach()

	w := int(arena.Width+2*pad) + broadphaseCell
	h := int(arena.Height+2*pad) + broadphaseCell
	r := &Resolver{
		tun:   t,
		space: resolv.NewSpace(w, h, broadphaseCell, broadphaseCell),
		pad:   pad,
		guard: guard,
	}
	for _, s := range Sides {
		r.hurt[s] = resolv.NewObject(0, 0, 2*guard, 2*guard, tagHurt)
		r.tip[s] = resolv.NewObject(0, 0, 1, 1, tagSpear)
		r.space.Add(r.hurt[s], r.tip[s])
	}
	return r
}

// Resolve runs the ordered pairs Left->Right then Right->Left and applies the
// effects of every contact to the combatants. It returns as soon as a body
// hit lands.
func (r *Resolver) Resolve(fighters [2]*Combatant) []Resolution {
	r.sync(fighters)

	var out []Resolution
	for _, atk := range Sides {
		attacker, defender := fighters[atk], fighters[atk.Opponent()]
		if !attacker.Alive || !defender.Alive || attacker.Phase != PhaseThrusting {
			continue
		}
		if !r.nearby(atk) {
			continue
		}

		tip := attacker.SpearTip()
		if defender.ParryHeld && defender.ShieldCovers(tip) {
			r.applyParry(attacker, defender)
			out = append(out, Resolution{Kind: ResolveParry, Attacker: atk, Defender: defender.Side, Tip: tip})
			continue
		}

		if !attacker.HitAppliedThisSwing && gamemath.Distance(tip, defender.Position) < defender.Radius+r.tun.HitMargin {
			attacker.cancelThrust()
			defender.kill()
			out = append(out, Resolution{Kind: ResolveHit, Attacker: atk, Defender: defender.Side, Tip: tip})
			return out
		}
	}
	return out
}

func (r *Resolver) applyParry(attacker, defender *Combatant) {
	attacker.cancelThrust()

	dir := gamemath.Sign(attacker.Position.X - defender.Position.X)
	if attacker.Position.X == defender.Position.X {
		dir = -attacker.Facing
	}
	attacker.applyStun(gamemath.Vec2{X: dir * r.tun.ParryKnockback}, r.tun.ParryStunFrames)
}

// nearby is the broadphase query for the pair attacking from side atk.
func (r *Resolver) nearby(atk Side) bool {
	col := r.tip[atk].Check(0, 0, tagHurt)
	if col == nil {
		return false
	}
	target := r.hurt[atk.Opponent()]
	for _, o := range col.ObjectsByTags(tagHurt) {
		if o == target {
			return true
		}
	}
	return false
}

func (r *Resolver) sync(fighters [2]*Combatant) {
	for _, s := range Sides {
		c := fighters[s]

		hurt := r.hurt[s]
		hurt.X = c.Position.X - r.guard + r.pad
		hurt.Y = c.Position.Y - r.guard + r.pad
		hurt.Update()

		tip := c.SpearTip()
		probe := r.tip[s]
		probe.X = tip.X + r.pad
		probe.Y = tip.Y + r.pad
		probe.Update()
	}
}

// HurtRegion returns the broadphase square of side s in world coordinates,
// as x, y, w, h. Used by the debug overlay.
func (r *Resolver) HurtRegion(s Side) (x, y, w, h float64) {
	o := r.hurt[s]
	return o.X - r.pad, o.Y - r.pad, o.W, o.H
}
