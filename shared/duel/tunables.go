// Package duel is the deterministic combat core of the gladiator duel: two
// combatants, a tick-driven state machine for each, and the hit-resolution
// rules between a thrusting spear and a shield or body.
//
// The package never touches a drawing surface or an input device. Callers
// feed one Input per side per tick into Match.Tick and read back Snapshots
// and Events.
package duel

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/gladiator/shared/gamemath"
)

// Tunables holds every named constant of the simulation. Units are arena
// pixels and ticks.
type Tunables struct {
	// Body
	BodyRadius float64 `yaml:"body_radius"`
	MoveSpeed  float64 `yaml:"move_speed"`
	EdgeMargin float64 `yaml:"edge_margin"` // gap kept between body and arena wall

	// Spear
	AttackDurationFrames int     `yaml:"attack_duration_frames"`
	MaxThrust            float64 `yaml:"max_thrust"`
	SpearRestLength      float64 `yaml:"spear_rest_length"`

	// Shield
	ShieldOffset    float64 `yaml:"shield_offset"` // shield centre sits at radius+offset along facing
	ShieldRx        float64 `yaml:"shield_rx"`
	ShieldRy        float64 `yaml:"shield_ry"`
	ShieldSmoothing float64 `yaml:"shield_smoothing"`
	ParryAngle      float64 `yaml:"parry_angle"` // radians rotated inward while parrying

	// Resolution
	HitMargin       float64 `yaml:"hit_margin"`
	ParryKnockback  float64 `yaml:"parry_knockback"`   // units per tick
	ParryStunFrames int     `yaml:"parry_stun_frames"` // ticks
}

// DefaultTunables returns the reference values of the original duel.
func DefaultTunables() Tunables {
	return Tunables{
		BodyRadius: 28,
		MoveSpeed:  4,
		EdgeMargin: 10,

		AttackDurationFrames: 12,
		MaxThrust:            48,
		SpearRestLength:      60,

		ShieldOffset:    10,
		ShieldRx:        22,
		ShieldRy:        36,
		ShieldSmoothing: 0.35,
		ParryAngle:      math.Pi / 2,

		HitMargin:       4,
		ParryKnockback:  7,
		ParryStunFrames: 45,
	}
}

// Validate rejects tunables that would make the simulation degenerate.
func (t Tunables) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be a positive finite number, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be a non-negative finite number, got %v", name, v))
		}
	}

	positive("body_radius", t.BodyRadius)
	nonNegative("move_speed", t.MoveSpeed)
	nonNegative("edge_margin", t.EdgeMargin)
	if t.AttackDurationFrames < 1 {
		errs = append(errs, fmt.Errorf("attack_duration_frames must be at least 1, got %d", t.AttackDurationFrames))
	}
	nonNegative("max_thrust", t.MaxThrust)
	nonNegative("spear_rest_length", t.SpearRestLength)
	nonNegative("shield_offset", t.ShieldOffset)
	positive("shield_rx", t.ShieldRx)
	positive("shield_ry", t.ShieldRy)
	if !(t.ShieldSmoothing > 0 && t.ShieldSmoothing <= 1) {
		errs = append(errs, fmt.Errorf("shield_smoothing must be in (0, 1], got %v", t.ShieldSmoothing))
	}
	nonNegative("parry_angle", t.ParryAngle)
	if math.IsNaN(t.HitMargin) || math.IsInf(t.HitMargin, 0) {
		errs = append(errs, fmt.Errorf("hit_margin must be finite, got %v", t.HitMargin))
	}
	nonNegative("parry_knockback", t.ParryKnockback)
	if t.ParryStunFrames < 0 {
		errs = append(errs, fmt.Errorf("parry_stun_frames must not be negative, got %d", t.ParryStunFrames))
	}

	return errors.Join(errs...)
}

// SpearReachMax is the farthest the spear tip ever gets from its owner's centre.
func (t Tunables) SpearReachMax() float64 {
	return t.BodyRadius + t.SpearRestLength + t.MaxThrust
}

// GuardReach is the farthest point of the body margin or of the shield, in any
// orientation, from the owner's centre.
func (t Tunables) GuardReach() float64 {
	body := t.BodyRadius + t.HitMargin
	shield := t.BodyRadius + t.ShieldOffset + math.Max(t.ShieldRx, t.ShieldRy)
	return math.Max(body, shield)
}

// Arena is the rectangular floor both combatants are confined to, with the
// canonical spawn point of each side.
type Arena struct {
	Width  float64
	Height float64
	Spawns [2]gamemath.Vec2
}

// DefaultArena is the original 900x500 floor with spawns 220px in from each wall.
func DefaultArena() Arena {
	const w, h, inset = 900.0, 500.0, 220.0
	return Arena{
		Width:  w,
		Height: h,
		Spawns: [2]gamemath.Vec2{
			SideLeft:  {X: inset, Y: h / 2},
			SideRight: {X: w - inset, Y: h / 2},
		},
	}
}

// FacingAt returns the facing a combatant spawned at p gets: +1 in the left
// half of the arena, -1 otherwise.
func (a Arena) FacingAt(p gamemath.Vec2) float64 {
	if p.X < a.Width/2 {
		return 1
	}
	return -1
}

// Validate checks the arena against the tunables it will be played with.
func (a Arena) Validate(t Tunables) error {
	inset := t.BodyRadius + t.EdgeMargin
	if a.Width <= 2*inset || a.Height <= 2*inset {
		return fmt.Errorf("arena %vx%v is too small for body radius %v and edge margin %v",
			a.Width, a.Height, t.BodyRadius, t.EdgeMargin)
	}
	if a.FacingAt(a.Spawns[SideLeft]) != 1 {
		return fmt.Errorf("left spawn %v must be in the left half of a %v wide arena", a.Spawns[SideLeft], a.Width)
	}
	if a.FacingAt(a.Spawns[SideRight]) != -1 {
		return fmt.Errorf("right spawn %v must be in the right half of a %v wide arena", a.Spawns[SideRight], a.Width)
	}
	return nil
}

// clamp keeps a body of radius r at least margin away from every wall.
func (a Arena) clamp(p gamemath.Vec2, r, margin float64) gamemath.Vec2 {
	inset := r + margin
	return gamemath.Vec2{
		X: gamemath.ClampFloat(p.X, inset, a.Width-inset),
		Y: gamemath.ClampFloat(p.Y, inset, a.Height-inset),
	}
}
