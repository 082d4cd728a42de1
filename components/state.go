package components

import (
	"github.com/automoto/gladiator/shared/anim"
	"github.com/yohamta/donburi"
)

// StateData is the fighter's pose as the renderers see it, with the ticks
// spent in it for stun blinking and the death fall.
type StateData struct {
	anim.PoseClock
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type MovingState struct{}
type AttackingState struct{}
type ParryingState struct{}
type StunnedState struct{}
type DeadState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Moving = donburi.NewComponentType[MovingState]()
var Attacking = donburi.NewComponentType[AttackingState]()
var Parrying = donburi.NewComponentType[ParryingState]()
var Stunned = donburi.NewComponentType[StunnedState]()
var Dead = donburi.NewComponentType[DeadState]()
