// Package control converts a fighter's held actions into the per-tick
// input the match consumes. Keyboard, gamepad and CPU all go through it.
package control

import "github.com/automoto/gladiator/shared/duel"

// Held is the level state of a fighter's actions on one tick.
type Held struct {
	Up, Down, Left, Right bool
	Attack                bool
	Parry                 bool
}

// ToInput builds the match input for the tick whose held actions are cur,
// given the previous tick's prev. Movement and parry are level; attack is
// edge-triggered, so holding it thrusts once.
func ToInput(prev, cur Held) duel.Input {
	return duel.Input{
		MoveUp:        cur.Up,
		MoveDown:      cur.Down,
		MoveLeft:      cur.Left,
		MoveRight:     cur.Right,
		AttackPressed: cur.Attack && !prev.Attack,
		ParryHeld:     cur.Parry,
	}
}

// FromInput is the held state that produces in. The CPU writes its
// decisions this way so they pass the same edge detection as a key.
func FromInput(in duel.Input) Held {
	return Held{
		Up:     in.MoveUp,
		Down:   in.MoveDown,
		Left:   in.MoveLeft,
		Right:  in.MoveRight,
		Attack: in.AttackPressed,
		Parry:  in.ParryHeld,
	}
}
