package control

import (
	"testing"

	"github.com/automoto/gladiator/shared/duel"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestHeldAttackThrustsOnce(t *testing.T) {
	var prev Held
	var fired []bool
	for _, attack := range []bool{false, true, true, true, false, true} {
		cur := Held{Attack: attack}
		fired = append(fired, ToInput(prev, cur).AttackPressed)
		prev = cur
	}
	assert.Equal(t, []bool{false, true, false, false, false, true}, fired)
}

func TestMovementAndParryAreLevel(t *testing.T) {
	held := Held{Up: true, Right: true, Parry: true}
	in := ToInput(held, held)
	assert.True(t, in.MoveUp)
	assert.True(t, in.MoveRight)
	assert.True(t, in.ParryHeld)
	assert.False(t, in.MoveDown)
	assert.False(t, in.MoveLeft)
}

func TestCPUHoldingAttackFiresOnFirstTick(t *testing.T) {
	// A brain that keeps asking to attack every tick
	decisions := []duel.Input{
		{AttackPressed: true, MoveRight: true},
		{AttackPressed: true},
		{AttackPressed: true, ParryHeld: true},
	}

	var prev Held
	var fired []bool
	for _, d := range decisions {
		cur := FromInput(d)
		in := ToInput(prev, cur)
		fired = append(fired, in.AttackPressed)
		assert.Equal(t, d.ParryHeld, in.ParryHeld)
		prev = cur
	}
	assert.Equal(t, []bool{true, false, false}, fired)
}

func TestRoundTripAfterRelease(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := duel.Input{
			MoveUp:        rapid.Bool().Draw(t, "up"),
			MoveDown:      rapid.Bool().Draw(t, "down"),
			MoveLeft:      rapid.Bool().Draw(t, "left"),
			MoveRight:     rapid.Bool().Draw(t, "right"),
			AttackPressed: rapid.Bool().Draw(t, "attack"),
			ParryHeld:     rapid.Bool().Draw(t, "parry"),
		}
		// From a released state the conversion is lossless
		if got := ToInput(Held{}, FromInput(in)); got != in {
			t.Fatalf("round trip changed %+v into %+v", in, got)
		}
	})
}
