package anim

import (
	"testing"

	"github.com/automoto/gladiator/shared/duel"
	"github.com/stretchr/testify/assert"
)

func TestPoseClockCountsTicksInPose(t *testing.T) {
	var c PoseClock
	c.Reset(duel.PoseIdle)

	assert.False(t, c.Observe(duel.PoseIdle))
	assert.False(t, c.Observe(duel.PoseIdle))
	assert.Equal(t, 2, c.Ticks)

	assert.True(t, c.Observe(duel.PoseStunned))
	assert.Equal(t, duel.PoseStunned, c.Current)
	assert.Equal(t, duel.PoseIdle, c.Previous)
	assert.Equal(t, 0, c.Ticks)

	c.Observe(duel.PoseStunned)
	assert.Equal(t, 1, c.Ticks)
}

func TestPoseClockResetForgetsHistory(t *testing.T) {
	c := PoseClock{Current: duel.PoseDead, Previous: duel.PoseAttacking, Ticks: 90}
	c.Reset(duel.PoseIdle)
	assert.Equal(t, PoseClock{Current: duel.PoseIdle, Previous: duel.PoseIdle}, c)
}

func TestFallProgress(t *testing.T) {
	assert.Equal(t, 0.0, FallProgress(0, 20))
	assert.Equal(t, 0.0, FallProgress(-3, 20))
	assert.Equal(t, 1.0, FallProgress(20, 20))
	assert.Equal(t, 1.0, FallProgress(500, 20))
	assert.Equal(t, 1.0, FallProgress(0, 0), "no animation means already down")
	assert.InDelta(t, 0.75, FallProgress(10, 20), 1e-9)

	prev := 0.0
	for tick := 1; tick <= 20; tick++ {
		p := FallProgress(tick, 20)
		assert.Greater(t, p, prev, "tick %d", tick)
		prev = p
	}
}

func TestStunBlinkAlternates(t *testing.T) {
	var got []bool
	for tick := 0; tick < 12; tick++ {
		got = append(got, StunBlink(tick, 4))
	}
	assert.Equal(t, []bool{
		true, true, true, true,
		false, false, false, false,
		true, true, true, true,
	}, got)
	assert.True(t, StunBlink(7, 0))
}
