package duel

import (
	"math"
	"testing"

	"github.com/automoto/gladiator/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	tun := DefaultTunables()
	require.NoError(t, tun.Validate())
	require.NoError(t, DefaultArena().Validate(tun))

	assert.Equal(t, 136.0, tun.SpearReachMax())
	assert.Equal(t, 74.0, tun.GuardReach())
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	tun := DefaultTunables()
	tun.BodyRadius = -1
	tun.AttackDurationFrames = 0
	tun.ShieldSmoothing = 1.5
	tun.ShieldRy = math.NaN()

	err := tun.Validate()
	require.Error(t, err)
	for _, name := range []string{"body_radius", "attack_duration_frames", "shield_smoothing", "shield_ry"} {
		assert.ErrorContains(t, err, name)
	}
}

func TestArenaClamp(t *testing.T) {
	a := DefaultArena()
	assert.Equal(t, gamemath.V(38, 462), a.clamp(gamemath.V(-100, 900), 28, 10))
	assert.Equal(t, gamemath.V(300, 200), a.clamp(gamemath.V(300, 200), 28, 10))
}

func TestFacingAt(t *testing.T) {
	a := DefaultArena()
	assert.Equal(t, 1.0, a.FacingAt(gamemath.V(449.9, 0)))
	assert.Equal(t, -1.0, a.FacingAt(gamemath.V(450, 0)))
}
