package botai

import (
	"testing"

	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatch(t *testing.T, left, right gamemath.Vec2) *duel.Match {
	t.Helper()
	arena := duel.DefaultArena()
	arena.Spawns = [2]gamemath.Vec2{duel.SideLeft: left, duel.SideRight: right}
	m, err := duel.NewMatch(arena, duel.DefaultTunables())
	require.NoError(t, err)
	return m
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDifficulty(" HARD ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, got)

	_, err = ParseDifficulty("nightmare")
	assert.ErrorContains(t, err, "nightmare")
}

func TestUnknownDifficultyFallsBackToNormal(t *testing.T) {
	b := NewBrain(duel.SideRight, Difficulty(42), duel.DefaultTunables(), 1)
	assert.Equal(t, DifficultyNormal, b.Difficulty)
	assert.Equal(t, Profiles[DifficultyNormal], b.Profile)
}

func TestApproachesFromAfar(t *testing.T) {
	m := newMatch(t, gamemath.V(220, 250), gamemath.V(680, 300))
	b := NewBrain(duel.SideLeft, DifficultyNormal, m.Tunables(), 1)

	in := b.Think(m.Snapshot())
	assert.Equal(t, StateApproach, b.State)
	assert.True(t, in.MoveRight)
	assert.True(t, in.MoveDown)
	assert.False(t, in.AttackPressed)
}

func TestAttackIsPressedForOneTick(t *testing.T) {
	m := newMatch(t, gamemath.V(400, 250), gamemath.V(522, 250))
	b := NewBrain(duel.SideLeft, DifficultyHard, m.Tunables(), 1)

	in := b.Think(m.Snapshot())
	assert.Equal(t, StateAttack, b.State)
	assert.True(t, in.AttackPressed)
	assert.False(t, in.Moves())

	in = b.Think(m.Snapshot())
	assert.False(t, in.AttackPressed, "attack is an edge, not a held key")
}

func TestParriesIncomingThrust(t *testing.T) {
	m := newMatch(t, gamemath.V(400, 250), gamemath.V(536, 250))
	m.Fighter(duel.SideRight).Phase = duel.PhaseThrusting
	b := NewBrain(duel.SideLeft, DifficultyHard, m.Tunables(), 1)
	b.Profile.ParryChance = 1

	in := b.Think(m.Snapshot())
	assert.Equal(t, StateGuard, b.State)
	assert.True(t, in.ParryHeld)
	assert.True(t, in.MoveDown, "raised shield is lined up with the spear")
	assert.False(t, in.AttackPressed)
}

func TestIgnoresThrustOutOfReach(t *testing.T) {
	m := newMatch(t, gamemath.V(220, 250), gamemath.V(680, 250))
	m.Fighter(duel.SideRight).Phase = duel.PhaseThrusting
	b := NewBrain(duel.SideLeft, DifficultyHard, m.Tunables(), 1)
	b.Profile.ParryChance = 1

	in := b.Think(m.Snapshot())
	assert.False(t, in.ParryHeld)
	assert.Equal(t, StateApproach, b.State)
}

func TestStunnedOrFinishedBrainIsIdle(t *testing.T) {
	m := newMatch(t, gamemath.V(400, 250), gamemath.V(522, 250))
	b := NewBrain(duel.SideLeft, DifficultyHard, m.Tunables(), 1)

	m.Fighter(duel.SideLeft).Stun = &duel.Stun{FramesRemaining: 5}
	assert.Equal(t, duel.Input{}, b.Think(m.Snapshot()))

	m.Restart()
	m.Fighter(duel.SideRight).Alive = false
	assert.Equal(t, duel.Input{}, b.Think(m.Snapshot()))
	assert.Equal(t, StateIdle, b.State)
}

func TestBeatsIdleOpponent(t *testing.T) {
	m := newMatch(t, gamemath.V(220, 250), gamemath.V(680, 250))
	b := NewBrain(duel.SideLeft, DifficultyHard, m.Tunables(), 7)

	var won []duel.Event
	for i := 0; i < 600 && m.Status() == duel.StatusRunning; i++ {
		for _, e := range m.Tick([2]duel.Input{duel.SideLeft: b.Think(m.Snapshot())}) {
			if e.Kind == duel.EventMatchWon {
				won = append(won, e)
			}
		}
	}

	require.Len(t, won, 1)
	assert.Equal(t, duel.SideLeft, won[0].Winner)
}

func TestSameSeedSameFight(t *testing.T) {
	run := func() duel.Snapshot {
		m := newMatch(t, gamemath.V(220, 200), gamemath.V(680, 300))
		left := NewBrain(duel.SideLeft, DifficultyNormal, m.Tunables(), 3)
		right := NewBrain(duel.SideRight, DifficultyEasy, m.Tunables(), 4)
		for i := 0; i < 1500 && m.Status() == duel.StatusRunning; i++ {
			snap := m.Snapshot()
			m.Tick([2]duel.Input{left.Think(snap), right.Think(snap)})
		}
		return m.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestResetClearsPlan(t *testing.T) {
	m := newMatch(t, gamemath.V(400, 250), gamemath.V(522, 250))
	b := NewBrain(duel.SideLeft, DifficultyHard, m.Tunables(), 1)
	require.True(t, b.Think(m.Snapshot()).AttackPressed)

	b.Reset()
	assert.Equal(t, StateIdle, b.State)
	assert.True(t, b.Think(m.Snapshot()).AttackPressed)
}
