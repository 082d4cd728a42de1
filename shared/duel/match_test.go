package duel

import (
	"math"
	"testing"

	"github.com/automoto/gladiator/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatch(t *testing.T, left, right gamemath.Vec2) *Match {
	t.Helper()
	arena := DefaultArena()
	arena.Spawns = [2]gamemath.Vec2{SideLeft: left, SideRight: right}
	m, err := NewMatch(arena, DefaultTunables())
	require.NoError(t, err)
	return m
}

// midThrust leaves c one tick short of the thrust midpoint.
func midThrust(c *Combatant) {
	c.Phase = PhaseThrusting
	c.ThrustFrame = c.tun.AttackDurationFrames/2 - 1
}

func TestHitAtThrustMidpointWinsMatch(t *testing.T) {
	// Rest tip is 88px ahead; 48 more at the midpoint lands on x=536.
	m := newTestMatch(t, gamemath.V(400, 250), gamemath.V(536, 250))
	midThrust(m.Fighter(SideLeft))

	events := m.Tick([2]Input{})

	atk, def := m.Fighter(SideLeft), m.Fighter(SideRight)
	assert.Equal(t, StatusWon, m.Status())
	winner, ok := m.Winner()
	assert.True(t, ok)
	assert.Equal(t, SideLeft, winner)
	assert.False(t, def.Alive)
	assert.True(t, atk.Alive)
	assert.Equal(t, PhaseIdle, atk.Phase)
	assert.True(t, atk.HitAppliedThisSwing)

	require.Len(t, events, 2)
	assert.Equal(t, Event{Kind: EventHit, Tick: 1, Attacker: SideLeft, Defender: SideRight}, events[0])
	assert.Equal(t, Event{Kind: EventMatchWon, Tick: 1, Winner: SideLeft}, events[1])
}

func TestParryAtThrustMidpointStunsAttacker(t *testing.T) {
	// Defender's shield, turned a quarter inward, is centred 38px above it,
	// exactly where the spear tip arrives.
	m := newTestMatch(t, gamemath.V(400, 200), gamemath.V(536, 238))
	midThrust(m.Fighter(SideLeft))
	m.Fighter(SideRight).ShieldAngle = math.Pi / 2

	events := m.Tick([2]Input{SideRight: {ParryHeld: true}})

	atk, def := m.Fighter(SideLeft), m.Fighter(SideRight)
	assert.Equal(t, StatusRunning, m.Status())
	_, ok := m.Winner()
	assert.False(t, ok)
	assert.True(t, atk.Alive)
	assert.True(t, def.Alive)
	require.NotNil(t, atk.Stun)
	assert.Nil(t, def.Stun)
	assert.Equal(t, gamemath.V(-7, 0), atk.Stun.Knockback)
	assert.Equal(t, 45, atk.Stun.FramesRemaining)
	assert.Equal(t, PhaseIdle, atk.Phase)
	assert.Equal(t, []Event{{Kind: EventParry, Tick: 1, Attacker: SideLeft, Defender: SideRight}}, events)

	// Knocked back on the next tick, and attack input is ignored.
	m.Tick([2]Input{SideLeft: {AttackPressed: true, MoveRight: true}})
	assert.Equal(t, 393.0, atk.Position.X)
	assert.Equal(t, PhaseIdle, atk.Phase)
	assert.Equal(t, 44, atk.Stun.FramesRemaining)
}

func TestNaturalSwingLandsBeforeMidpoint(t *testing.T) {
	m := newTestMatch(t, gamemath.V(400, 250), gamemath.V(536, 250))

	var won []Event
	inputs := [2]Input{SideLeft: {AttackPressed: true}}
	for i := 0; i < 12 && m.Status() == StatusRunning; i++ {
		for _, e := range m.Tick(inputs) {
			if e.Kind == EventMatchWon {
				won = append(won, e)
			}
		}
		inputs = [2]Input{}
	}

	require.Len(t, won, 1)
	assert.Equal(t, SideLeft, won[0].Winner)
	assert.Less(t, won[0].Tick, uint64(6))
}

func TestWonMatchStopsTicking(t *testing.T) {
	m := newTestMatch(t, gamemath.V(400, 250), gamemath.V(536, 250))
	midThrust(m.Fighter(SideLeft))
	m.Tick([2]Input{})
	require.Equal(t, StatusWon, m.Status())

	before := m.Snapshot()
	for i := 0; i < 10; i++ {
		assert.Nil(t, m.Tick([2]Input{SideLeft: {MoveUp: true, AttackPressed: true}, SideRight: {MoveDown: true}}))
	}
	after := m.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, PoseDead, after.Fighter(SideRight).Pose)
	assert.False(t, after.Fighter(SideRight).Alive)
}

func TestRestartBuildsFreshCombatants(t *testing.T) {
	m := newTestMatch(t, gamemath.V(400, 250), gamemath.V(536, 250))
	oldLeft := m.Fighter(SideLeft)
	midThrust(oldLeft)
	m.Tick([2]Input{})
	require.Equal(t, StatusWon, m.Status())

	m.Restart()

	assert.Equal(t, StatusRunning, m.Status())
	assert.Equal(t, uint64(0), m.Ticks())
	assert.NotSame(t, oldLeft, m.Fighter(SideLeft))
	for _, s := range Sides {
		c := m.Fighter(s)
		assert.True(t, c.Alive)
		assert.Equal(t, PhaseIdle, c.Phase)
		assert.False(t, c.HitAppliedThisSwing)
		assert.Nil(t, c.Stun)
		assert.Equal(t, m.Arena().Spawns[s], c.Position)
	}
}

func TestSnapshotReflectsCombatants(t *testing.T) {
	m := newTestMatch(t, gamemath.V(220, 250), gamemath.V(680, 250))
	m.Tick([2]Input{SideLeft: {AttackPressed: true}, SideRight: {ParryHeld: true}})

	snap := m.Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, StatusRunning, snap.Status)

	left := snap.Fighter(SideLeft)
	assert.Equal(t, PoseAttacking, left.Pose)
	assert.True(t, left.Thrusting)
	assert.Greater(t, left.SpearReach, 0.0)
	assert.Equal(t, m.Fighter(SideLeft).SpearTip(), left.SpearTip)
	assert.Equal(t, 28.0, left.BodyRadius)

	right := snap.Fighter(SideRight)
	assert.Equal(t, PoseParrying, right.Pose)
	assert.True(t, right.ParryHeld)
	assert.Greater(t, right.ShieldAngle, 0.0)
	assert.Equal(t, -1.0, right.Facing)
}

func TestNewMatchRejectsBadConfig(t *testing.T) {
	tun := DefaultTunables()
	tun.BodyRadius = 0
	_, err := NewMatch(DefaultArena(), tun)
	assert.ErrorContains(t, err, "body_radius")

	arena := DefaultArena()
	arena.Spawns[SideLeft] = gamemath.V(800, 250)
	_, err = NewMatch(arena, DefaultTunables())
	assert.ErrorContains(t, err, "left spawn")

	arena = DefaultArena()
	arena.Width = 50
	_, err = NewMatch(arena, DefaultTunables())
	assert.ErrorContains(t, err, "too small")
}
