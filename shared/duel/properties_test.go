package duel

import (
	"testing"

	"github.com/automoto/gladiator/shared/gamemath"
	"pgregory.net/rapid"
)

func drawInput(t *rapid.T, label string) Input {
	return Input{
		MoveUp:        rapid.Bool().Draw(t, label+".up"),
		MoveDown:      rapid.Bool().Draw(t, label+".down"),
		MoveLeft:      rapid.Bool().Draw(t, label+".left"),
		MoveRight:     rapid.Bool().Draw(t, label+".right"),
		AttackPressed: rapid.IntRange(0, 3).Draw(t, label+".attack") == 0,
		ParryHeld:     rapid.Bool().Draw(t, label+".parry"),
	}
}

func drawMatch(t *rapid.T) *Match {
	tun := DefaultTunables()
	arena := DefaultArena()
	inset := tun.BodyRadius + tun.EdgeMargin
	mid := arena.Width / 2
	arena.Spawns = [2]gamemath.Vec2{
		SideLeft: {
			X: rapid.Float64Range(inset, mid-1).Draw(t, "leftX"),
			Y: rapid.Float64Range(inset, arena.Height-inset).Draw(t, "leftY"),
		},
		SideRight: {
			X: rapid.Float64Range(mid, arena.Width-inset).Draw(t, "rightX"),
			Y: rapid.Float64Range(inset, arena.Height-inset).Draw(t, "rightY"),
		},
	}
	m, err := NewMatch(arena, tun)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

func TestDuelInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMatch(t)
		tun, arena := m.Tunables(), m.Arena()
		inset := tun.BodyRadius + tun.EdgeMargin
		ticks := rapid.IntRange(1, 400).Draw(t, "ticks")

		wonEvents := 0
		var everDead [2]bool
		for i := 0; i < ticks; i++ {
			inputs := [2]Input{drawInput(t, "left"), drawInput(t, "right")}

			var stunBefore [2]*Stun
			for _, s := range Sides {
				stunBefore[s] = m.Fighter(s).Stun
			}

			events := m.Tick(inputs)

			parried := map[Side]bool{}
			for _, e := range events {
				switch e.Kind {
				case EventMatchWon:
					wonEvents++
				case EventParry:
					parried[e.Attacker] = true
					atk := m.Fighter(e.Attacker)
					if atk.Stun == nil || atk.Stun.FramesRemaining != tun.ParryStunFrames {
						t.Fatalf("tick %d: parried attacker %v has stun %+v", i, e.Attacker, atk.Stun)
					}
					if !atk.HitAppliedThisSwing || atk.Phase != PhaseIdle || atk.Reach != 0 {
						t.Fatalf("tick %d: parried attacker %v still armed", i, e.Attacker)
					}
				}
			}

			dead := 0
			for _, s := range Sides {
				c := m.Fighter(s)
				if c.Stun != nil && c.Stun != stunBefore[s] && !parried[s] {
					t.Fatalf("tick %d: %v stunned without having its thrust parried", i, s)
				}
				if c.Position.X < inset || c.Position.X > arena.Width-inset ||
					c.Position.Y < inset || c.Position.Y > arena.Height-inset {
					t.Fatalf("tick %d: %v out of bounds at %v", i, s, c.Position)
				}
				if c.Reach < 0 || c.Reach > tun.MaxThrust+1e-9 {
					t.Fatalf("tick %d: %v reach %v outside [0, %v]", i, s, c.Reach, tun.MaxThrust)
				}
				if c.Phase == PhaseIdle && c.Reach != 0 {
					t.Fatalf("tick %d: %v idle with reach %v", i, s, c.Reach)
				}
				if everDead[s] && c.Alive {
					t.Fatalf("tick %d: %v came back to life", i, s)
				}
				if !c.Alive {
					everDead[s] = true
					dead++
				}
			}

			if dead > 1 {
				t.Fatalf("tick %d: both combatants dead", i)
			}
			if (m.Status() == StatusWon) != (dead == 1) {
				t.Fatalf("tick %d: status %v with %d dead", i, m.Status(), dead)
			}
			if winner, ok := m.Winner(); ok && !m.Fighter(winner).Alive {
				t.Fatalf("tick %d: winner %v is dead", i, winner)
			}
		}

		if wonEvents > 1 {
			t.Fatalf("match won %d times", wonEvents)
		}
		if (wonEvents == 1) != (m.Status() == StatusWon) {
			t.Fatalf("won events %d with status %v", wonEvents, m.Status())
		}
	})
}

func TestEverySwingRetracts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tun := DefaultTunables()
		tun.AttackDurationFrames = rapid.IntRange(1, 40).Draw(t, "frames")
		tun.MaxThrust = rapid.Float64Range(0, 100).Draw(t, "maxThrust")
		c := NewCombatant(SideLeft, DefaultArena(), tun)

		c.Advance(Input{AttackPressed: true})
		for i := 1; i < tun.AttackDurationFrames; i++ {
			if c.Phase != PhaseThrusting {
				t.Fatalf("swing ended early at frame %d", i)
			}
			c.Advance(Input{AttackPressed: rapid.Bool().Draw(t, "repress")})
		}
		if c.Phase != PhaseIdle || c.Reach != 0 || c.ThrustFrame != 0 {
			t.Fatalf("swing did not retract: phase %v reach %v frame %d", c.Phase, c.Reach, c.ThrustFrame)
		}
	})
}
