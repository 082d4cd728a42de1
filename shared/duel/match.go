package duel

import "fmt"

// Status is the match state.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
)

func (s Status) String() string {
	if s == StatusWon {
		return "Won"
	}
	return "Running"
}

// EventKind identifies an Event.
type EventKind int

const (
	EventParry EventKind = iota + 1
	EventHit
	EventMatchWon
)

func (k EventKind) String() string {
	switch k {
	case EventParry:
		return "Parry"
	case EventHit:
		return "Hit"
	case EventMatchWon:
		return "MatchWon"
	}
	return "Unknown"
}

// Event is something the outer shell may react to. Attacker and Defender are
// set for parries and hits; Winner is set for EventMatchWon.
type Event struct {
	Kind     EventKind
	Tick     uint64
	Attacker Side
	Defender Side
	Winner   Side
}

// Match owns both combatants and drives the duel one tick at a time.
type Match struct {
	tun      Tunables
	arena    Arena
	fighters [2]*Combatant
	resolver *Resolver

	status Status
	winner Side
	tick   uint64
}

// NewMatch validates the configuration and places two fresh combatants.
func NewMatch(arena Arena, t Tunables) (*Match, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tunables: %w", err)
	}
	if err := arena.Validate(t); err != nil {
		return nil, fmt.Errorf("invalid arena: %w", err)
	}

	m := &Match{
		tun:      t,
		arena:    arena,
		resolver: NewResolver(arena, t),
	}
	m.Restart()
	return m, nil
}

// Restart discards both combatants and starts a new match.
func (m *Match) Restart() {
	for _, s := range Sides {
		m.fighters[s] = NewCombatant(s, m.arena, m.tun)
	}
	m.status = StatusRunning
	m.winner = SideLeft
	m.tick = 0
}

// Tick advances the match by one frame. Once the match is won it does
// nothing until Restart.
func (m *Match) Tick(inputs [2]Input) []Event {
	if m.status == StatusWon {
		return nil
	}
	m.tick++

	for _, s := range Sides {
		c := m.fighters[s]
		c.StartAttack(inputs[s])
		c.Advance(inputs[s])
	}

	var events []Event
	for _, res := range m.resolver.Resolve(m.fighters) {
		switch res.Kind {
		case ResolveParry:
			events = append(events, Event{Kind: EventParry, Tick: m.tick, Attacker: res.Attacker, Defender: res.Defender})
		case ResolveHit:
			events = append(events, Event{Kind: EventHit, Tick: m.tick, Attacker: res.Attacker, Defender: res.Defender})
			if m.status == StatusRunning {
				m.status = StatusWon
				m.winner = res.Attacker
				events = append(events, Event{Kind: EventMatchWon, Tick: m.tick, Winner: res.Attacker})
			}
		}
	}
	return events
}

func (m *Match) Status() Status { return m.status }

// Winner reports the winning side; ok is false while the match is running.
func (m *Match) Winner() (side Side, ok bool) {
	return m.winner, m.status == StatusWon
}

func (m *Match) Ticks() uint64 { return m.tick }

func (m *Match) Tunables() Tunables { return m.tun }

func (m *Match) Arena() Arena { return m.arena }

// Fighter exposes the live combatant of one side. Callers outside the
// package should treat it as read-only.
func (m *Match) Fighter(s Side) *Combatant {
	return m.fighters[s]
}

// Snapshot is valid in every status, so a finished match still renders.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   m.tick,
		Status: m.status,
		Winner: m.winner,
	}
	for _, s := range Sides {
		snap.Fighters[s] = m.fighters[s].Snapshot()
	}
	return snap
}

// HurtRegion is the broadphase square of side s as of the last tick.
func (m *Match) HurtRegion(s Side) (x, y, w, h float64) {
	return m.resolver.HurtRegion(s)
}
