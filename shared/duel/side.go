package duel

// Side identifies one of the two duelists. The left side always spawns in the
// left half of the arena and faces right.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Sides lists both sides in resolution order.
var Sides = [2]Side{SideLeft, SideRight}

func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	}
	return "Unknown"
}

// Input is one player's logical action set for a single tick. Movement and
// parry are level-triggered (held); AttackPressed is expected to be true only
// on the tick the attack key goes down.
type Input struct {
	MoveUp        bool
	MoveDown      bool
	MoveLeft      bool
	MoveRight     bool
	AttackPressed bool
	ParryHeld     bool
}

// Moves reports whether any movement direction is held.
func (in Input) Moves() bool {
	return in.MoveUp || in.MoveDown || in.MoveLeft || in.MoveRight
}
