package tactics

import (
	"fmt"
	"math"
)

// Role groups players by line; it drives marker colour and scoring weight.
type Role int

const (
	RoleGoalkeeper Role = iota
	RoleDefender
	RoleMidfielder
	RoleAttacker
)

func (r Role) String() string {
	switch r {
	case RoleGoalkeeper:
		return "goalkeeper"
	case RoleDefender:
		return "defender"
	case RoleMidfielder:
		return "midfielder"
	case RoleAttacker:
		return "attacker"
	default:
		return "unknown"
	}
}

// Short is the two-letter tag used in panels and reports.
func (r Role) Short() string {
	switch r {
	case RoleGoalkeeper:
		return "GK"
	case RoleDefender:
		return "DF"
	case RoleMidfielder:
		return "MF"
	case RoleAttacker:
		return "FW"
	default:
		return "??"
	}
}

// PlayerState is the physics-observable state of one marker.
type PlayerState int

const (
	StateAtRest    PlayerState = iota // sitting on its rest position
	StateHeld                         // captured by the pointer
	StateSpringing                    // released, travelling back to rest
)

func (ps PlayerState) String() string {
	switch ps {
	case StateAtRest:
		return "at_rest"
	case StateHeld:
		return "held"
	case StateSpringing:
		return "springing"
	default:
		return "unknown"
	}
}

// Player is one formation slot on the canvas.
type Player struct {
	SlotID string
	Name   string
	Number int
	Role   Role

	Pos  Vec2 // current position, clamped to the canvas bounds
	Rest Vec2 // spring target; only set on load and transition completion
	Vel  Vec2 // pixels per step

	Effectiveness float64
	Held          bool
}

// State derives the marker's state machine position from its geometry.
func (p *Player) State() PlayerState {
	switch {
	case p.Held:
		return StateHeld
	case p.Pos == p.Rest && p.Vel == (Vec2{}):
		return StateAtRest
	default:
		return StateSpringing
	}
}

// Label is the short identifier used in the event log, e.g. "ST#9".
func (p *Player) Label() string {
	return fmt.Sprintf("%s#%d", p.SlotID, p.Number)
}

// hits reports whether (x,y) lies within radius of the player.
func (p *Player) hits(x, y, radius float64) (float64, bool) {
	dx := p.Pos.X - x
	dy := p.Pos.Y - y
	d2 := dx*dx + dy*dy
	return d2, d2 <= radius*radius
}

// heldCount returns how many players are flagged as held.
func heldCount(players []*Player) int {
	n := 0
	for _, p := range players {
		if p.Held {
			n++
		}
	}
	return n
}

func finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
