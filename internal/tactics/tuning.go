package tactics

import "time"

// Pitch and marker geometry, in canvas pixels unless noted.
const (
	DefaultWidth     = 800
	DefaultHeight    = 1040
	DefaultRadius    = 18.0
	ConnectionRadius = 220.0 // players closer than this are linked by a connection line
	settleDistance   = 1.0   // spring stops pulling inside this distance
)

// Spring-damper tuning.
const (
	SpringStrength = 0.006 // velocity gain per pixel of displacement per millisecond
	Damping        = 0.8   // multiplicative velocity damping per step
	SettleSpeed    = 0.1   // below this speed a player inside settleDistance snaps to rest
	MaxStep        = 100 * time.Millisecond
)

// TransitionDuration is how long a formation change takes to animate.
const TransitionDuration = 600 * time.Millisecond

// Golden ratio; width/Phi is the ideal spacing between two players.
const Phi = 1.618033988749895

// Effectiveness clamp.
const (
	minEffectiveness = 0.1
	maxEffectiveness = 1.0
)

// eventLogCapacity bounds the per-designer event log.
const eventLogCapacity = 512
