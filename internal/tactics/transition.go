package tactics

import (
	"math"
	"time"
)

// EaseInOutCubic maps linear progress t in [0,1] onto a cubic ease curve.
func EaseInOutCubic(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	default:
		return 1 - math.Pow(-2*t+2, 3)/2
	}
}

// Transition animates the current player set onto a new formation. Rest
// positions are left alone until the animation finishes, when the whole set
// is swapped for next.
type Transition struct {
	Name     string
	players  []*Player
	from     []Vec2
	to       []Vec2
	next     []*Player
	elapsed  time.Duration
	duration time.Duration
}

func newTransition(players, next []*Player, name string, duration time.Duration) *Transition {
	t := &Transition{
		Name:     name,
		players:  players,
		from:     make([]Vec2, len(players)),
		to:       make([]Vec2, len(players)),
		next:     next,
		duration: duration,
	}
	for i, p := range players {
		p.Held = false
		p.Vel = Vec2{}
		t.from[i] = p.Pos
		t.to[i] = p.Pos
	}
	for ni, pi := range matchSlots(players, next) {
		if pi >= 0 {
			t.to[pi] = next[ni].Rest
		}
	}
	return t
}

// Progress is the linear completion fraction.
func (t *Transition) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return math.Min(1, float64(t.elapsed)/float64(t.duration))
}

// Step advances the animation and reports whether it has finished.
func (t *Transition) Step(dt time.Duration) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	e := EaseInOutCubic(t.Progress())
	for i, p := range t.players {
		p.Pos = t.from[i].Lerp(t.to[i], e)
	}
	return t.Progress() >= 1
}

// Next is the player set that replaces the animated one on completion.
func (t *Transition) Next() []*Player {
	return t.next
}
