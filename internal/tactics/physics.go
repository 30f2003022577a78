package tactics

import "time"

// Advance moves every non-held player one step toward its rest position with
// a damped spring. Steps longer than MaxStep (a stalled or backgrounded
// frame loop) and non-positive steps are dropped. It returns the players that
// came to rest during this step.
func Advance(players []*Player, dt time.Duration, b Bounds) []*Player {
	if dt <= 0 || dt > MaxStep {
		return nil
	}
	dtMs := float64(dt) / float64(time.Millisecond)

	var settled []*Player
	for _, p := range players {
		if p.Held {
			continue
		}
		if p.Pos == p.Rest && p.Vel == (Vec2{}) {
			continue
		}

		d := p.Rest.Sub(p.Pos)
		dist := d.Len()
		if dist > settleDistance {
			// |a| = dist * SpringStrength along d, per millisecond.
			p.Vel = p.Vel.Add(d.Scale(SpringStrength * dtMs))
		}
		p.Vel = p.Vel.Scale(Damping)
		p.Pos = b.Clamp(p.Pos.Add(p.Vel))

		// Dead-zone snap: close and slow enough counts as home.
		if p.Rest.Dist(p.Pos) <= settleDistance && p.Vel.Len() < SettleSpeed {
			p.Pos = p.Rest
			p.Vel = Vec2{}
			settled = append(settled, p)
		}
	}
	return settled
}
