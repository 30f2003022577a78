package tactics

// Press picks up the player under (x, y). Every other player is released
// first so at most one marker is ever held; the closest hit wins when
// markers overlap. A press that hits nothing changes nothing and returns nil.
func Press(players []*Player, x, y, radius float64) *Player {
	var hit *Player
	best := 0.0
	for _, p := range players {
		d2, ok := p.hits(x, y, radius)
		if ok && (hit == nil || d2 < best) {
			hit = p
			best = d2
		}
	}
	if hit == nil {
		return nil
	}
	for _, p := range players {
		p.Held = false
	}
	hit.Held = true
	hit.Vel = Vec2{}
	return hit
}

// Move places the held player at the pointer, clamped to the canvas. Its
// velocity is zeroed so the spring does not fight the drag.
func Move(players []*Player, x, y float64, b Bounds) *Player {
	for _, p := range players {
		if p.Held {
			p.Pos = b.Clamp(Vec2{x, y})
			p.Vel = Vec2{}
			return p
		}
	}
	return nil
}

// Release drops the held player, if any. Its rest position is untouched, so
// it springs back on the following steps.
func Release(players []*Player) *Player {
	var released *Player
	for _, p := range players {
		if p.Held {
			p.Held = false
			released = p
		}
	}
	return released
}
