package tactics

// Resolve maps a requested formation name onto the catalog, falling back to
// DefaultFormation for names it does not know.
func Resolve(name string) (Formation, bool) {
	if f, ok := Lookup(name); ok {
		return f, true
	}
	f, _ := Lookup(DefaultFormation)
	return f, false
}

// Load builds a fresh player set for the named formation scaled to a
// width x height canvas. Unknown names silently use DefaultFormation; the
// name actually loaded is returned alongside the players.
func Load(name string, width, height, radius float64) ([]*Player, string) {
	f, _ := Resolve(name)
	b := Bounds{Width: width, Height: height, Radius: radius}
	players := make([]*Player, len(f.Slots))
	for i, s := range f.Slots {
		pos := b.Clamp(Vec2{s.X * width, s.Y * height})
		players[i] = &Player{
			SlotID:        s.ID,
			Name:          s.Name,
			Number:        s.Number,
			Role:          s.Role,
			Pos:           pos,
			Rest:          pos,
			Effectiveness: roleWeight(s.Role),
		}
	}
	return players, f.Name
}

// matchSlots pairs each slot of the incoming formation with a player of the
// outgoing set. Players keep their slot when the ID exists in both; the rest
// are paired in catalog order. The result is indexed like next.
func matchSlots(prev []*Player, next []*Player) []int {
	match := make([]int, len(next))
	used := make([]bool, len(prev))
	for i := range match {
		match[i] = -1
	}
	for i, n := range next {
		for j, p := range prev {
			if !used[j] && p.SlotID == n.SlotID {
				match[i] = j
				used[j] = true
				break
			}
		}
	}
	j := 0
	for i := range next {
		if match[i] >= 0 {
			continue
		}
		for j < len(prev) && used[j] {
			j++
		}
		if j >= len(prev) {
			break
		}
		match[i] = j
		used[j] = true
	}
	return match
}
