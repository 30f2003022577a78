package tactics

// Overlays toggles the optional layers of the scene. None of them affect
// physics or scoring.
type Overlays struct {
	Connections bool
	Zones       bool
	Analysis    bool
}

// Scene is an immutable snapshot of one frame, published by the designer
// after physics and scoring and consumed by Render.
type Scene struct {
	Frame     int
	Width     float64
	Height    float64
	Radius    float64
	Formation string
	Players   []Player
	Analysis  Analysis
	Selected  string  // slot of the most recently picked player
	Blend     float64 // formation transition progress, 0 when idle
	Overlays  Overlays
}

// Held returns the held player, if any.
func (sc Scene) Held() (Player, bool) {
	for _, p := range sc.Players {
		if p.Held {
			return p, true
		}
	}
	return Player{}, false
}

// Player looks up a player by slot.
func (sc Scene) Player(slot string) (Player, bool) {
	for _, p := range sc.Players {
		if p.SlotID == slot {
			return p, true
		}
	}
	return Player{}, false
}

func snapshotPlayers(players []*Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = *p
	}
	return out
}
