package tactics

import "math"

// roleWeight is the base effectiveness of each line before spacing.
func roleWeight(r Role) float64 {
	switch r {
	case RoleGoalkeeper:
		return 0.9
	case RoleDefender:
		return 0.8
	case RoleMidfielder:
		return 1.0
	case RoleAttacker:
		return 0.85
	default:
		return 0.5
	}
}

// idealSpacingRatio is (width/Phi)/width.
const idealSpacingRatio = 1 / Phi

// ScorePlayer rates p in [0.1, 1] as its role weight times a spacing term.
// Every other player contributes max(0, 1 - |d/width - 1/Phi|); the terms
// are averaged. Coincident players, zero width and non-finite input all
// stay inside the clamp.
func ScorePlayer(p *Player, all []*Player, width float64) float64 {
	if width <= 0 || !finite(p.Pos) {
		return minEffectiveness
	}
	sum := 0.0
	n := 0
	for _, o := range all {
		if o == p {
			continue
		}
		if !finite(o.Pos) {
			n++
			continue
		}
		ratio := p.Pos.Dist(o.Pos) / width
		sum += math.Max(0, 1-math.Abs(ratio-idealSpacingRatio))
		n++
	}
	spacing := 1.0
	if n > 0 {
		spacing = sum / float64(n)
	}
	return clampScore(roleWeight(p.Role) * spacing)
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return minEffectiveness
	}
	return math.Min(maxEffectiveness, math.Max(minEffectiveness, v))
}

// ScoreAll refreshes every player's Effectiveness.
func ScoreAll(players []*Player, width float64) {
	scores := make([]float64, len(players))
	for i, p := range players {
		scores[i] = ScorePlayer(p, players, width)
	}
	for i, p := range players {
		p.Effectiveness = scores[i]
	}
}

// Analysis is the formation-wide readout, every field on a 0..100 scale.
type Analysis struct {
	Width       float64 // horizontal spread as a percentage of pitch width
	Compactness float64 // 100 minus the mean pairwise distance as a percentage of width
	Balance     float64 // 100 minus 10 per player of left/right imbalance
	Overall     float64 // mean player effectiveness x 100
}

// ScoreFormation summarises a player set. Effectiveness must already be
// current (see ScoreAll).
func ScoreFormation(players []*Player, width, height float64) Analysis {
	var a Analysis
	if len(players) == 0 || width <= 0 {
		return a
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	left, right := 0, 0
	effSum := 0.0
	for _, p := range players {
		minX = math.Min(minX, p.Pos.X)
		maxX = math.Max(maxX, p.Pos.X)
		switch {
		case p.Pos.X < width/2:
			left++
		case p.Pos.X > width/2:
			right++
		}
		effSum += p.Effectiveness
	}
	a.Width = (maxX - minX) / width * 100

	pairs := 0
	distSum := 0.0
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			distSum += players[i].Pos.Dist(players[j].Pos)
			pairs++
		}
	}
	a.Compactness = 100
	if pairs > 0 {
		a.Compactness = clampPct(100 - distSum/float64(pairs)/width*100)
	}

	imbalance := left - right
	if imbalance < 0 {
		imbalance = -imbalance
	}
	a.Balance = clampPct(100 - 10*float64(imbalance))
	a.Overall = effSum / float64(len(players)) * 100
	return a
}

func clampPct(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
