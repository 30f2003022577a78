package tactics

import (
	"fmt"
	"strings"
)

// Report formats a scene as a plain-text analysis: the formation readout
// followed by one row per player.
func Report(id string, sc Scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Touchline formation report ---\n")
	fmt.Fprintf(&b, "designer=%s formation=%s frame=%d canvas=%.0fx%.0f\n",
		id, sc.Formation, sc.Frame, sc.Width, sc.Height)
	fmt.Fprintf(&b, "analysis: width=%.0f%% compactness=%.0f%% balance=%.0f%% overall=%.0f%%\n\n",
		sc.Analysis.Width, sc.Analysis.Compactness, sc.Analysis.Balance, sc.Analysis.Overall)

	fmt.Fprintf(&b, "%-4s %-3s %-10s %-2s %5s  %-11s %-11s %s\n",
		"slot", "no", "name", "ln", "eff", "pos", "rest", "state")
	for _, p := range sc.Players {
		fmt.Fprintf(&b, "%-4s %-3d %-10s %-2s %5.2f  %-11s %-11s %s\n",
			p.SlotID, p.Number, p.Name, p.Role.Short(), p.Effectiveness,
			fmtVec(p.Pos), fmtVec(p.Rest), p.State())
	}
	return b.String()
}

func fmtVec(v Vec2) string {
	return fmt.Sprintf("(%.0f,%.0f)", v.X, v.Y)
}
