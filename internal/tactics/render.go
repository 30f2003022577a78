package tactics

import (
	"fmt"
	"image/color"
	"math"
)

var (
	pitchDark  = color.RGBA{R: 34, G: 102, B: 44, A: 255}
	pitchLight = color.RGBA{R: 40, G: 114, B: 50, A: 255}
	lineColor  = color.RGBA{R: 235, G: 240, B: 235, A: 210}
	shadow     = color.RGBA{R: 0, G: 0, B: 0, A: 70}
	ringTrack  = color.RGBA{R: 10, G: 20, B: 10, A: 110}
	heldRing   = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	selectRing = color.RGBA{R: 255, G: 255, B: 255, A: 180}
	panelBg    = color.RGBA{R: 14, G: 16, B: 14, A: 220}
	panelEdge  = color.RGBA{R: 55, G: 80, B: 55, A: 255}
	textLight  = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	textDark   = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// roleColors colours a marker by line.
var roleColors = [...]color.RGBA{
	RoleGoalkeeper: {R: 240, G: 200, B: 40, A: 255},  // yellow
	RoleDefender:   {R: 40, G: 90, B: 210, A: 255},   // blue
	RoleMidfielder: {R: 230, G: 230, B: 235, A: 255}, // white
	RoleAttacker:   {R: 210, G: 40, B: 40, A: 255},   // red
}

// zoneTints shade the attacking, middle and defensive thirds, top to bottom.
var zoneTints = [3]color.RGBA{
	{R: 220, G: 60, B: 60, A: 34},
	{R: 230, G: 210, B: 70, A: 22},
	{R: 60, G: 110, B: 230, A: 34},
}

var zoneNames = [3]string{"ATTACKING THIRD", "MIDDLE THIRD", "DEFENSIVE THIRD"}

const (
	pitchMargin  = 12.0
	pitchStripes = 10
	ringGap      = 4.0
	ringWidth    = 3.0
)

// RoleColor returns the marker colour for a role.
func RoleColor(r Role) color.RGBA {
	if int(r) < 0 || int(r) >= len(roleColors) {
		return textLight
	}
	return roleColors[r]
}

// scoreColor grades an effectiveness value green, amber or red.
func scoreColor(v float64) color.RGBA {
	switch {
	case v >= 0.7:
		return color.RGBA{R: 70, G: 220, B: 90, A: 255}
	case v >= 0.4:
		return color.RGBA{R: 240, G: 170, B: 40, A: 255}
	default:
		return color.RGBA{R: 230, G: 60, B: 50, A: 255}
	}
}

// Render draws one frame of sc onto c. It reads nothing but its arguments,
// so the same scene always produces the same calls.
func Render(sc Scene, c Canvas) {
	drawPitch(sc, c)
	if sc.Overlays.Zones {
		drawZones(sc, c)
	}
	if sc.Overlays.Connections {
		drawConnections(sc, c)
	}
	for i := range sc.Players {
		drawPlayer(sc, &sc.Players[i], c)
	}
	if sc.Overlays.Analysis {
		drawAnalysis(sc, c)
	}
}

func drawPitch(sc Scene, c Canvas) {
	w, h := sc.Width, sc.Height
	band := h / pitchStripes
	for i := 0; i < pitchStripes; i++ {
		col := pitchDark
		if i%2 == 1 {
			col = pitchLight
		}
		c.FillRect(0, float64(i)*band, w, band, col)
	}

	m := pitchMargin
	iw, ih := w-2*m, h-2*m
	c.StrokeRect(m, m, iw, ih, 2, lineColor)
	c.StrokeLine(m, h/2, w-m, h/2, 2, lineColor)
	c.StrokeCircle(w/2, h/2, iw*0.13, 2, lineColor)
	c.FillCircle(w/2, h/2, 3, lineColor)

	boxW, boxD := iw*0.6, ih*0.16
	goalW, goalD := iw*0.28, ih*0.055
	spot := ih * 0.11
	// Opponent end at the top, ours at the bottom.
	c.StrokeRect((w-boxW)/2, m, boxW, boxD, 2, lineColor)
	c.StrokeRect((w-goalW)/2, m, goalW, goalD, 2, lineColor)
	c.FillCircle(w/2, m+spot, 2.5, lineColor)
	c.StrokeRect((w-boxW)/2, h-m-boxD, boxW, boxD, 2, lineColor)
	c.StrokeRect((w-goalW)/2, h-m-goalD, goalW, goalD, 2, lineColor)
	c.FillCircle(w/2, h-m-spot, 2.5, lineColor)
}

func drawZones(sc Scene, c Canvas) {
	third := sc.Height / 3
	for i, tint := range zoneTints {
		y := float64(i) * third
		c.FillRect(0, y, sc.Width, third, tint)
		c.Text(zoneNames[i], pitchMargin+6, y+pitchMargin+4, AlignLeft, color.RGBA{R: 255, G: 255, B: 255, A: 120})
	}
	// Half-spaces and wide channels.
	channel := color.RGBA{R: 255, G: 255, B: 255, A: 40}
	for _, f := range []float64{0.2, 0.4, 0.6, 0.8} {
		x := sc.Width * f
		c.StrokeLine(x, pitchMargin, x, sc.Height-pitchMargin, 1, channel)
	}
}

func drawConnections(sc Scene, c Canvas) {
	for i := 0; i < len(sc.Players); i++ {
		for j := i + 1; j < len(sc.Players); j++ {
			a, b := sc.Players[i].Pos, sc.Players[j].Pos
			d := a.Dist(b)
			if d >= ConnectionRadius {
				continue
			}
			strength := 1 - d/ConnectionRadius
			col := color.RGBA{R: 255, G: 255, B: 200, A: uint8(math.Round(strength * 170))}
			c.StrokeLine(a.X, a.Y, b.X, b.Y, 1+2*strength, col)
		}
	}
}

func drawPlayer(sc Scene, p *Player, c Canvas) {
	r := sc.Radius
	x, y := p.Pos.X, p.Pos.Y

	if p.Held {
		c.StrokeCircle(x, y, r+ringGap+ringWidth+3, 3, heldRing)
	} else if p.SlotID == sc.Selected {
		c.StrokeCircle(x, y, r+ringGap+ringWidth+2, 1, selectRing)
	}

	c.FillCircle(x+2, y+2, r, shadow)
	c.FillCircle(x, y, r, RoleColor(p.Role))

	// Effectiveness ring: a full circle track with an arc ∝ score, from twelve o'clock.
	rr := r + ringGap
	c.StrokeCircle(x, y, rr, ringWidth, ringTrack)
	c.StrokeArc(x, y, rr, -math.Pi/2, 2*math.Pi*p.Effectiveness, ringWidth, scoreColor(p.Effectiveness))

	numCol := textLight
	if p.Role == RoleGoalkeeper || p.Role == RoleMidfielder {
		numCol = textDark
	}
	c.Text(fmt.Sprintf("%d", p.Number), x, y-6, AlignCenter, numCol)
	c.Text(p.Name, x, y+rr+ringWidth+2, AlignCenter, textLight)
}

func drawAnalysis(sc Scene, c Canvas) {
	const (
		w     = 190.0
		lineH = 14.0
		pad   = 6.0
	)
	lines := []string{
		fmt.Sprintf("ANALYSIS  %s", sc.Formation),
		fmt.Sprintf("Width        %3.0f%%", sc.Analysis.Width),
		fmt.Sprintf("Compactness  %3.0f%%", sc.Analysis.Compactness),
		fmt.Sprintf("Balance      %3.0f%%", sc.Analysis.Balance),
		fmt.Sprintf("Overall      %3.0f%%", sc.Analysis.Overall),
	}
	if sc.Blend > 0 {
		lines = append(lines, fmt.Sprintf("transition   %3.0f%%", sc.Blend*100))
	}
	x := sc.Width - pitchMargin - 8 - w
	y := pitchMargin + 8
	h := float64(len(lines))*lineH + 2*pad
	c.FillRect(x, y, w, h, panelBg)
	c.StrokeRect(x, y, w, h, 1, panelEdge)
	for i, l := range lines {
		c.Text(l, x+pad, y+pad+float64(i)*lineH, AlignLeft, textLight)
	}
}
