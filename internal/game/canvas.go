package game

import (
	"image/color"
	"math"

	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// labelFace is the bitmap face used for numbers, names and panel text.
var labelFace font.Face = basicfont.Face7x13

// screenCanvas adapts an ebiten image to tactics.Canvas.
type screenCanvas struct {
	dst *ebiten.Image
}

var _ tactics.Canvas = (*screenCanvas)(nil)

func (c *screenCanvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *screenCanvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (c *screenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.RGBA) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (c *screenCanvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	vector.FillCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *screenCanvas) StrokeCircle(cx, cy, r, width float64, clr color.RGBA) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

// StrokeArc approximates the arc with short line segments.
func (c *screenCanvas) StrokeArc(cx, cy, r, start, sweep, width float64, clr color.RGBA) {
	n := arcSegments(r, sweep)
	if n == 0 {
		return
	}
	step := sweep / float64(n)
	px, py := cx+r*math.Cos(start), cy+r*math.Sin(start)
	for i := 1; i <= n; i++ {
		a := start + step*float64(i)
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		c.StrokeLine(px, py, x, y, width, clr)
		px, py = x, y
	}
}

// arcSegments picks a segment count giving roughly 4px chords.
func arcSegments(r, sweep float64) int {
	length := math.Abs(sweep) * r
	if length < 0.5 || math.IsNaN(length) {
		return 0
	}
	n := int(math.Ceil(length / 4))
	if n < 4 {
		n = 4
	}
	if n > 256 {
		n = 256
	}
	return n
}

func (c *screenCanvas) Text(s string, x, y float64, align tactics.Align, clr color.RGBA) {
	if align == tactics.AlignCenter {
		x -= float64(font.MeasureString(labelFace, s).Ceil()) / 2
	}
	baseline := int(y) + labelFace.Metrics().Ascent.Ceil()
	text.Draw(c.dst, s, labelFace, int(x), baseline, clr)
}

const hudLineH = 14

// drawTextBlock draws lines on a translucent backing box at (x, y).
func drawTextBlock(dst *ebiten.Image, lines []string, x, y int) {
	maxW := 0
	for _, l := range lines {
		if w := font.MeasureString(labelFace, l).Ceil(); w > maxW {
			maxW = w
		}
	}
	const pad = 5
	vector.FillRect(dst, float32(x-pad), float32(y-pad), float32(maxW+2*pad), float32(len(lines)*hudLineH+2*pad),
		color.RGBA{R: 0, G: 0, B: 0, A: 150}, false)
	c := &screenCanvas{dst: dst}
	for i, l := range lines {
		c.Text(l, float64(x), float64(y+i*hudLineH), tactics.AlignLeft, color.RGBA{R: 220, G: 230, B: 220, A: 255})
	}
}
