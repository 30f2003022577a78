package tui

import (
	"image/color"
	"math"

	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/gdamore/tcell/v2"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// cellTransform maps canvas pixels onto terminal cells with a uniform scale,
// centred in the available area.
type cellTransform struct {
	cw, ch         float64 // canvas pixels per cell
	offCol, offRow int
}

// fitTransform picks the largest cell size that fits a w x h canvas into
// cols x rows cells.
func fitTransform(w, h float64, cols, rows int) cellTransform {
	if cols <= 0 || rows <= 0 || w <= 0 || h <= 0 {
		return cellTransform{cw: 1, ch: cellAspect}
	}
	cw := math.Max(w/float64(cols), h/(float64(rows)*cellAspect))
	xf := cellTransform{cw: cw, ch: cw * cellAspect}
	xf.offCol = (cols - int(math.Ceil(w/xf.cw))) / 2
	xf.offRow = (rows - int(math.Ceil(h/xf.ch))) / 2
	if xf.offCol < 0 {
		xf.offCol = 0
	}
	if xf.offRow < 0 {
		xf.offRow = 0
	}
	return xf
}

func (t cellTransform) toCell(x, y float64) (int, int) {
	return t.offCol + int(math.Floor(x/t.cw)), t.offRow + int(math.Floor(y/t.ch))
}

// toCanvas returns the canvas point at the centre of a cell.
func (t cellTransform) toCanvas(col, row int) (float64, float64) {
	return (float64(col-t.offCol) + 0.5) * t.cw, (float64(row-t.offRow) + 0.5) * t.ch
}

type cell struct {
	r      rune
	fg, bg tcell.Color
}

// cellCanvas rasterises tactics draw calls into a grid of terminal cells.
// Fills set the background; strokes and text set the glyph.
type cellCanvas struct {
	cols, rows int
	cells      []cell
	xf         cellTransform
}

var _ tactics.Canvas = (*cellCanvas)(nil)

func newCellCanvas(cols, rows int, xf cellTransform) *cellCanvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &cellCanvas{cols: cols, rows: rows, cells: make([]cell, cols*rows), xf: xf}
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', fg: tcell.ColorWhite, bg: tcell.ColorBlack}
	}
	return c
}

func (c *cellCanvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func (c *cellCanvas) fill(col, row int, clr color.RGBA) {
	if cl := c.at(col, row); cl != nil {
		cl.bg = blend(cl.bg, clr)
	}
}

func (c *cellCanvas) mark(col, row int, r rune, clr color.RGBA) {
	if cl := c.at(col, row); cl != nil {
		cl.r = r
		cl.fg = blend(cl.bg, clr)
	}
}

func (c *cellCanvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	c0, r0 := c.xf.toCell(x, y)
	c1, r1 := c.xf.toCell(x+w, y+h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx, cy := c.xf.toCanvas(col, row)
			if cx >= x && cx < x+w && cy >= y && cy < y+h {
				c.fill(col, row, clr)
			}
		}
	}
}

func (c *cellCanvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	c.StrokeLine(x, y, x+w, y, width, clr)
	c.StrokeLine(x+w, y, x+w, y+h, width, clr)
	c.StrokeLine(x+w, y+h, x, y+h, width, clr)
	c.StrokeLine(x, y+h, x, y, width, clr)
}

func (c *cellCanvas) StrokeLine(x0, y0, x1, y1, _ float64, clr color.RGBA) {
	r := lineRune((x1-x0)/c.xf.cw, (y1-y0)/c.xf.ch)
	step := math.Min(c.xf.cw, c.xf.ch) / 2
	n := int(math.Ceil(math.Hypot(x1-x0, y1-y0) / step))
	for i := 0; i <= n; i++ {
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		col, row := c.xf.toCell(x0+(x1-x0)*t, y0+(y1-y0)*t)
		c.mark(col, row, r, clr)
	}
}

// lineRune picks a box-drawing glyph for a segment measured in cells.
func lineRune(dc, dr float64) rune {
	adc, adr := math.Abs(dc), math.Abs(dr)
	switch {
	case adr <= adc/2:
		return '─'
	case adc <= adr/2:
		return '│'
	case (dc > 0) == (dr > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (c *cellCanvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	c0, r0 := c.xf.toCell(cx-r, cy-r)
	c1, r1 := c.xf.toCell(cx+r, cy+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px, py := c.xf.toCanvas(col, row)
			if math.Hypot(px-cx, py-cy) <= r {
				c.fill(col, row, clr)
			}
		}
	}
	// Markers are often smaller than a cell; the centre cell always shows.
	col, row := c.xf.toCell(cx, cy)
	if px, py := c.xf.toCanvas(col, row); math.Hypot(px-cx, py-cy) > r {
		c.fill(col, row, clr)
	}
}

func (c *cellCanvas) StrokeCircle(cx, cy, r, width float64, clr color.RGBA) {
	c.StrokeArc(cx, cy, r, 0, 2*math.Pi, width, clr)
}

func (c *cellCanvas) StrokeArc(cx, cy, r, start, sweep, _ float64, clr color.RGBA) {
	if r <= 0 || sweep == 0 || math.IsNaN(sweep) {
		return
	}
	// Skip rings that would collapse onto the centre cell and hide the label.
	if r < c.xf.cw && r < c.xf.ch {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) * r / (math.Min(c.xf.cw, c.xf.ch) / 2)))
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		col, row := c.xf.toCell(cx+r*math.Cos(a), cy+r*math.Sin(a))
		c.mark(col, row, '·', clr)
	}
}

func (c *cellCanvas) Text(s string, x, y float64, align tactics.Align, clr color.RGBA) {
	runes := []rune(s)
	col, row := c.xf.toCell(x, y)
	if align == tactics.AlignCenter {
		col -= len(runes) / 2
	}
	for i, r := range runes {
		c.mark(col+i, row, r, clr)
	}
}

// putString writes s at a fixed cell position, outside canvas space.
func (c *cellCanvas) putString(col, row int, s string, fg, bg tcell.Color) {
	for i, r := range []rune(s) {
		if cl := c.at(col+i, row); cl != nil {
			*cl = cell{r: r, fg: fg, bg: bg}
		}
	}
}

// flush copies the grid onto the screen.
func (c *cellCanvas) flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			screen.SetContent(col, row, cl.r, nil, tcell.StyleDefault.Foreground(cl.fg).Background(cl.bg))
		}
	}
}

// blend composites src over dst using src's alpha.
func blend(dst tcell.Color, src color.RGBA) tcell.Color {
	if src.A == 255 {
		return tcell.NewRGBColor(int32(src.R), int32(src.G), int32(src.B))
	}
	dr, dg, db := dst.RGB()
	if dr < 0 {
		dr, dg, db = 0, 0, 0
	}
	a := float64(src.A) / 255
	mix := func(s uint8, d int32) int32 {
		return int32(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return tcell.NewRGBColor(mix(src.R, dr), mix(src.G, dg), mix(src.B, db))
}
