package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// canvasTransform maps window pixels onto canvas pixels. Mouse and touch
// both go through it so drags land in the same space.
type canvasTransform struct {
	offX, offY float64
	scale      float64
}

func (t canvasTransform) toCanvas(sx, sy int) (float64, float64) {
	return (float64(sx) - t.offX) / t.scale, (float64(sy) - t.offY) / t.scale
}

func (t canvasTransform) toScreen(cx, cy float64) (float64, float64) {
	return cx*t.scale + t.offX, cy*t.scale + t.offY
}

// inside reports whether a window pixel falls on a w x h canvas.
func (t canvasTransform) inside(sx, sy int, w, h int) bool {
	cx, cy := t.toCanvas(sx, sy)
	return cx >= 0 && cy >= 0 && cx < float64(w) && cy < float64(h)
}

// pointerState tracks the active drag. touchID is -1 when no touch owns it.
type pointerState struct {
	mouseDown bool
	touchID   ebiten.TouchID
	lastX     int
	lastY     int
}

// handlePointer turns mouse and touch input into designer presses, moves and
// releases. A touch that starts on the pitch belongs to the designer for its
// whole lifetime and never scrolls the event panel.
func (g *Game) handlePointer() {
	sc := g.designer.Surface()
	p := &g.pointer

	// Mouse.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && p.touchID == -1 {
		mx, my := ebiten.CursorPosition()
		if g.xf.inside(mx, my, sc.Width, sc.Height) {
			p.mouseDown = true
			p.lastX, p.lastY = mx, my
			g.designer.Press(g.xf.toCanvas(mx, my))
		}
	}
	if p.mouseDown {
		mx, my := ebiten.CursorPosition()
		if mx != p.lastX || my != p.lastY {
			p.lastX, p.lastY = mx, my
			g.designer.Move(g.xf.toCanvas(mx, my))
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			p.mouseDown = false
			g.designer.Release()
		}
	}

	// Touch.
	if p.touchID == -1 && !p.mouseDown {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			tx, ty := ebiten.TouchPosition(id)
			if g.xf.inside(tx, ty, sc.Width, sc.Height) {
				p.touchID = id
				p.lastX, p.lastY = tx, ty
				g.designer.Press(g.xf.toCanvas(tx, ty))
				g.panel.cancelTouch(id)
				break
			}
		}
	}
	if p.touchID != -1 {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touchID = -1
			g.designer.Release()
			return
		}
		tx, ty := ebiten.TouchPosition(p.touchID)
		if tx != p.lastX || ty != p.lastY {
			p.lastX, p.lastY = tx, ty
			g.designer.Move(g.xf.toCanvas(tx, ty))
		}
	}
}

// ownsTouch reports whether the designer has claimed a touch.
func (p *pointerState) ownsTouch(id ebiten.TouchID) bool {
	return p.touchID != -1 && p.touchID == id
}
