package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth    = 360
	logLineHeight = 12
	logVisible    = 40  // newest events kept in view
	inspectorH    = 150 // inspector block at the bottom of the panel
)

// eventPanel renders the designer's event log on the right of the window.
// It scrolls with the mouse wheel or with a touch that starts on the panel.
type eventPanel struct {
	offset  int // lines scrolled back from the newest entry
	touchID ebiten.TouchID
	touchY  int
	touched bool
}

func (ep *eventPanel) cancelTouch(id ebiten.TouchID) {
	if ep.touched && ep.touchID == id {
		ep.touched = false
	}
}

func (ep *eventPanel) scroll(g *Game) {
	panelX := g.width - panelWidth
	mx, _ := ebiten.CursorPosition()
	if mx >= panelX {
		_, wy := ebiten.Wheel()
		ep.offset += int(wy * 3)
	}

	if !ep.touched {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			if g.pointer.ownsTouch(id) {
				continue
			}
			tx, ty := ebiten.TouchPosition(id)
			if tx >= panelX {
				ep.touched = true
				ep.touchID = id
				ep.touchY = ty
				break
			}
		}
	}
	if ep.touched {
		if inpututil.IsTouchJustReleased(ep.touchID) {
			ep.touched = false
		} else {
			_, ty := ebiten.TouchPosition(ep.touchID)
			ep.offset += (ty - ep.touchY) / logLineHeight
			if (ty-ep.touchY)/logLineHeight != 0 {
				ep.touchY = ty
			}
		}
	}
	ep.offset = clampOffset(ep.offset, g.log.Len(), logVisible)
}

// clampOffset keeps a scroll offset inside the retained history.
func clampOffset(offset, total, visible int) int {
	maxOff := total - visible
	if maxOff < 0 {
		maxOff = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > maxOff {
		return maxOff
	}
	return offset
}

// visibleEvents picks the window of events to show, oldest first.
func visibleEvents(all []tactics.Event, offset, visible int) []tactics.Event {
	end := len(all) - offset
	if end < 0 {
		end = 0
	}
	start := end - visible
	if start < 0 {
		start = 0
	}
	return all[start:end]
}

func (ep *eventPanel) draw(screen *ebiten.Image, panelX, panelH int, log *tactics.EventLog) {
	vector.FillRect(screen, float32(panelX), 0, float32(panelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(panelWidth), 16, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	title := "EVENT LOG"
	if ep.offset > 0 {
		title = fmt.Sprintf("EVENT LOG  (-%d)", ep.offset)
	}
	ebitenutil.DebugPrintAt(screen, title, panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+panelWidth), 16, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	rows := (panelH - 24 - inspectorH) / logLineHeight
	if rows > logVisible {
		rows = logVisible
	}
	y := 20
	for _, e := range visibleEvents(log.Entries(), ep.offset, rows) {
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, categoryColor(e.Category), false)
		line := fmt.Sprintf("%5d %-6s %s %s", e.Frame, e.Player, e.Key, e.Value)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}

func categoryColor(cat string) color.RGBA {
	switch cat {
	case "input":
		return color.RGBA{R: 255, G: 220, B: 60, A: 255}
	case "physics":
		return color.RGBA{R: 70, G: 210, B: 110, A: 255}
	case "transition", "formation":
		return color.RGBA{R: 70, G: 140, B: 230, A: 255}
	default:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	}
}

// drawInspector shows the selected player at the bottom of the panel.
func drawInspector(screen *ebiten.Image, sc tactics.Scene, panelX, panelH int) {
	top := panelH - inspectorH
	vector.StrokeLine(screen, float32(panelX), float32(top), float32(panelX+panelWidth), float32(top), 1.0, color.RGBA{R: 55, G: 80, B: 55, A: 255}, false)

	p, ok := sc.Player(sc.Selected)
	if !ok {
		ebitenutil.DebugPrintAt(screen, "[ no player selected ]", panelX+8, top+6)
		return
	}
	lines := []string{
		fmt.Sprintf("[ %s #%d %s ]", p.SlotID, p.Number, p.Name),
		fmt.Sprintf("role:   %s", p.Role),
		fmt.Sprintf("state:  %s", p.State()),
		fmt.Sprintf("eff:    %.2f", p.Effectiveness),
		fmt.Sprintf("pos:    (%.0f,%.0f)", p.Pos.X, p.Pos.Y),
		fmt.Sprintf("rest:   (%.0f,%.0f)  off %.0fpx", p.Rest.X, p.Rest.Y, p.Pos.Dist(p.Rest)),
		fmt.Sprintf("vel:    (%.2f,%.2f)", p.Vel.X, p.Vel.Y),
	}
	y := top + 6
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, panelX+8, y)
		y += 16
	}
}
