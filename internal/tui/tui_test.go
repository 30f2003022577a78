package tui

import (
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/gdamore/tcell/v2"
)

const testTick = 16 * time.Millisecond

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(100, 41)
	t.Cleanup(screen.Fini)

	h, err := New(screen, tactics.DefaultOptions(), Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(h.designer.Destroy)
	return h, screen
}

// --- layout ---

func TestFitTransform_Portrait(t *testing.T) {
	xf := fitTransform(800, 1040, 100, 40)
	if xf.cw != 13 || xf.ch != 26 {
		t.Fatalf("expected 13x26 canvas px per cell, got %.2fx%.2f", xf.cw, xf.ch)
	}
	if xf.offCol != 19 || xf.offRow != 0 {
		t.Fatalf("expected offset (19,0), got (%d,%d)", xf.offCol, xf.offRow)
	}
}

func TestFitTransform_Degenerate(t *testing.T) {
	xf := fitTransform(800, 1040, 0, 0)
	if xf.cw <= 0 || xf.ch <= 0 {
		t.Fatalf("zero-size screen must still give a usable transform, got %+v", xf)
	}
}

func TestCellTransform_CentreRoundTrip(t *testing.T) {
	xf := fitTransform(800, 1040, 100, 40)
	for _, pt := range [][2]float64{{0, 0}, {400, 520}, {799, 1039}} {
		col, row := xf.toCell(pt[0], pt[1])
		cx, cy := xf.toCanvas(col, row)
		if math.Abs(cx-pt[0]) > xf.cw/2 || math.Abs(cy-pt[1]) > xf.ch/2 {
			t.Fatalf("cell centre (%.1f,%.1f) too far from (%.1f,%.1f)", cx, cy, pt[0], pt[1])
		}
	}
}

// --- cell canvas ---

func TestLineRune(t *testing.T) {
	cases := []struct {
		dc, dr float64
		want   rune
	}{
		{10, 0, '─'},
		{0, 5, '│'},
		{3, 3, '╲'},
		{-3, 3, '╱'},
	}
	for _, c := range cases {
		if got := lineRune(c.dc, c.dr); got != c.want {
			t.Fatalf("lineRune(%.0f,%.0f) = %q, want %q", c.dc, c.dr, got, c.want)
		}
	}
}

func TestBlend_HalfAlphaOverBlack(t *testing.T) {
	got := blend(tcell.ColorBlack, color.RGBA{R: 200, G: 100, B: 0, A: 128})
	r, g, b := got.RGB()
	if r != 100 || g != 50 || b != 0 {
		t.Fatalf("expected (100,50,0), got (%d,%d,%d)", r, g, b)
	}
	if opaque := blend(tcell.ColorBlack, color.RGBA{R: 1, G: 2, B: 3, A: 255}); opaque != tcell.NewRGBColor(1, 2, 3) {
		t.Fatal("opaque colours should replace the background")
	}
}

func TestCellCanvas_SmallCircleFillsCentreCell(t *testing.T) {
	c := newCellCanvas(10, 10, cellTransform{cw: 10, ch: 20})
	c.FillCircle(55, 55, 3, color.RGBA{R: 255, A: 255})
	if c.at(5, 2).bg != tcell.NewRGBColor(255, 0, 0) {
		t.Fatal("a marker smaller than a cell should still colour its cell")
	}
	if c.at(4, 2).bg != tcell.ColorBlack {
		t.Fatal("neighbouring cells should stay untouched")
	}
}

func TestCellCanvas_TextCentredAndClipped(t *testing.T) {
	c := newCellCanvas(10, 2, cellTransform{cw: 10, ch: 20})
	c.Text("ABCD", 50, 0, tactics.AlignCenter, color.RGBA{A: 255})
	got := string([]rune{c.at(3, 0).r, c.at(4, 0).r, c.at(5, 0).r, c.at(6, 0).r})
	if got != "ABCD" {
		t.Fatalf("expected ABCD centred on column 5, got %q", got)
	}
	c.Text("overflowing", 80, 20, tactics.AlignLeft, color.RGBA{A: 255})
	if c.at(9, 1).r != 'v' {
		t.Fatalf("text should clip at the right edge, got %q", c.at(9, 1).r)
	}
}

func TestStatusLine_FitsWidth(t *testing.T) {
	sc := tactics.Scene{Formation: "4-4-2"}
	if got := statusLine(sc, 20); len([]rune(got)) != 20 {
		t.Fatalf("status line should be cut to 20 columns, got %d", len([]rune(got)))
	}
	if got := statusLine(sc, 200); len([]rune(got)) != 200 || !strings.HasPrefix(got, " 4-4-2") {
		t.Fatalf("status line should pad to 200 columns, got %q", got)
	}
}

// --- host ---

func TestHost_MouseDragAndRelease(t *testing.T) {
	h, _ := newTestHost(t)
	xf := h.transform()

	gk, ok := h.designer.Scene().Player("GK")
	if !ok {
		t.Fatal("default formation should have a GK slot")
	}
	col, row := xf.toCell(gk.Pos.X, gk.Pos.Y)

	h.handleMouse(col, row, true)
	h.step(testTick)
	held, ok := h.designer.Scene().Held()
	if !ok || held.SlotID != "GK" {
		t.Fatalf("expected GK held after press on its cell, got %+v ok=%v", held.SlotID, ok)
	}

	h.handleMouse(col+3, row-2, true)
	h.step(testTick)
	wantX, wantY := xf.toCanvas(col+3, row-2)
	held, _ = h.designer.Scene().Held()
	if math.Abs(held.Pos.X-wantX) > 1e-9 || math.Abs(held.Pos.Y-wantY) > 1e-9 {
		t.Fatalf("held marker should follow the mouse to (%.1f,%.1f), got (%.1f,%.1f)", wantX, wantY, held.Pos.X, held.Pos.Y)
	}

	h.handleMouse(col+3, row-2, false)
	h.step(testTick)
	if _, ok := h.designer.Scene().Held(); ok {
		t.Fatal("release should drop the marker")
	}
	if h.held != "" {
		t.Fatalf("host should have noticed the drop, still tracking %q", h.held)
	}
}

func TestHost_KeysSwitchFormationAndOverlays(t *testing.T) {
	h, _ := newTestHost(t)
	names := tactics.FormationNames()

	h.handleRune('2')
	h.handleRune('z')
	for i := 0; i < 50; i++ {
		h.step(testTick)
	}
	sc := h.designer.Scene()
	if sc.Formation != names[1] {
		t.Fatalf("expected formation %s after key 2, got %s", names[1], sc.Formation)
	}
	if sc.Overlays.Zones {
		t.Fatal("z should have toggled zones off")
	}

	h.handleRune('q')
	if !h.quit {
		t.Fatal("q should request quit")
	}
}

func TestHost_DrawWritesStatusRow(t *testing.T) {
	h, screen := newTestHost(t)
	h.step(testTick)
	h.draw()

	_, rows := screen.Size()
	var sb strings.Builder
	for col := 0; col < 8; col++ {
		r, _, _, _ := screen.GetContent(col, rows-1)
		sb.WriteRune(r)
	}
	if got := sb.String(); got != " 4-2-3-1" {
		t.Fatalf("expected status row to start with the formation, got %q", got)
	}
}

func TestHost_DestroyDetaches(t *testing.T) {
	h, _ := newTestHost(t)
	if len(h.surfaces) != 1 || len(h.frames) != 1 {
		t.Fatalf("expected one surface and one frame callback, got %d/%d", len(h.surfaces), len(h.frames))
	}
	h.designer.Destroy()
	if len(h.surfaces) != 0 || len(h.frames) != 0 {
		t.Fatalf("destroy should detach everything, got %d/%d", len(h.surfaces), len(h.frames))
	}
}
