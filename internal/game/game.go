package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// borderWidth is the pixel gap between the window edge and the pitch.
const borderWidth = 24

// statusTicks is how long a status line stays on screen (60 TPS).
const statusTicks = 180

var (
	backdrop  = color.RGBA{R: 16, G: 22, B: 16, A: 255}
	pitchEdge = color.RGBA{R: 55, G: 80, B: 55, A: 255}
)

// Game is the ebiten window hosting one formation designer. It implements
// tactics.Host: the designer's surface is painted in Draw and its frame
// callback runs from Update.
type Game struct {
	width  int
	height int
	xf     canvasTransform

	designer *tactics.Designer
	log      *tactics.EventLog
	surfaces []*mountedSurface
	frames   []frameReg
	nextReg  int

	pointer  pointerState
	panel    eventPanel
	showHUD  bool
	status   string
	statusTk int
	lastTick time.Time
	quit     bool
}

type mountedSurface struct {
	surface *tactics.Surface
	buf     *ebiten.Image
}

type frameReg struct {
	id int
	fn tactics.FrameFunc
}

// New builds the window and mounts a designer configured by opts. scale
// shrinks or enlarges the pitch on screen without changing canvas space.
func New(opts tactics.Options, scale float64) (*Game, error) {
	if scale <= 0 {
		scale = 1
	}
	if opts.Log == nil {
		opts.Log = tactics.NewEventLog(0)
	}
	g := &Game{
		xf:       canvasTransform{offX: borderWidth, offY: borderWidth, scale: scale},
		log:      opts.Log,
		pointer:  pointerState{touchID: -1},
		showHUD:  true,
		lastTick: time.Now(),
	}
	g.width = borderWidth + int(float64(opts.Width)*scale) + borderWidth + panelWidth
	g.height = borderWidth + int(float64(opts.Height)*scale) + borderWidth

	d, err := tactics.Init(g, opts)
	if err != nil {
		return nil, fmt.Errorf("mount designer: %w", err)
	}
	g.designer = d
	return g, nil
}

// Designer exposes the mounted designer.
func (g *Game) Designer() *tactics.Designer { return g.designer }

// Attach implements tactics.Host.
func (g *Game) Attach(s *tactics.Surface) {
	g.surfaces = append(g.surfaces, &mountedSurface{
		surface: s,
		buf:     ebiten.NewImage(s.Width, s.Height),
	})
}

// Detach implements tactics.Host.
func (g *Game) Detach(s *tactics.Surface) {
	for i, m := range g.surfaces {
		if m.surface == s {
			m.buf.Deallocate()
			g.surfaces = append(g.surfaces[:i], g.surfaces[i+1:]...)
			return
		}
	}
}

// RequestFrame implements tactics.Host. Callbacks run once per Update.
func (g *Game) RequestFrame(fn tactics.FrameFunc) tactics.CancelFunc {
	id := g.nextReg
	g.nextReg++
	g.frames = append(g.frames, frameReg{id: id, fn: fn})
	return func() {
		for i, r := range g.frames {
			if r.id == id {
				g.frames = append(g.frames[:i], g.frames[i+1:]...)
				return
			}
		}
	}
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastTick)
	g.lastTick = now

	g.handleInput()
	if g.quit {
		g.designer.Destroy()
		return ebiten.Termination
	}

	// Copy: a callback may cancel itself.
	frames := append([]frameReg(nil), g.frames...)
	for _, r := range frames {
		r.fn(dt)
	}
	if g.statusTk > 0 {
		g.statusTk--
	}
	return nil
}

func (g *Game) handleInput() {
	g.handlePointer()
	g.handleKeys()
	g.panel.scroll(g)
}

func (g *Game) handleKeys() {
	names := tactics.FormationNames()
	digits := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}
	for i, k := range digits {
		if i < len(names) && inpututil.IsKeyJustPressed(k) {
			g.designer.ChangeFormation(names[i])
		}
	}

	o := g.designer.Scene().Overlays
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		o.Zones = !o.Zones
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		o.Connections = !o.Connections
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.Analysis = !o.Analysis
		changed = true
	}
	if changed {
		g.designer.SetOverlays(o)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTk = statusTicks
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)

	for _, m := range g.surfaces {
		m.buf.Clear()
		m.surface.Paint(&screenCanvas{dst: m.buf})

		var opts ebiten.DrawImageOptions
		opts.GeoM.Scale(g.xf.scale, g.xf.scale)
		opts.GeoM.Translate(g.xf.offX, g.xf.offY)
		opts.Filter = ebiten.FilterLinear
		screen.DrawImage(m.buf, &opts)
	}

	sc := g.designer.Scene()
	w := float64(sc.Width) * g.xf.scale
	h := float64(sc.Height) * g.xf.scale
	(&screenCanvas{dst: screen}).StrokeRect(g.xf.offX-1, g.xf.offY-1, w+2, h+2, 1, pitchEdge)

	panelX := g.width - panelWidth
	g.panel.draw(screen, panelX, g.height, g.log)
	drawInspector(screen, sc, panelX, g.height)
	if g.showHUD {
		g.drawHUD(screen, sc)
	}
}

// drawHUD lists the key bindings in the bottom-left corner of the pitch.
func (g *Game) drawHUD(screen *ebiten.Image, sc tactics.Scene) {
	on := func(b bool) string {
		if b {
			return "*"
		}
		return " "
	}
	lines := []string{
		fmt.Sprintf("formation %s  [1-%d] switch", sc.Formation, len(tactics.FormationNames())),
		fmt.Sprintf("[Z]%s zones  [X]%s links  [A]%s analysis", on(sc.Overlays.Zones), on(sc.Overlays.Connections), on(sc.Overlays.Analysis)),
		"[C] copy report  [H] hud  [Esc] quit",
	}
	if g.statusTk > 0 {
		lines = append(lines, g.status)
	}
	drawTextBlock(screen, lines, int(g.xf.offX)+8, g.height-borderWidth-8-len(lines)*hudLineH)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Size is the logical window size.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}
