// Package tui hosts a formation designer in a terminal. The pitch is
// rasterised into character cells and dragged with the mouse.
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/Garsondee/Touchline/internal/tactics"
	"github.com/gdamore/tcell/v2"
)

// DefaultTick is the frame interval of the run loop (~60 FPS).
const DefaultTick = 16 * time.Millisecond

// Config controls the terminal host.
type Config struct {
	Tick  time.Duration
	Sound bool
}

// Host is a tcell screen that implements tactics.Host. Terminal events are
// read on their own goroutine; frames and events are handled on the Run
// goroutine.
type Host struct {
	screen   tcell.Screen
	cfg      Config
	designer *tactics.Designer
	log      *tactics.EventLog
	surfaces []*tactics.Surface
	frames   []frameReg
	nextReg  int
	sound    *clicker

	mouseDown bool
	lastCol   int
	lastRow   int
	held      string
	lastTick  time.Time
	quit      bool
}

type frameReg struct {
	id int
	fn tactics.FrameFunc
}

// New mounts a designer on an initialised screen.
func New(screen tcell.Screen, opts tactics.Options, cfg Config) (*Host, error) {
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	if opts.Log == nil {
		opts.Log = tactics.NewEventLog(0)
	}
	h := &Host{screen: screen, cfg: cfg, log: opts.Log, lastTick: time.Now()}
	screen.EnableMouse()

	if cfg.Sound {
		s, err := newClicker()
		if err != nil {
			// Non-fatal, the designer works without sound.
			log.Printf("audio initialization failed: %v", err)
			h.log.Add(0, "--", "audio", "init-failed", err.Error(), 0)
		}
		h.sound = s
	}

	d, err := tactics.Init(h, opts)
	if err != nil {
		h.sound.close()
		return nil, fmt.Errorf("mount designer: %w", err)
	}
	h.designer = d
	return h, nil
}

// Designer exposes the mounted designer.
func (h *Host) Designer() *tactics.Designer { return h.designer }

// Attach implements tactics.Host.
func (h *Host) Attach(s *tactics.Surface) { h.surfaces = append(h.surfaces, s) }

// Detach implements tactics.Host.
func (h *Host) Detach(s *tactics.Surface) {
	for i, m := range h.surfaces {
		if m == s {
			h.surfaces = append(h.surfaces[:i], h.surfaces[i+1:]...)
			return
		}
	}
}

// RequestFrame implements tactics.Host.
func (h *Host) RequestFrame(fn tactics.FrameFunc) tactics.CancelFunc {
	id := h.nextReg
	h.nextReg++
	h.frames = append(h.frames, frameReg{id: id, fn: fn})
	return func() {
		for i, r := range h.frames {
			if r.id == id {
				h.frames = append(h.frames[:i], h.frames[i+1:]...)
				return
			}
		}
	}
}

// Run drives frames until the user quits, then destroys the designer. The
// caller still owns the screen and must Fini it.
func (h *Host) Run() {
	ticker := time.NewTicker(h.cfg.Tick)
	defer ticker.Stop()
	defer h.sound.close()
	defer h.designer.Destroy()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			h.handleEvent(ev)
		case now := <-ticker.C:
			h.step(now.Sub(h.lastTick))
			h.lastTick = now
			h.draw()
		}
		if h.quit {
			return
		}
	}
}

func (h *Host) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			h.quit = true
		case tcell.KeyRune:
			h.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		h.handleMouse(col, row, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

func (h *Host) handleRune(r rune) {
	names := tactics.FormationNames()
	if r >= '1' && r <= '9' {
		if i := int(r - '1'); i < len(names) {
			h.designer.ChangeFormation(names[i])
		}
		return
	}
	o := h.designer.Scene().Overlays
	switch r {
	case 'z':
		o.Zones = !o.Zones
	case 'x':
		o.Connections = !o.Connections
	case 'a':
		o.Analysis = !o.Analysis
	case 'q':
		h.quit = true
		return
	default:
		return
	}
	h.designer.SetOverlays(o)
}

// handleMouse turns button-1 state changes into press, move and release.
func (h *Host) handleMouse(col, row int, down bool) {
	xf := h.transform()
	switch {
	case down && !h.mouseDown:
		h.mouseDown = true
		h.lastCol, h.lastRow = col, row
		h.designer.Press(xf.toCanvas(col, row))
	case down && (col != h.lastCol || row != h.lastRow):
		h.lastCol, h.lastRow = col, row
		h.designer.Move(xf.toCanvas(col, row))
	case !down && h.mouseDown:
		h.mouseDown = false
		h.designer.Release()
	}
}

// transform fits the designer canvas into the screen minus the status line.
func (h *Host) transform() cellTransform {
	cols, rows := h.screen.Size()
	s := h.designer.Surface()
	return fitTransform(float64(s.Width), float64(s.Height), cols, rows-1)
}

// step runs one frame and clicks when a marker is picked up or dropped.
func (h *Host) step(dt time.Duration) {
	frames := append([]frameReg(nil), h.frames...)
	for _, r := range frames {
		r.fn(dt)
	}

	held := ""
	if p, ok := h.designer.Scene().Held(); ok {
		held = p.SlotID
	}
	switch {
	case held != "" && h.held == "":
		h.sound.click(pickupHz)
	case held == "" && h.held != "":
		h.sound.click(dropHz)
	}
	h.held = held
}

func (h *Host) draw() {
	cols, rows := h.screen.Size()
	c := newCellCanvas(cols, rows, h.transform())
	for _, s := range h.surfaces {
		s.Paint(c)
	}
	c.putString(0, rows-1, statusLine(h.designer.Scene(), cols), tcell.ColorBlack, tcell.ColorSilver)
	c.flush(h.screen)
	h.screen.Show()
}

// statusLine summarises the scene and the key bindings in one row.
func statusLine(sc tactics.Scene, cols int) string {
	s := fmt.Sprintf(" %s  overall %.0f  [1-%d] formation  [z]ones [x] links [a]nalysis  [q]uit",
		sc.Formation, sc.Analysis.Overall, len(tactics.FormationNames()))
	if p, ok := sc.Player(sc.Selected); ok {
		s += fmt.Sprintf("  | %s %s eff %.2f", p.Label(), p.Name, p.Effectiveness)
	}
	r := []rune(s)
	for len(r) < cols {
		r = append(r, ' ')
	}
	if cols >= 0 && len(r) > cols {
		r = r[:cols]
	}
	return string(r)
}
