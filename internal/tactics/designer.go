package tactics

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoHost is returned by Init when there is nothing to mount into.
	ErrNoHost = errors.New("tactics: no host to mount the designer into")
	// ErrBadSize is returned by Init for a non-positive canvas size.
	ErrBadSize = errors.New("tactics: canvas size must be positive")
)

// FrameFunc is called once per display frame with the time since the last one.
type FrameFunc func(dt time.Duration)

// CancelFunc withdraws a frame registration. Calling it twice is harmless.
type CancelFunc func()

// Host is the container a designer mounts its surface into. It also owns the
// refresh signal that drives the frame loop.
type Host interface {
	Attach(s *Surface)
	Detach(s *Surface)
	RequestFrame(fn FrameFunc) CancelFunc
}

// Surface is the drawing area a designer owns inside its host. Hosts paint
// it from their draw pass; the designer replaces its scene every frame.
type Surface struct {
	Width, Height int

	mu    sync.RWMutex
	scene Scene
}

// Scene returns the most recently published frame.
func (s *Surface) Scene() Scene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scene
}

// Paint renders the current scene onto c.
func (s *Surface) Paint(c Canvas) {
	Render(s.Scene(), c)
}

func (s *Surface) publish(sc Scene) {
	s.mu.Lock()
	s.scene = sc
	s.mu.Unlock()
}

// Options configures a designer. The overlay flags only change what is drawn.
type Options struct {
	Width, Height    int
	Radius           float64
	Formation        string
	Interactive      bool
	ShowConnections  bool
	ShowZones        bool
	RealTimeAnalysis bool
	Log              *EventLog // nil creates a private log
}

// DefaultOptions is an interactive designer with every overlay on.
func DefaultOptions() Options {
	return Options{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Radius:           DefaultRadius,
		Formation:        DefaultFormation,
		Interactive:      true,
		ShowConnections:  true,
		ShowZones:        true,
		RealTimeAnalysis: true,
	}
}

type commandKind int

const (
	cmdPress commandKind = iota
	cmdMove
	cmdRelease
	cmdFormation
	cmdOverlays
)

type command struct {
	kind     commandKind
	x, y     float64
	name     string
	overlays Overlays
}

// Designer is one mounted formation designer. Its exported methods may be
// called from any goroutine; they only queue work. All player mutation
// happens inside the frame callback.
type Designer struct {
	id      uuid.UUID
	opts    Options
	bounds  Bounds
	host    Host
	surface *Surface
	log     *EventLog
	cancel  CancelFunc
	once    sync.Once

	mu        sync.Mutex
	queue     []command
	destroyed bool

	frame int // written under mu, read freely by the frame callback

	// Owned by the frame callback.
	formation string
	players   []*Player
	trans     *Transition
	selected  string
	overlays  Overlays
}

// Init builds a designer, attaches its surface to host and registers its
// frame callback. Destroy releases both.
func Init(host Host, opts Options) (*Designer, error) {
	if host == nil {
		return nil, ErrNoHost
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadSize, opts.Width, opts.Height)
	}
	if opts.Radius <= 0 {
		opts.Radius = DefaultRadius
	}
	if opts.Log == nil {
		opts.Log = NewEventLog(eventLogCapacity)
	}

	d := &Designer{
		id:   uuid.New(),
		opts: opts,
		bounds: Bounds{
			Width:  float64(opts.Width),
			Height: float64(opts.Height),
			Radius: opts.Radius,
		},
		host:    host,
		surface: &Surface{Width: opts.Width, Height: opts.Height},
		log:     opts.Log,
		overlays: Overlays{
			Connections: opts.ShowConnections,
			Zones:       opts.ShowZones,
			Analysis:    opts.RealTimeAnalysis,
		},
	}
	d.load(opts.Formation)
	ScoreAll(d.players, d.bounds.Width)
	d.publish()

	host.Attach(d.surface)
	d.cancel = host.RequestFrame(d.tick)
	d.log.Add(d.frame, "--", "lifecycle", "init",
		fmt.Sprintf("id=%s canvas=%dx%d", d.id, opts.Width, opts.Height), 0)
	return d, nil
}

// ID identifies this designer instance in logs and reports.
func (d *Designer) ID() string { return d.id.String() }

// Options returns the options the designer was built with.
func (d *Designer) Options() Options { return d.opts }

// Surface is the drawing area attached to the host.
func (d *Designer) Surface() *Surface { return d.surface }

// Scene is the most recently published frame.
func (d *Designer) Scene() Scene { return d.surface.Scene() }

// Log is the designer's event log.
func (d *Designer) Log() *EventLog { return d.log }

// Bounds is the clamp region for markers.
func (d *Designer) Bounds() Bounds { return d.bounds }

// Press queues a pointer press at canvas coordinates (x, y).
func (d *Designer) Press(x, y float64) { d.enqueue(command{kind: cmdPress, x: x, y: y}) }

// Move queues a pointer move at canvas coordinates (x, y).
func (d *Designer) Move(x, y float64) { d.enqueue(command{kind: cmdMove, x: x, y: y}) }

// Release queues a pointer release.
func (d *Designer) Release() { d.enqueue(command{kind: cmdRelease}) }

// ChangeFormation queues an animated switch to the named formation.
// Unknown names fall back to DefaultFormation.
func (d *Designer) ChangeFormation(name string) {
	d.enqueue(command{kind: cmdFormation, name: name})
}

// SetOverlays queues a change of the visible overlays.
func (d *Designer) SetOverlays(o Overlays) {
	d.enqueue(command{kind: cmdOverlays, overlays: o})
}

// Destroy cancels the frame callback and detaches the surface. It is safe
// to call more than once.
func (d *Designer) Destroy() {
	d.once.Do(func() {
		d.mu.Lock()
		d.destroyed = true
		d.queue = nil
		frame := d.frame
		d.mu.Unlock()

		if d.cancel != nil {
			d.cancel()
		}
		d.host.Detach(d.surface)
		d.log.Add(frame, "--", "lifecycle", "destroy", d.id.String(), 0)
	})
}

func (d *Designer) enqueue(c command) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return
	}
	d.queue = append(d.queue, c)
}

// tick is the frame callback: queued input, then the transition or the
// spring step, then scoring, then a new scene.
func (d *Designer) tick(dt time.Duration) {
	d.mu.Lock()
	if d.destroyed {
		d.mu.Unlock()
		return
	}
	cmds := d.queue
	d.queue = nil
	d.frame++
	d.mu.Unlock()

	for _, c := range cmds {
		d.apply(c)
	}

	if d.trans != nil {
		if d.trans.Step(dt) {
			d.finishTransition()
		}
	} else {
		for _, p := range Advance(d.players, dt, d.bounds) {
			d.log.Add(d.frame, p.Label(), "physics", "settled", "at rest", 0)
		}
	}

	ScoreAll(d.players, d.bounds.Width)
	d.publish()
}

func (d *Designer) apply(c command) {
	switch c.kind {
	case cmdPress:
		if !d.acceptsInput() {
			return
		}
		if p := Press(d.players, c.x, c.y, d.bounds.Radius); p != nil {
			d.selected = p.SlotID
			d.log.Add(d.frame, p.Label(), "input", "press", fmt.Sprintf("(%.0f,%.0f)", c.x, c.y), 0)
		}
	case cmdMove:
		if !d.acceptsInput() {
			return
		}
		Move(d.players, c.x, c.y, d.bounds)
	case cmdRelease:
		if !d.acceptsInput() {
			return
		}
		if p := Release(d.players); p != nil {
			off := p.Pos.Dist(p.Rest)
			d.log.Add(d.frame, p.Label(), "input", "release", fmt.Sprintf("%.0fpx from rest", off), off)
		}
	case cmdFormation:
		d.startTransition(c.name)
	case cmdOverlays:
		d.overlays = c.overlays
		d.log.Add(d.frame, "--", "overlay", "set",
			fmt.Sprintf("connections=%t zones=%t analysis=%t", c.overlays.Connections, c.overlays.Zones, c.overlays.Analysis), 0)
	}
}

func (d *Designer) acceptsInput() bool {
	return d.opts.Interactive && d.trans == nil
}

// load replaces the player set outright; used at init only.
func (d *Designer) load(name string) {
	players, resolved := Load(name, d.bounds.Width, d.bounds.Height, d.bounds.Radius)
	if resolved != name {
		d.log.Add(d.frame, "--", "formation", "fallback", fmt.Sprintf("%q -> %s", name, resolved), 0)
	}
	d.players = players
	d.formation = resolved
	d.log.Add(d.frame, "--", "formation", "load", resolved, float64(len(players)))
}

func (d *Designer) startTransition(name string) {
	f, ok := Resolve(name)
	if !ok {
		d.log.Add(d.frame, "--", "formation", "fallback", fmt.Sprintf("%q -> %s", name, f.Name), 0)
	}
	target := d.formation
	if d.trans != nil {
		target = d.trans.Name
	}
	if f.Name == target {
		return
	}

	next, _ := Load(f.Name, d.bounds.Width, d.bounds.Height, d.bounds.Radius)
	d.trans = newTransition(d.players, next, f.Name, TransitionDuration)
	d.log.Add(d.frame, "--", "transition", "start", fmt.Sprintf("%s -> %s", d.formation, f.Name), 0)
}

func (d *Designer) finishTransition() {
	d.players = d.trans.Next()
	d.formation = d.trans.Name
	d.trans = nil
	d.log.Add(d.frame, "--", "transition", "complete", d.formation, float64(len(d.players)))
}

func (d *Designer) publish() {
	sc := Scene{
		Frame:     d.frame,
		Width:     d.bounds.Width,
		Height:    d.bounds.Height,
		Radius:    d.bounds.Radius,
		Formation: d.formation,
		Players:   snapshotPlayers(d.players),
		Selected:  d.selected,
		Overlays:  d.overlays,
	}
	if d.trans != nil {
		sc.Blend = d.trans.Progress()
	}
	sc.Analysis = ScoreFormation(d.players, d.bounds.Width, d.bounds.Height)
	d.surface.publish(sc)
}
