package tactics

import (
	"sync"
	"time"
)

// DefaultFrameStep is one frame at 60 Hz.
const DefaultFrameStep = time.Second / 60

// HeadlessHost is a Host without a display: frames advance only when the
// caller steps them, with a fixed or explicit delta. Tests and the batch
// report drive designers through it.
type HeadlessHost struct {
	mu       sync.Mutex
	surfaces []*Surface
	frames   []frameEntry
	nextID   int
	step     time.Duration
	elapsed  time.Duration
	stepped  int
}

type frameEntry struct {
	id int
	fn FrameFunc
}

// HostOption configures a HeadlessHost.
type HostOption func(*HeadlessHost)

// WithFrameStep sets the delta passed to every frame by Step and RunFor.
func WithFrameStep(d time.Duration) HostOption {
	return func(h *HeadlessHost) {
		h.step = d
	}
}

// NewHeadlessHost creates a host stepping at DefaultFrameStep unless overridden.
func NewHeadlessHost(opts ...HostOption) *HeadlessHost {
	h := &HeadlessHost{step: DefaultFrameStep}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Attach implements Host.
func (h *HeadlessHost) Attach(s *Surface) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.surfaces = append(h.surfaces, s)
}

// Detach implements Host.
func (h *HeadlessHost) Detach(s *Surface) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, x := range h.surfaces {
		if x == s {
			h.surfaces = append(h.surfaces[:i], h.surfaces[i+1:]...)
			return
		}
	}
}

// RequestFrame implements Host.
func (h *HeadlessHost) RequestFrame(fn FrameFunc) CancelFunc {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.frames = append(h.frames, frameEntry{id: id, fn: fn})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, e := range h.frames {
			if e.id == id {
				h.frames = append(h.frames[:i], h.frames[i+1:]...)
				return
			}
		}
	}
}

// Step runs one frame with the configured delta.
func (h *HeadlessHost) Step() {
	h.StepBy(h.step)
}

// StepBy runs one frame with an explicit delta.
func (h *HeadlessHost) StepBy(dt time.Duration) {
	h.mu.Lock()
	fns := make([]FrameFunc, len(h.frames))
	for i, e := range h.frames {
		fns[i] = e.fn
	}
	h.elapsed += dt
	h.stepped++
	h.mu.Unlock()

	for _, fn := range fns {
		fn(dt)
	}
}

// RunFor steps frames until at least d of simulated time has passed and
// returns the number of frames run.
func (h *HeadlessHost) RunFor(d time.Duration) int {
	if h.step <= 0 {
		return 0
	}
	n := 0
	for t := time.Duration(0); t < d; t += h.step {
		h.Step()
		n++
	}
	return n
}

// RunUntil steps frames until done returns true or maxFrames have run. It
// reports whether done was satisfied and how many frames ran.
func (h *HeadlessHost) RunUntil(maxFrames int, done func() bool) (bool, int) {
	for n := 0; n < maxFrames; n++ {
		if done() {
			return true, n
		}
		h.Step()
	}
	return done(), maxFrames
}

// Surfaces lists the attached surfaces in attach order.
func (h *HeadlessHost) Surfaces() []*Surface {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*Surface(nil), h.surfaces...)
}

// Callbacks is the number of live frame registrations.
func (h *HeadlessHost) Callbacks() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.frames)
}

// Elapsed is the total simulated time stepped so far.
func (h *HeadlessHost) Elapsed() time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.elapsed
}

// Paint renders every attached surface onto c, in attach order.
func (h *HeadlessHost) Paint(c Canvas) {
	for _, s := range h.Surfaces() {
		s.Paint(c)
	}
}
