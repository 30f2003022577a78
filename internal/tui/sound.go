package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	clickLen   = 40 * time.Millisecond
	pickupHz   = 880
	dropHz     = 440
)

// clicker plays short tones on pickup and drop. A nil or uninitialised
// clicker is silent.
type clicker struct {
	ready bool
}

// newClicker opens the speaker. Failure is returned but the clicker stays
// usable as a silent one.
func newClicker() (*clicker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &clicker{}, err
	}
	return &clicker{ready: true}, nil
}

func (c *clicker) click(freq float64) {
	if c == nil || !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickLen), sine))
}

func (c *clicker) close() {
	if c == nil || !c.ready {
		return
	}
	speaker.Close()
	c.ready = false
}
