package tactics

import (
	"fmt"
	"image/color"
	"strings"
)

// Align controls where Text anchors horizontally.
type Align int

const (
	AlignLeft   Align = iota // x is the left edge
	AlignCenter              // x is the horizontal centre
)

// Canvas is the immediate-mode drawing surface Render targets. Coordinates
// are canvas pixels; Text anchors at the top of the glyph box.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.RGBA)
	StrokeRect(x, y, w, h, width float64, c color.RGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	StrokeCircle(cx, cy, r, width float64, c color.RGBA)
	// StrokeArc draws sweep radians clockwise from start (0 = +x axis).
	StrokeArc(cx, cy, r, start, sweep, width float64, c color.RGBA)
	Text(s string, x, y float64, align Align, c color.RGBA)
}

// DrawCall is one recorded Canvas operation.
type DrawCall struct {
	Op    string
	Args  []float64
	Color color.RGBA
	Text  string
}

func (dc DrawCall) String() string {
	args := make([]string, len(dc.Args))
	for i, a := range dc.Args {
		args[i] = fmt.Sprintf("%.2f", a)
	}
	s := fmt.Sprintf("%-12s [%s] rgba(%d,%d,%d,%d)", dc.Op, strings.Join(args, " "),
		dc.Color.R, dc.Color.G, dc.Color.B, dc.Color.A)
	if dc.Text != "" {
		s += fmt.Sprintf(" %q", dc.Text)
	}
	return s
}

// Recorder is a Canvas that remembers every call instead of drawing.
type Recorder struct {
	Calls []DrawCall
}

func (r *Recorder) add(op string, c color.RGBA, text string, args ...float64) {
	r.Calls = append(r.Calls, DrawCall{Op: op, Args: args, Color: c, Text: text})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.add("FillRect", c, "", x, y, w, h)
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	r.add("StrokeRect", c, "", x, y, w, h, width)
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA) {
	r.add("StrokeLine", c, "", x0, y0, x1, y1, width)
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.RGBA) {
	r.add("FillCircle", c, "", cx, cy, radius)
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, c color.RGBA) {
	r.add("StrokeCircle", c, "", cx, cy, radius, width)
}

func (r *Recorder) StrokeArc(cx, cy, radius, start, sweep, width float64, c color.RGBA) {
	r.add("StrokeArc", c, "", cx, cy, radius, start, sweep, width)
}

func (r *Recorder) Text(s string, x, y float64, align Align, c color.RGBA) {
	r.add("Text", c, s, x, y, float64(align))
}

// Count returns how many calls used op.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "Text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Dump formats the recorded calls one per line.
func (r *Recorder) Dump() string {
	var b strings.Builder
	for _, c := range r.Calls {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
