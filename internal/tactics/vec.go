package tactics

import "math"

// Vec2 is a point or displacement in canvas space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }
// Lerp interpolates from v to o; t == 1 returns o exactly.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	if t == 1 {
		return o
	}
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Bounds is the drawable area minus the marker radius on every edge.
type Bounds struct {
	Width, Height float64
	Radius        float64
}

// Clamp pulls v inside [Radius, dim-Radius] on both axes. A canvas smaller
// than two radii pins the point to the centre of that axis.
func (b Bounds) Clamp(v Vec2) Vec2 {
	return Vec2{clampAxis(v.X, b.Radius, b.Width), clampAxis(v.Y, b.Radius, b.Height)}
}

// Contains reports whether v lies inside the clamp region.
func (b Bounds) Contains(v Vec2) bool {
	return b.Clamp(v) == v
}

func clampAxis(x, r, dim float64) float64 {
	lo, hi := r, dim-r
	if lo > hi {
		return dim / 2
	}
	if x < lo || math.IsNaN(x) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
