package fractal

import "math"

// Reference surface the initial frames were laid out on.
const (
	refWidth  = 800
	refHeight = 600
)

// Frame is the initial geometry a generator starts from: the triangle for
// Sierpinski and Koch, the trunk base for Pythagoras and the first segment
// for Dragon.
type Frame struct {
	Kind   Kind
	Points []Point
}

// framePoints is the number of points a frame of each kind carries.
var framePoints = [...]int{
	Sierpinski: 3,
	Koch:       3,
	Pythagoras: 2,
	Dragon:     2,
}

// Valid reports whether f has a known kind and the points its generator
// starts from.
func (f Frame) Valid() bool {
	return f.Kind.Valid() && len(f.Points) == framePoints[f.Kind]
}

// InitialFrame lays out the starting shape of kind on a w×h surface.
func InitialFrame(kind Kind, w, h float64) Frame {
	s := math.Min(w/refWidth, h/refHeight)

	switch kind {
	case Sierpinski:
		pad := 20 * s
		return Frame{Kind: kind, Points: []Point{
			{w / 2, pad},       // top
			{pad, h - pad},     // bottom left
			{w - pad, h - pad}, // bottom right
		}}

	case Koch:
		side := 500 * s
		height := side * math.Sqrt(3) / 2
		cx, cy := w/2, h/2
		return Frame{Kind: kind, Points: []Point{
			{cx - side/2, cy + height/3},
			{cx + side/2, cy + height/3},
			{cx, cy - 2*height/3},
		}}

	case Pythagoras:
		trunk := 100 * s
		base := h - 100*s
		return Frame{Kind: kind, Points: []Point{
			{w/2 - trunk/2, base},
			{w/2 + trunk/2, base},
		}}

	case Dragon:
		p1 := Point{w * 0.2, h * 0.6}
		return Frame{Kind: kind, Points: []Point{p1, p1.Add(Point{w * 0.6, 0})}}
	}
	return Frame{Kind: kind}
}

// Draw clears s to the background and renders kind at depth, clamped to the
// kind's bound. It returns the number of primitives emitted.
func Draw(s Surface, kind Kind, depth int, w, h float64) int {
	s.Clear(Background)
	return Generate(s, InitialFrame(kind, w, h), depth)
}

// Generate runs the generator of f.Kind from frame f without clearing s.
// An invalid frame draws nothing.
func Generate(s Surface, f Frame, depth int) int {
	if !f.Valid() {
		return 0
	}
	depth = f.Kind.ClampDepth(depth)
	e := &emitter{s: s, col: Accent}
	p := f.Points

	switch f.Kind {
	case Sierpinski:
		sierpinski(e, p[0], p[1], p[2], depth)
	case Koch:
		koch(e, p[0], p[1], depth)
		koch(e, p[1], p[2], depth)
		koch(e, p[2], p[0], depth)
	case Pythagoras:
		pythagoras(e, p[0], p[1], depth)
	case Dragon:
		dragon(e, p[0], p[1], depth, true, nil)
	}
	return e.count
}

// PrimitiveCount is the closed form of the number of primitives Generate
// emits for kind at depth.
func PrimitiveCount(kind Kind, depth int) int {
	depth = kind.ClampDepth(depth)
	switch kind {
	case Sierpinski:
		return ipow(3, depth)
	case Koch:
		return 3 * ipow(4, depth)
	case Pythagoras:
		return 1<<(depth+1) - 1
	case Dragon:
		return 1 << depth
	}
	return 0
}

func ipow(b, n int) int {
	r := 1
	for range n {
		r *= b
	}
	return r
}
