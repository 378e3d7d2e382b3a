package fractal

import "image/color"

// emitter turns resolved points into draw calls in a single color.
// Counting lets callers report the primitive total without a second pass.
type emitter struct {
	s     Surface
	col   color.RGBA
	count int
}

func (e *emitter) triangle(a, b, c Point) {
	e.s.FillTriangle(a, b, c, e.col)
	e.count++
}

func (e *emitter) quad(a, b, c, d Point) {
	e.s.FillQuad(a, b, c, d, e.col)
	e.count++
}

func (e *emitter) line(a, b Point) {
	e.s.StrokeLine(a, b, e.col)
	e.count++
}
