package fractal

import "math"

// koch replaces the segment with four segments of a third of its length.
// The apex is always the 1/3->2/3 vector turned by +60°, whichever edge of
// the outer triangle is being refined.
func koch(e *emitter, p1, p2 Point, depth int) {
	if depth == 0 {
		e.line(p1, p2)
		return
	}
	pa := Lerp(p1, p2, 1.0/3)
	pc := Lerp(p1, p2, 2.0/3)
	apex := pa.Add(pc.Sub(pa).Rotate(math.Pi / 3))

	koch(e, p1, pa, depth-1)
	koch(e, pa, apex, depth-1)
	koch(e, apex, pc, depth-1)
	koch(e, pc, p2, depth-1)
}
