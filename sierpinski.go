package fractal

// sierpinski fills the three corner triangles of every subdivision and never
// the central one, so depth d emits 3^d triangles.
func sierpinski(e *emitter, p1, p2, p3 Point, depth int) {
	if depth == 0 {
		e.triangle(p1, p2, p3)
		return
	}
	m12 := Mid(p1, p2)
	m23 := Mid(p2, p3)
	m31 := Mid(p3, p1)

	sierpinski(e, p1, m12, m31, depth-1)
	sierpinski(e, m12, p2, m23, depth-1)
	sierpinski(e, m31, m23, p3, depth-1)
}
