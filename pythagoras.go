package fractal

// pythagoras draws the square standing on base edge p1->p2 and, while depth
// remains, grows two smaller squares on the legs of the right isosceles
// triangle that sits on top of it.
func pythagoras(e *emitter, p1, p2 Point, depth int) {
	up := p2.Sub(p1).Perp()
	p4 := p1.Add(up) // top-left
	p3 := p2.Add(up) // top-right

	e.quad(p1, p2, p3, p4)
	if depth == 0 {
		return
	}

	top := p3.Sub(p4)
	apex := Mid(p4, p3).Add(top.Perp().Scale(0.5))

	pythagoras(e, p4, apex, depth-1)
	pythagoras(e, apex, p3, depth-1)
}
