package fractal

// foldTrace observes every dragon call. Only tests set it.
type foldTrace func(depth int, foldRight bool)

// dragon folds the segment into two legs of a right isosceles triangle.
// The first child always folds right and the second always folds left,
// independently of the parent's own fold.
func dragon(e *emitter, p1, p2 Point, depth int, foldRight bool, trace foldTrace) {
	if trace != nil {
		trace(depth, foldRight)
	}
	if depth == 0 {
		e.line(p1, p2)
		return
	}
	d := p2.Sub(p1)

	// d rotated by ∓45° and scaled by 1/√2
	var pm Point
	if foldRight {
		pm = p1.Add(Point{(d.X + d.Y) / 2, (d.Y - d.X) / 2})
	} else {
		pm = p1.Add(Point{(d.X - d.Y) / 2, (d.Y + d.X) / 2})
	}

	dragon(e, p1, pm, depth-1, true, trace)
	dragon(e, pm, p2, depth-1, false, trace)
}
