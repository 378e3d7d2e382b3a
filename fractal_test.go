package fractal

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

// tally counts primitives per operation and keeps the last shapes.
type tally struct {
	clears, triangles, quads, lines int
	shapes                          [][]Point
}

func (t *tally) Clear(color.RGBA) { t.clears++ }

func (t *tally) FillTriangle(a, b, c Point, _ color.RGBA) {
	t.triangles++
	t.shapes = append(t.shapes, []Point{a, b, c})
}

func (t *tally) FillQuad(a, b, c, d Point, _ color.RGBA) {
	t.quads++
	t.shapes = append(t.shapes, []Point{a, b, c, d})
}

func (t *tally) StrokeLine(a, b Point, _ color.RGBA) {
	t.lines++
	t.shapes = append(t.shapes, []Point{a, b})
}

func (t *tally) total() int { return t.triangles + t.quads + t.lines }

const eps = 1e-9

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k, err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v", k, got)
		}
	}
	if _, err := ParseKind("mandelbrot"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(mandelbrot) err = %v, want ErrUnknownKind", err)
	}
}

func TestClampDepth(t *testing.T) {
	tests := []struct {
		kind  Kind
		depth int
		want  int
	}{
		{Sierpinski, -1, 0},
		{Sierpinski, 8, 8},
		{Sierpinski, 9, 8},
		{Koch, 100, 6},
		{Pythagoras, 12, 12},
		{Pythagoras, 13, 12},
		{Dragon, 16, 15},
		{Dragon, 3, 3},
	}
	for _, tt := range tests {
		if got := tt.kind.ClampDepth(tt.depth); got != tt.want {
			t.Errorf("%v.ClampDepth(%d) = %d, want %d", tt.kind, tt.depth, got, tt.want)
		}
	}
}

func TestPrimitiveCounts(t *testing.T) {
	for _, k := range Kinds {
		for d := 0; d <= k.MaxDepth(); d++ {
			var s tally
			n := Draw(&s, k, d, 800, 600)
			want := PrimitiveCount(k, d)
			if n != want || s.total() != want {
				t.Errorf("%v depth %d: emitted %d (counted %d), want %d", k, d, s.total(), n, want)
			}
			if s.clears != 1 {
				t.Errorf("%v depth %d: %d clears, want 1", k, d, s.clears)
			}
		}
	}
}

func TestPrimitiveKinds(t *testing.T) {
	tests := []struct {
		kind  Kind
		depth int
		tri   int
		quad  int
		line  int
	}{
		{Sierpinski, 0, 1, 0, 0},
		{Sierpinski, 2, 9, 0, 0},
		{Koch, 0, 0, 0, 3},
		{Koch, 2, 0, 0, 48},
		{Pythagoras, 0, 0, 1, 0},
		{Pythagoras, 3, 0, 15, 0},
		{Dragon, 0, 0, 0, 1},
		{Dragon, 3, 0, 0, 8},
	}
	for _, tt := range tests {
		var s tally
		Draw(&s, tt.kind, tt.depth, 800, 600)
		if s.triangles != tt.tri || s.quads != tt.quad || s.lines != tt.line {
			t.Errorf("%v depth %d: got %d/%d/%d triangles/quads/lines, want %d/%d/%d",
				tt.kind, tt.depth, s.triangles, s.quads, s.lines, tt.tri, tt.quad, tt.line)
		}
	}
}

func TestDepthAboveBoundIsClamped(t *testing.T) {
	for _, k := range Kinds {
		var atBound, above tally
		Draw(&atBound, k, k.MaxDepth(), 800, 600)
		Draw(&above, k, k.MaxDepth()+3, 800, 600)
		if len(atBound.shapes) != len(above.shapes) {
			t.Fatalf("%v: %d shapes above bound, want %d", k, len(above.shapes), len(atBound.shapes))
		}
		for i := range atBound.shapes {
			for j := range atBound.shapes[i] {
				if atBound.shapes[i][j] != above.shapes[i][j] {
					t.Fatalf("%v: shape %d differs above bound", k, i)
				}
			}
		}
	}
}

func TestSierpinskiSkipsCenter(t *testing.T) {
	var s tally
	e := &emitter{s: &s}
	sierpinski(e, Pt(0, 0), Pt(-2, 4), Pt(2, 4), 1)

	want := [][]Point{
		{Pt(0, 0), Pt(-1, 2), Pt(1, 2)},
		{Pt(-1, 2), Pt(-2, 4), Pt(0, 4)},
		{Pt(1, 2), Pt(0, 4), Pt(2, 4)},
	}
	if len(s.shapes) != len(want) {
		t.Fatalf("got %d triangles, want %d", len(s.shapes), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if !near(s.shapes[i][j], want[i][j]) {
				t.Errorf("triangle %d vertex %d = %v, want %v", i, j, s.shapes[i][j], want[i][j])
			}
		}
	}
}

func TestKochApex(t *testing.T) {
	var s tally
	e := &emitter{s: &s}
	koch(e, Pt(0, 0), Pt(3, 0), 1)

	h := math.Sqrt(3) / 2
	want := [][]Point{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(1, 0), Pt(1.5, h)},
		{Pt(1.5, h), Pt(2, 0)},
		{Pt(2, 0), Pt(3, 0)},
	}
	for i := range want {
		for j := range want[i] {
			if !near(s.shapes[i][j], want[i][j]) {
				t.Errorf("segment %d point %d = %v, want %v", i, j, s.shapes[i][j], want[i][j])
			}
		}
	}
}

func TestKochSnowflakePointsOutward(t *testing.T) {
	f := InitialFrame(Koch, 800, 600)
	centroid := Point{
		(f.Points[0].X + f.Points[1].X + f.Points[2].X) / 3,
		(f.Points[0].Y + f.Points[1].Y + f.Points[2].Y) / 3,
	}

	var s tally
	Generate(&s, f, 1)
	// Each edge yields four segments; the apex ends the second one.
	for edge := 0; edge < 3; edge++ {
		apex := s.shapes[edge*4+1][1]
		a, b := f.Points[edge], f.Points[(edge+1)%3]
		if Dist(centroid, apex) <= Dist(centroid, Mid(a, b)) {
			t.Errorf("edge %d apex %v points inwards", edge, apex)
		}
	}
}

func TestPythagorasSquare(t *testing.T) {
	var s tally
	e := &emitter{s: &s}
	pythagoras(e, Pt(0, 0), Pt(2, 0), 1)

	if len(s.shapes) != 3 {
		t.Fatalf("got %d squares, want 3", len(s.shapes))
	}
	trunk := []Point{Pt(0, 0), Pt(2, 0), Pt(2, -2), Pt(0, -2)}
	for i, p := range trunk {
		if !near(s.shapes[0][i], p) {
			t.Errorf("trunk corner %d = %v, want %v", i, s.shapes[0][i], p)
		}
	}
	// Both branches start at the top corners and meet at the apex (1, -3).
	apex := Pt(1, -3)
	if !near(s.shapes[1][0], Pt(0, -2)) || !near(s.shapes[1][1], apex) {
		t.Errorf("left branch base = %v-%v", s.shapes[1][0], s.shapes[1][1])
	}
	if !near(s.shapes[2][0], apex) || !near(s.shapes[2][1], Pt(2, -2)) {
		t.Errorf("right branch base = %v-%v", s.shapes[2][0], s.shapes[2][1])
	}
	side := Dist(s.shapes[1][0], s.shapes[1][1])
	if math.Abs(side-math.Sqrt2) > eps {
		t.Errorf("branch side = %v, want √2", side)
	}
}

func TestDragonFoldFlagsAreFixed(t *testing.T) {
	for _, start := range []bool{true, false} {
		type call struct {
			depth int
			right bool
		}
		var calls []call
		var s tally
		dragon(&emitter{s: &s}, Pt(0, 0), Pt(1, 0), 3, start, func(d int, r bool) {
			calls = append(calls, call{d, r})
		})

		// Pre-order: the root, then per parent the left child (right fold)
		// followed by the right child (left fold).
		if len(calls) != 15 {
			t.Fatalf("start=%v: %d calls, want 15", start, len(calls))
		}
		if calls[0] != (call{3, start}) {
			t.Errorf("start=%v: root call = %+v", start, calls[0])
		}
		want := []call{
			{2, true}, {1, true}, {0, true}, {0, false}, {1, false}, {0, true}, {0, false},
			{2, false}, {1, true}, {0, true}, {0, false}, {1, false}, {0, true}, {0, false},
		}
		for i, w := range want {
			if calls[i+1] != w {
				t.Errorf("start=%v: call %d = %+v, want %+v", start, i+1, calls[i+1], w)
			}
		}
	}
}

func TestDragonFold(t *testing.T) {
	var s tally
	dragon(&emitter{s: &s}, Pt(0, 0), Pt(2, 0), 1, true, nil)
	if !near(s.shapes[0][1], Pt(1, -1)) {
		t.Errorf("right fold midpoint = %v, want (1,-1)", s.shapes[0][1])
	}

	s = tally{}
	dragon(&emitter{s: &s}, Pt(0, 0), Pt(2, 0), 1, false, nil)
	if !near(s.shapes[0][1], Pt(1, 1)) {
		t.Errorf("left fold midpoint = %v, want (1,1)", s.shapes[0][1])
	}
}

func TestInitialFrameScales(t *testing.T) {
	small := InitialFrame(Pythagoras, 400, 300)
	if d := Dist(small.Points[0], small.Points[1]); math.Abs(d-50) > eps {
		t.Errorf("trunk on 400x300 = %v, want 50", d)
	}
	big := InitialFrame(Koch, 800, 600)
	if d := Dist(big.Points[0], big.Points[1]); math.Abs(d-500) > eps {
		t.Errorf("koch side on 800x600 = %v, want 500", d)
	}
}

func TestGenerateRejectsShortFrames(t *testing.T) {
	for _, f := range []Frame{
		{Kind: Koch, Points: []Point{{0, 0}, {1, 0}}},
		{Kind: Sierpinski},
		{Kind: Pythagoras, Points: []Point{{0, 0}}},
		{Kind: Dragon, Points: []Point{{0, 0}, {1, 0}, {2, 0}}},
		{Kind: Kind(9), Points: []Point{{0, 0}, {1, 0}}},
	} {
		var s tally
		if n := Generate(&s, f, 2); n != 0 || s.total() != 0 {
			t.Errorf("Generate(%+v) drew %d primitives, want none", f, n)
		}
		if f.Valid() {
			t.Errorf("%+v reported valid", f)
		}
	}
	for _, k := range Kinds {
		if f := InitialFrame(k, 800, 600); !f.Valid() {
			t.Errorf("initial %v frame is invalid", k)
		}
	}
}
