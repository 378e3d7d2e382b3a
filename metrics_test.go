package fractal

import (
	"math"
	"testing"
)

func TestSierpinskiMetrics(t *testing.T) {
	prev := ComputeMetrics(Sierpinski, 0)
	if prev.Perimeter.Value != 3 || prev.Area.Value != 1 {
		t.Fatalf("depth 0: perimeter %v area %v", prev.Perimeter.Value, prev.Area.Value)
	}
	for d := 1; d <= Sierpinski.MaxDepth(); d++ {
		m := ComputeMetrics(Sierpinski, d)
		if m.Perimeter.Value <= prev.Perimeter.Value {
			t.Errorf("depth %d: perimeter %v not above %v", d, m.Perimeter.Value, prev.Perimeter.Value)
		}
		if m.Area.Value >= prev.Area.Value {
			t.Errorf("depth %d: area %v not below %v", d, m.Area.Value, prev.Area.Value)
		}
		if r := m.Perimeter.Value / prev.Perimeter.Value; math.Abs(r-1.5) > 1e-12 {
			t.Errorf("depth %d: perimeter ratio %v, want 1.5", d, r)
		}
		if r := m.Area.Value / prev.Area.Value; math.Abs(r-0.75) > 1e-12 {
			t.Errorf("depth %d: area ratio %v, want 0.75", d, r)
		}
		prev = m
	}

	m := ComputeMetrics(Sierpinski, 5)
	if math.Abs(m.Area.Value-0.2373046875) > 1e-12 {
		t.Errorf("area at depth 5 = %v, want 0.2373", m.Area.Value)
	}
	if math.Abs(m.Dimension.Value-1.5849625) > 1e-6 {
		t.Errorf("dimension = %v", m.Dimension.Value)
	}
	if m.Area.Formula != "A(N) = 0.75^N = 0.75^5 = 0.2373" {
		t.Errorf("area formula = %q", m.Area.Formula)
	}
}

func TestKochMetrics(t *testing.T) {
	if a := KochArea(0); a != 1 {
		t.Errorf("area at depth 0 = %v, want 1", a)
	}
	if a := KochArea(1); math.Abs(a-4.0/3) > 1e-12 {
		t.Errorf("area at depth 1 = %v, want 4/3", a)
	}
	prev := KochArea(0)
	for d := 1; d < 60; d++ {
		a := KochArea(d)
		if a <= prev && d < 40 {
			t.Errorf("area at depth %d = %v not above %v", d, a, prev)
		}
		if a > KochAreaLimit+1e-12 {
			t.Errorf("area at depth %d = %v exceeds 8/5", d, a)
		}
		prev = a
	}
	if math.Abs(KochArea(60)-KochAreaLimit) > 1e-12 {
		t.Errorf("area does not converge to 8/5: %v", KochArea(60))
	}

	m := ComputeMetrics(Koch, 2)
	if math.Abs(m.Perimeter.Value-3*16.0/9) > 1e-12 {
		t.Errorf("perimeter at depth 2 = %v", m.Perimeter.Value)
	}
	if math.Abs(m.Dimension.Value-math.Log(4)/math.Log(3)) > 1e-12 {
		t.Errorf("dimension = %v", m.Dimension.Value)
	}
	if m.Primitives != 48 {
		t.Errorf("primitives = %d, want 48", m.Primitives)
	}
}

func TestSpaceFillingDimensions(t *testing.T) {
	for _, k := range []Kind{Pythagoras, Dragon} {
		for d := 0; d <= k.MaxDepth(); d++ {
			m := ComputeMetrics(k, d)
			if !m.Dimension.HasValue || m.Dimension.Value != 2 {
				t.Errorf("%v depth %d: dimension %+v, want 2", k, d, m.Dimension)
			}
		}
	}
	if m := ComputeMetrics(Pythagoras, 4); m.Perimeter.HasValue || m.Area.HasValue {
		t.Errorf("pythagoras perimeter/area should have no closed form: %+v", m)
	}
	if m := ComputeMetrics(Dragon, 4); math.Abs(m.Perimeter.Value-4) > 1e-12 {
		t.Errorf("dragon length at depth 4 = %v, want 4", m.Perimeter.Value)
	}
}

func TestMetricsClampDepth(t *testing.T) {
	m := ComputeMetrics(Koch, 99)
	if m.Depth != Koch.MaxDepth() {
		t.Errorf("depth = %d, want %d", m.Depth, Koch.MaxDepth())
	}
}

func TestDescribe(t *testing.T) {
	for _, k := range Kinds {
		info := Describe(k, 3)
		if info.Title == "" || info.Rule == "" {
			t.Errorf("%v: empty title or rule", k)
		}
		if len(info.Applications) == 0 {
			t.Errorf("%v: no applications", k)
		}
		if info.MaxDepth != k.MaxDepth() || info.Depth != 3 {
			t.Errorf("%v: depth %d/%d", k, info.Depth, info.MaxDepth)
		}
		if info.Metrics.Kind != k {
			t.Errorf("%v: metrics for %v", k, info.Metrics.Kind)
		}
	}
}
