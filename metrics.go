package fractal

import (
	"fmt"
	"math"
)

// Quantity is one measured property of a fractal at a given depth.
type Quantity struct {
	// Formula is the closed form or partial sum, evaluated at the depth.
	Formula string `json:"formula"`
	// Value is meaningful only when HasValue is set. Some quantities of the
	// Pythagoras tree have no simple closed form.
	Value    float64 `json:"value"`
	HasValue bool    `json:"hasValue"`
	// Limit explains the behavior as depth grows without bound.
	Limit string `json:"limit"`
}

// Metrics holds perimeter, area and dimension of a fractal at a depth.
type Metrics struct {
	Kind       Kind     `json:"kind"`
	Depth      int      `json:"depth"`
	Perimeter  Quantity `json:"perimeter"`
	Area       Quantity `json:"area"`
	Dimension  Quantity `json:"dimension"`
	Primitives int      `json:"primitives"`
}

// KochAreaLimit is the limit of the Koch snowflake area relative to the
// initial triangle.
const KochAreaLimit = 8.0 / 5

// ComputeMetrics evaluates the formulas of kind at depth. Depth is clamped to
// the kind's bound. Nothing is cached; every call is O(depth).
func ComputeMetrics(kind Kind, depth int) Metrics {
	depth = kind.ClampDepth(depth)
	m := Metrics{Kind: kind, Depth: depth, Primitives: PrimitiveCount(kind, depth)}

	switch kind {
	case Sierpinski:
		p := 3 * math.Pow(1.5, float64(depth))
		a := math.Pow(0.75, float64(depth))
		d := math.Log(3) / math.Log(2)
		m.Perimeter = Quantity{
			Formula:  fmt.Sprintf("P(N) = 3 × 1.5^N = 3 × 1.5^%d = %.2f", depth, p),
			Value:    p,
			HasValue: true,
			Limit:    "Geometric progression with ratio 1.5 (> 1): the perimeter tends to infinity.",
		}
		m.Area = Quantity{
			Formula:  fmt.Sprintf("A(N) = 0.75^N = 0.75^%d = %.4f", depth, a),
			Value:    a,
			HasValue: true,
			Limit:    "Geometric progression with ratio 0.75 (< 1): the filled area tends to zero.",
		}
		m.Dimension = Quantity{
			Formula:  fmt.Sprintf("D = log(copies) / log(scale) = log(3) / log(2) ≈ %.3f", d),
			Value:    d,
			HasValue: true,
			Limit:    "The dimension is constant and measures the complexity of the fractal. It lies between 1 (line) and 2 (plane).",
		}

	case Koch:
		p := 3 * math.Pow(4.0/3, float64(depth))
		a := KochArea(depth)
		d := math.Log(4) / math.Log(3)
		m.Perimeter = Quantity{
			Formula:  fmt.Sprintf("P(N) = 3 × (4/3)^N = 3 × (4/3)^%d = %.2f", depth, p),
			Value:    p,
			HasValue: true,
			Limit:    "Geometric progression with ratio 4/3 (> 1): the perimeter tends to infinity.",
		}
		m.Area = Quantity{
			Formula:  fmt.Sprintf("A(N) ≈ %.4f (relative to A0 = 1)", a),
			Value:    a,
			HasValue: true,
			Limit:    fmt.Sprintf("Compound geometric series: the total area tends to a finite limit (%.4f of the initial area).", KochAreaLimit),
		}
		m.Dimension = Quantity{
			Formula:  fmt.Sprintf("D = log(copies) / log(scale) = log(4) / log(3) ≈ %.3f", d),
			Value:    d,
			HasValue: true,
			Limit:    "The dimension is constant and measures the complexity of the fractal.",
		}

	case Pythagoras:
		m.Perimeter = Quantity{
			Formula: "The perimeter is not a simple geometric series.",
			Limit:   "The limit is hard to determine.",
		}
		m.Area = Quantity{
			Formula: "The sum of the areas is finite.",
			Limit:   "The tree is bounded: it never grows out of a fixed box.",
		}
		m.Dimension = Quantity{
			Formula:  "D = 2.000",
			Value:    2,
			HasValue: true,
			Limit:    "The branches eventually touch and overlap, filling the 2D plane.",
		}

	case Dragon:
		l := math.Pow(math.Sqrt2, float64(depth))
		m.Perimeter = Quantity{
			Formula:  fmt.Sprintf("L(N) = (√2)^N = (√2)^%d = %.2f", depth, l),
			Value:    l,
			HasValue: true,
			Limit:    "The length grows by √2 per level and tends to infinity.",
		}
		m.Area = Quantity{
			Formula: "Space-filling curve.",
			Limit:   "It fills a finite area (dense fractal).",
		}
		m.Dimension = Quantity{
			Formula:  "D = 2.000",
			Value:    2,
			HasValue: true,
			Limit:    "The fractal dimension is 2: the 1D curve eventually fills a complete 2D area.",
		}
	}
	return m
}

// KochArea is the partial sum of the snowflake area after depth steps,
// relative to the initial triangle.
func KochArea(depth int) float64 {
	area, added := 1.0, 1.0/3
	for range depth {
		area += added
		added *= 4.0 / 9
	}
	return area
}
