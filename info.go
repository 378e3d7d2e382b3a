package fractal

// Application is one practical use of a fractal.
type Application struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

// Info is the record shown by the didactic panel after a redraw.
type Info struct {
	Kind         Kind          `json:"kind"`
	Title        string        `json:"title"`
	Rule         string        `json:"rule"`
	Depth        int           `json:"depth"`
	MaxDepth     int           `json:"maxDepth"`
	Metrics      Metrics       `json:"metrics"`
	Applications []Application `json:"applications"`
}

type description struct {
	title string
	rule  string
	apps  []Application
}

var descriptions = [...]description{
	Sierpinski: {
		title: "Sierpiński Triangle",
		rule:  "Start with an equilateral triangle. At each level, split every triangle into 4 smaller ones and remove the central one.",
		apps: []Application{
			{"Antennas (telecommunications)", "The triangle shape is used to build compact antennas that work efficiently on several frequencies (Wi-Fi, 4G, 5G)."},
			{"Biology", "Models the structure of some sea sponges."},
		},
	},
	Koch: {
		title: "Koch Snowflake",
		rule:  "Start with an equilateral triangle. At each level, split every segment in three, remove the middle third and add a new outward-facing equilateral triangle.",
		apps: []Application{
			{"Biology (lungs)", "The snowflake shape models how the bronchi branch inside the lungs, maximizing the oxygen absorption area in a small volume."},
			{"Biology (blood vessels)", "The same principle applies to the network of capillaries and blood vessels."},
		},
	},
	Pythagoras: {
		title: "Pythagoras Tree",
		rule:  "Start with a square. On top of it add a right isosceles triangle and, on each of its legs, new squares.",
		apps: []Application{
			{"Computer graphics", "A classic method to generate natural-looking trees and foliage in games and films."},
			{"Architecture", "Self-similar branching inspires the design of structures and supports."},
		},
	},
	Dragon: {
		title: "Dragon Curve",
		rule:  "Replace every segment with two segments at a 90° angle, alternating the fold (right/left).",
		apps: []Application{
			{"Biology (protein folding)", "The way the curve folds onto itself is a useful model for studying how protein molecules fold."},
			{"Art and design", "Famous for its beauty and its unexpected complexity arising from such a simple rule."},
		},
	},
}

// Describe builds the panel record for kind at depth.
func Describe(kind Kind, depth int) Info {
	if !kind.Valid() {
		return Info{Kind: kind}
	}
	depth = kind.ClampDepth(depth)
	d := descriptions[kind]
	return Info{
		Kind:         kind,
		Title:        d.title,
		Rule:         d.rule,
		Depth:        depth,
		MaxDepth:     kind.MaxDepth(),
		Metrics:      ComputeMetrics(kind, depth),
		Applications: d.apps,
	}
}

// Applications returns the static applications text of kind.
func Applications(kind Kind) []Application {
	if !kind.Valid() {
		return nil
	}
	return descriptions[kind].apps
}
