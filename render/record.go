// Package render provides the drawing surfaces fractals are generated onto.
package render

import (
	"encoding/json"
	"fmt"
	"image/color"

	fractal "github.com/marben/dist_fractal"
)

type Op string

const (
	OpClear    Op = "clear"
	OpTriangle Op = "triangle"
	OpQuad     Op = "quad"
	OpLine     Op = "line"
)

// Command is one recorded surface call.
type Command struct {
	Op     Op
	Points []fractal.Point
	Color  color.RGBA
}

// compact wire form: {"op":"line","p":[x0,y0,x1,y1],"c":"#ff0054ff"}
type jsonCommand struct {
	Op Op        `json:"op"`
	P  []float64 `json:"p,omitempty"`
	C  string    `json:"c"`
}

func (c Command) MarshalJSON() ([]byte, error) {
	jc := jsonCommand{Op: c.Op, C: hexColor(c.Color)}
	if len(c.Points) > 0 {
		jc.P = make([]float64, 0, 2*len(c.Points))
		for _, p := range c.Points {
			jc.P = append(jc.P, p.X, p.Y)
		}
	}
	return json.Marshal(jc)
}

func (c *Command) UnmarshalJSON(b []byte) error {
	var jc jsonCommand
	if err := json.Unmarshal(b, &jc); err != nil {
		return err
	}
	if len(jc.P)%2 != 0 {
		return fmt.Errorf("command %q: odd coordinate count %d", jc.Op, len(jc.P))
	}
	col, err := parseHexColor(jc.C)
	if err != nil {
		return fmt.Errorf("command %q: %w", jc.Op, err)
	}
	c.Op = jc.Op
	c.Color = col
	c.Points = nil
	for i := 0; i < len(jc.P); i += 2 {
		c.Points = append(c.Points, fractal.Point{X: jc.P[i], Y: jc.P[i+1]})
	}
	return nil
}

// Draw replays c onto s. Commands with the wrong number of points are
// ignored.
func (c Command) Draw(s fractal.Surface) {
	p := c.Points
	switch {
	case c.Op == OpClear:
		s.Clear(c.Color)
	case c.Op == OpTriangle && len(p) == 3:
		s.FillTriangle(p[0], p[1], p[2], c.Color)
	case c.Op == OpQuad && len(p) == 4:
		s.FillQuad(p[0], p[1], p[2], p[3], c.Color)
	case c.Op == OpLine && len(p) == 2:
		s.StrokeLine(p[0], p[1], c.Color)
	}
}

// Replay draws every command onto s in order.
func Replay(s fractal.Surface, cmds []Command) {
	for _, c := range cmds {
		c.Draw(s)
	}
}

// Recorder is a surface that remembers the calls made on it.
type Recorder struct {
	cmds []Command
}

var _ fractal.Surface = (*Recorder)(nil)

func (r *Recorder) Clear(c color.RGBA) {
	r.cmds = append(r.cmds, Command{Op: OpClear, Color: c})
}

func (r *Recorder) FillTriangle(a, b, c fractal.Point, col color.RGBA) {
	r.cmds = append(r.cmds, Command{Op: OpTriangle, Points: []fractal.Point{a, b, c}, Color: col})
}

func (r *Recorder) FillQuad(a, b, c, d fractal.Point, col color.RGBA) {
	r.cmds = append(r.cmds, Command{Op: OpQuad, Points: []fractal.Point{a, b, c, d}, Color: col})
}

func (r *Recorder) StrokeLine(a, b fractal.Point, col color.RGBA) {
	r.cmds = append(r.cmds, Command{Op: OpLine, Points: []fractal.Point{a, b}, Color: col})
}

// Commands returns the recorded commands. The slice is shared with the
// recorder until the next Reset or Take.
func (r *Recorder) Commands() []Command { return r.cmds }

func (r *Recorder) Len() int { return len(r.cmds) }

func (r *Recorder) Reset() { r.cmds = nil }

// Take returns the recorded commands and starts a new recording.
func (r *Recorder) Take() []Command {
	cmds := r.cmds
	r.cmds = nil
	return cmds
}

// Count returns how many recorded commands have the given op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func parseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	switch len(s) {
	case 7:
		c.A = 0xff
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("color %q: bad length", s)
	}
	return c, nil
}
