package render

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"testing"

	fractal "github.com/marben/dist_fractal"
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func close8(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func sameColor(a, b color.RGBA) bool {
	return close8(a.R, b.R) && close8(a.G, b.G) && close8(a.B, b.B) && close8(a.A, b.A)
}

// paint draws the same scene on any surface: a triangle on the left,
// a quad on the right and a horizontal line along the bottom.
func paint(s fractal.Surface) {
	s.Clear(fractal.Background)
	s.FillTriangle(fractal.Pt(10, 10), fractal.Pt(90, 10), fractal.Pt(50, 90), fractal.Accent)
	s.FillQuad(fractal.Pt(110, 10), fractal.Pt(190, 10), fractal.Pt(190, 90), fractal.Pt(110, 90), fractal.Accent)
	s.StrokeLine(fractal.Pt(10, 150), fractal.Pt(190, 150), fractal.Accent)
}

func checkScene(t *testing.T, img image.Image) {
	t.Helper()
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"triangle", 50, 30, fractal.Accent},
		{"quad", 150, 50, fractal.Accent},
		{"background", 5, 190, fractal.Background},
		{"outside triangle", 15, 80, fractal.Background},
	}
	for _, tt := range tests {
		if got := rgbaAt(img, tt.x, tt.y); !sameColor(got, tt.want) {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	// a 1px line may straddle two rows
	line := rgbaAt(img, 100, 149)
	below := rgbaAt(img, 100, 150)
	if line.R == 0 && below.R == 0 {
		t.Errorf("line not drawn: %v %v", line, below)
	}
}

func TestRaster(t *testing.T) {
	r := NewRaster(200, 200)
	paint(r)
	checkScene(t, r.Image())
}

func TestGG(t *testing.T) {
	g := NewGG(200, 200)
	defer g.Close()
	paint(g)
	if err := g.Err(); err != nil {
		t.Fatal(err)
	}
	checkScene(t, g.Image())

	var buf bytes.Buffer
	if err := g.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestRecorderReplay(t *testing.T) {
	var rec Recorder
	fractal.Draw(&rec, fractal.Pythagoras, 2, 200, 200)
	if rec.Count(OpClear) != 1 || rec.Count(OpQuad) != 7 {
		t.Fatalf("recorded %d clears, %d quads", rec.Count(OpClear), rec.Count(OpQuad))
	}

	direct := NewRaster(200, 200)
	fractal.Draw(direct, fractal.Pythagoras, 2, 200, 200)
	replayed := NewRaster(200, 200)
	Replay(replayed, rec.Commands())
	if !bytes.Equal(direct.Image().Pix, replayed.Image().Pix) {
		t.Error("replayed image differs from direct drawing")
	}

	cmds := rec.Take()
	if rec.Len() != 0 || len(cmds) != 8 {
		t.Errorf("Take left %d commands, returned %d", rec.Len(), len(cmds))
	}
}

func TestCommandJSON(t *testing.T) {
	var rec Recorder
	paint(&rec)
	b, err := json.Marshal(rec.Commands())
	if err != nil {
		t.Fatal(err)
	}
	var got []Command
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != rec.Len() {
		t.Fatalf("decoded %d commands, want %d", len(got), rec.Len())
	}
	for i, c := range rec.Commands() {
		g := got[i]
		if g.Op != c.Op || g.Color != c.Color || len(g.Points) != len(c.Points) {
			t.Fatalf("command %d = %+v, want %+v", i, g, c)
		}
		for j := range c.Points {
			if g.Points[j] != c.Points[j] {
				t.Errorf("command %d point %d = %v, want %v", i, j, g.Points[j], c.Points[j])
			}
		}
	}

	var bad Command
	if err := json.Unmarshal([]byte(`{"op":"line","p":[1,2,3],"c":"#ff0054"}`), &bad); err == nil {
		t.Error("odd coordinate count accepted")
	}
	if err := json.Unmarshal([]byte(`{"op":"line","p":[1,2,3,4],"c":"red"}`), &bad); err == nil {
		t.Error("bad color accepted")
	}
}

func TestAnnotate(t *testing.T) {
	r := NewRaster(400, 120)
	r.Clear(fractal.Background)
	Annotate(r.Image(), fractal.Describe(fractal.Koch, 2), color.White)

	lit := 0
	for _, v := range r.Image().Pix {
		if v == 0xff {
			lit++
		}
	}
	// alpha bytes are all 0xff; any extra means text was drawn
	if lit <= 400*120 {
		t.Error("no text drawn")
	}
}
