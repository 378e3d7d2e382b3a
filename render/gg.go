package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	fractal "github.com/marben/dist_fractal"
)

// GG draws through a gogpu/gg context. The context reports errors per
// operation; GG keeps the first one for Err.
type GG struct {
	dc  *gg.Context
	err error
}

var _ fractal.Surface = (*GG)(nil)

func NewGG(w, h int) *GG {
	dc := gg.NewContext(w, h)
	dc.SetLineWidth(1)
	return &GG{dc: dc}
}

// Context exposes the underlying context, e.g. to draw overlays.
func (g *GG) Context() *gg.Context { return g.dc }

func (g *GG) Err() error { return g.err }

func (g *GG) Image() image.Image { return g.dc.Image() }

func (g *GG) EncodePNG(w io.Writer) error {
	if g.err != nil {
		return g.err
	}
	return g.dc.EncodePNG(w)
}

func (g *GG) Close() error { return g.dc.Close() }

func (g *GG) Clear(c color.RGBA) {
	g.dc.ClearWithColor(gg.FromColor(c))
}

func (g *GG) FillTriangle(a, b, c fractal.Point, col color.RGBA) {
	g.path(a, b, c)
	g.dc.ClosePath()
	g.dc.SetColor(col)
	g.keep(g.dc.Fill())
}

func (g *GG) FillQuad(a, b, c, d fractal.Point, col color.RGBA) {
	g.path(a, b, c, d)
	g.dc.ClosePath()
	g.dc.SetColor(col)
	g.keep(g.dc.Fill())
}

func (g *GG) StrokeLine(a, b fractal.Point, col color.RGBA) {
	g.path(a, b)
	g.dc.SetColor(col)
	g.keep(g.dc.Stroke())
}

func (g *GG) path(pts ...fractal.Point) {
	g.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		g.dc.LineTo(p.X, p.Y)
	}
}

func (g *GG) keep(err error) {
	if err != nil && g.err == nil {
		g.err = err
	}
}
