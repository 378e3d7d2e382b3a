package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	fractal "github.com/marben/dist_fractal"
)

// Raster draws into an *image.RGBA with anti-aliased scanline fills and
// strokes from rasterx.
type Raster struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

var _ fractal.Surface = (*Raster)(nil)

// NewRaster returns a w×h raster surface with 1px strokes.
func NewRaster(w, h int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := newRaster(img)
	r.SetLineWidth(1)
	return r
}

func newRaster(img *image.RGBA) *Raster {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Raster{
		img:    img,
		filler: rasterx.NewFiller(w, h, scanner),
		dasher: rasterx.NewDasher(w, h, scanner),
	}
}

// SetLineWidth sets the stroke width in pixels.
func (r *Raster) SetLineWidth(w float64) {
	r.dasher.SetStroke(toFixed(w), toFixed(4), rasterx.ButtCap, rasterx.ButtCap,
		rasterx.FlatGap, rasterx.Miter, nil, 0)
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Bounds() image.Rectangle { return r.img.Bounds() }

func (r *Raster) Clear(c color.RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) FillTriangle(a, b, c fractal.Point, col color.RGBA) {
	r.fill(col, a, b, c)
}

func (r *Raster) FillQuad(a, b, c, d fractal.Point, col color.RGBA) {
	r.fill(col, a, b, c, d)
}

func (r *Raster) fill(col color.RGBA, pts ...fractal.Point) {
	r.filler.Clear()
	r.filler.SetColor(col)
	r.filler.Start(toPoint(pts[0]))
	for _, p := range pts[1:] {
		r.filler.Line(toPoint(p))
	}
	r.filler.Stop(true)
	r.filler.Draw()
}

func (r *Raster) StrokeLine(a, b fractal.Point, col color.RGBA) {
	r.dasher.Clear()
	r.dasher.SetColor(col)
	r.dasher.Start(toPoint(a))
	r.dasher.Line(toPoint(b))
	r.dasher.Stop(false)
	r.dasher.Draw()
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toPoint(p fractal.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}
