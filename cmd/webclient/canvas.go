//go:build js && wasm

package main

import (
	"fmt"
	"image/color"
	"syscall/js"

	fractal "github.com/marben/dist_fractal"
)

// canvasSurface draws on a 2d canvas context.
type canvasSurface struct {
	canvas js.Value
	ctx    js.Value
}

var _ fractal.Surface = (*canvasSurface)(nil)

func newCanvasSurface(id string) *canvasSurface {
	canvas := js.Global().Get("document").Call("getElementById", id)
	return &canvasSurface{
		canvas: canvas,
		ctx:    canvas.Call("getContext", "2d"),
	}
}

func (c *canvasSurface) size() (w, h int) {
	return c.canvas.Get("width").Int(), c.canvas.Get("height").Int()
}

// resize sets the canvas backing store, which also clears it.
func (c *canvasSurface) resize(w, h int) {
	if cw, ch := c.size(); cw == w && ch == h {
		return
	}
	c.canvas.Set("width", w)
	c.canvas.Set("height", h)
}

func (c *canvasSurface) Clear(col color.RGBA) {
	w, h := c.size()
	c.ctx.Set("fillStyle", cssColor(col))
	c.ctx.Call("fillRect", 0, 0, w, h)
}

func (c *canvasSurface) FillTriangle(a, b, p fractal.Point, col color.RGBA) {
	c.fill(col, a, b, p)
}

func (c *canvasSurface) FillQuad(a, b, p, d fractal.Point, col color.RGBA) {
	c.fill(col, a, b, p, d)
}

func (c *canvasSurface) fill(col color.RGBA, pts ...fractal.Point) {
	c.ctx.Set("fillStyle", cssColor(col))
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.ctx.Call("lineTo", p.X, p.Y)
	}
	c.ctx.Call("closePath")
	c.ctx.Call("fill")
}

func (c *canvasSurface) StrokeLine(a, b fractal.Point, col color.RGBA) {
	c.ctx.Set("strokeStyle", cssColor(col))
	c.ctx.Set("lineWidth", 1)
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", a.X, a.Y)
	c.ctx.Call("lineTo", b.X, b.Y)
	c.ctx.Call("stroke")
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}
