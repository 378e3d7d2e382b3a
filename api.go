package fractal

import (
	"image/color"
)

// Surface is the drawing target of the generators.
// Implementations must accept any shape; drawing cannot fail from the
// generator's point of view.
type Surface interface {
	Clear(c color.RGBA)
	FillTriangle(a, b, c Point, col color.RGBA)
	FillQuad(a, b, c, d Point, col color.RGBA)
	StrokeLine(a, b Point, col color.RGBA)
}

// Panel receives the didactic record after every redraw.
type Panel interface {
	ShowInfo(info Info)
}

// Fixed palette
var (
	Accent     = color.RGBA{R: 0xFF, G: 0x00, B: 0x54, A: 0xFF}
	Background = color.RGBA{A: 0xFF}
)
