package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	fractal "github.com/marben/dist_fractal"
)

const lineHeight = 15

// InfoLines formats the panel record as plain text lines.
func InfoLines(info fractal.Info) []string {
	m := info.Metrics
	return []string{
		fmt.Sprintf("%s  (depth %d/%d)", info.Title, info.Depth, info.MaxDepth),
		"Perimeter: " + m.Perimeter.Formula,
		"Area:      " + m.Area.Formula,
		"Dimension: " + m.Dimension.Formula,
		fmt.Sprintf("Primitives: %d", m.Primitives),
	}
}

// Annotate writes the info record in the top-left corner of dst.
func Annotate(dst draw.Image, info fractal.Info, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	b := dst.Bounds()
	for i, line := range InfoLines(info) {
		d.Dot = fixed.P(b.Min.X+8, b.Min.Y+lineHeight*(i+1))
		d.DrawString(line)
	}
}
