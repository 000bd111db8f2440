package icon

import (
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// RoundedMask returns an alpha mask that is opaque inside a size×size
// rounded rectangle with the given corner radius and transparent outside.
// Edges are anti-aliased.
func RoundedMask(size int, radius float64) *image.Alpha {
	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), radius)
	dc.SetRGB(1, 1, 1)
	dc.Fill()
	return dc.AsMask()
}

// Clip draws src through mask onto a new transparent canvas of the same
// bounds.
func Clip(src image.Image, mask *image.Alpha) *image.RGBA {
	b := src.Bounds()
	canvas := image.NewRGBA(b)
	xdraw.DrawMask(canvas, b, src, b.Min, mask, mask.Bounds().Min, xdraw.Over)
	return canvas
}
