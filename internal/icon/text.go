package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextOrigin returns the baseline origin that centers the ink bounds of text
// on a size×size canvas, raised by lift pixels.
func TextOrigin(face font.Face, text string, size, lift int) fixed.Point26_6 {
	bounds, _ := font.BoundString(face, text)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	th := (bounds.Max.Y - bounds.Min.Y).Ceil()

	c := size / 2
	x := c - tw/2 - bounds.Min.X.Floor()
	y := c - th/2 - bounds.Min.Y.Floor() - lift
	return fixed.P(x, y)
}

// DrawText draws text centered on dst (see TextOrigin).
func DrawText(dst *image.RGBA, face font.Face, text string, fg color.Color, lift int) {
	size := dst.Bounds().Dx()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  TextOrigin(face, text, size, lift),
	}
	d.DrawString(text)
}

// DrawDots writes three filled dots of radius r in a row centered
// horizontally, offset pixels below the vertical center and spacing pixels
// apart. The dot color replaces the canvas pixels rather than blending
// over them, so a translucent color leaves translucent holes.
func DrawDots(dst *image.RGBA, c color.Color, r, offset, spacing int) {
	b := dst.Bounds()
	size := b.Dx()
	cx, cy := size/2, size/2
	dotY := cy + offset

	dc := gg.NewContext(size, b.Dy())
	dc.SetRGB(1, 1, 1)
	for i := 0; i < 3; i++ {
		dx := cx + (i-1)*spacing
		// Pixel-inclusive box [dx-r, dx+r] spans 2r+1 pixels.
		dc.DrawCircle(float64(dx)+0.5, float64(dotY)+0.5, float64(r)+0.5)
	}
	dc.Fill()

	xdraw.DrawMask(dst, b, image.NewUniform(c), image.Point{}, dc.AsMask(), image.Point{}, xdraw.Src)
}
