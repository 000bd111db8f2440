package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Glow strokes steps one-pixel rounded-rectangle outlines, each inset one
// pixel further than the last with a matching smaller radius. Ring i has
// alpha int(alpha*(1-i/steps)). Every ring is rendered on its own layer and
// composited over dst.
func Glow(dst *image.RGBA, corner, steps int, alpha uint8) {
	size := dst.Bounds().Dx()
	for i := 0; i < steps; i++ {
		a := uint8(float64(alpha) * (1 - float64(i)/float64(steps)))
		if a == 0 {
			continue
		}
		layer := gg.NewContext(size, size)
		layer.SetColor(color.NRGBA{255, 255, 255, a})
		layer.SetLineWidth(1)
		// Stroke centered on pixel centers so the ring covers exactly the
		// pixels of the box [i, size-1-i].
		inset := float64(i) + 0.5
		edge := float64(size - 1 - 2*i)
		layer.DrawRoundedRectangle(inset, inset, edge, edge, math.Max(1, float64(corner-i)))
		layer.Stroke()
		xdraw.Draw(dst, dst.Bounds(), layer.Image(), image.Point{}, xdraw.Over)
	}
}
