package icon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resize returns src scaled to px×px with Catmull-Rom resampling. A source
// that already has the target size is copied unchanged.
func Resize(src image.Image, px int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, px, px))
	b := src.Bounds()
	if b.Dx() == px && b.Dy() == px {
		xdraw.Draw(dst, dst.Rect, src, b.Min, xdraw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, b, xdraw.Src, nil)
	return dst
}
