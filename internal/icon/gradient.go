package icon

import (
	"image"
	"image/color"
)

// Gradient returns a size×size opaque image blending top into bottom row by
// row. Row y uses t = y/size, so the last row stops just short of bottom.
func Gradient(size int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		c := lerp(top, bottom, float64(y)/float64(size))
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for x := 0; x < len(row); x += 4 {
			row[x+0] = c.R
			row[x+1] = c.G
			row[x+2] = c.B
			row[x+3] = 0xFF
		}
	}
	return img
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(float64(p)*(1-t) + float64(q)*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xFF}
}
