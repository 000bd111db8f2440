package icon

import (
	"image"

	"golang.org/x/image/font"
)

// Render draws the complete icon on a size×size transparent canvas using
// face for the text. The face should be sized with st.TextSize(size).
func Render(size int, st Style, face font.Face) *image.RGBA {
	corner := st.Corner(size)

	bg := Gradient(size, st.Top, st.Bottom)
	canvas := Clip(bg, RoundedMask(size, float64(corner)))

	DrawText(canvas, face, st.Text, st.Foreground, scaled(size, st.LiftRatio))
	DrawDots(canvas, st.Dot,
		scaled(size, st.DotRadiusRatio),
		scaled(size, st.DotOffsetRatio),
		scaled(size, st.DotSpacingRatio))

	Glow(canvas, corner, st.GlowSteps, st.GlowAlpha)
	return canvas
}
