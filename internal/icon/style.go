// Package icon renders the TicTracker application icon: a vertical gradient
// clipped to a rounded square, centered text, three tally dots and a soft
// inner glow along the edge.
package icon

import "image/color"

// Size is the edge length of the master image every output is scaled from.
const Size = 1024

// Style holds the colors and proportions of the icon. Ratios are relative
// to the canvas edge length.
type Style struct {
	Text       string
	Top        color.RGBA // gradient at y = 0
	Bottom     color.RGBA // gradient at y = size
	Foreground color.Color
	Dot        color.Color

	CornerRatio     float64
	TextRatio       float64
	LiftRatio       float64 // text is raised by this much above center
	DotRadiusRatio  float64
	DotOffsetRatio  float64 // dot row distance below center
	DotSpacingRatio float64

	GlowSteps int
	GlowAlpha uint8 // alpha of the outermost glow ring
}

// DefaultStyle returns the teal-to-blue "+1" icon.
func DefaultStyle() Style {
	return Style{
		Text:       "+1",
		Top:        color.RGBA{46, 204, 193, 255},
		Bottom:     color.RGBA{59, 130, 246, 255},
		Foreground: color.RGBA{255, 255, 255, 255},
		Dot:        color.NRGBA{255, 255, 255, 140},

		CornerRatio:     0.22,
		TextRatio:       0.42,
		LiftRatio:       0.02,
		DotRadiusRatio:  0.022,
		DotOffsetRatio:  0.26,
		DotSpacingRatio: 0.07,

		GlowSteps: 8,
		GlowAlpha: 25,
	}
}

// scaled returns int(size*ratio), truncating like the pixel metrics of the
// original artwork.
func scaled(size int, ratio float64) int {
	return int(float64(size) * ratio)
}

// Corner returns the corner radius in pixels for a canvas of the given size.
func (s Style) Corner(size int) int {
	return scaled(size, s.CornerRatio)
}

// TextSize returns the font size in pixels for a canvas of the given size.
func (s Style) TextSize(size int) float64 {
	return float64(scaled(size, s.TextRatio))
}
