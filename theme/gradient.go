package theme

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientStop is one color stop; Position is in [0, 1]
type GradientStop struct {
	Color    RGB
	Position float64
}

// LinearGradient is a vertical background gradient
type LinearGradient struct {
	Stops []GradientStop
}

// At samples the gradient at t in [0, 1] with perceptual (Luv) blending
// between adjacent stops
func (g *LinearGradient) At(t float64) RGB {
	if len(g.Stops) == 0 {
		return RGB{}
	}
	if t <= g.Stops[0].Position || len(g.Stops) == 1 {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		hi := g.Stops[i]
		if t > hi.Position {
			continue
		}
		lo := g.Stops[i-1]
		span := hi.Position - lo.Position
		frac := 0.0
		if span > 0 {
			frac = (t - lo.Position) / span
		}
		blended := toColorful(lo.Color).BlendLuv(toColorful(hi.Color), frac).Clamped()
		r, gg, b := blended.RGB255()
		return RGB{R: r, G: gg, B: b}
	}
	return last.Color
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
