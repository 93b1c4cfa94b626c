package renderer

import "image/color"

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// Lerp interpolates each RGB channel from a to b, truncating toward zero.
// The result keeps a's alpha.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: a.A,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return clampChannel(float64(a) + (float64(b)-float64(a))*t)
}

// LerpStops interpolates across evenly spaced colour stops for t in [0,1].
// With three stops, t in [0,0.5) runs stops[0]->stops[1] and [0.5,1] runs stops[1]->stops[2].
func LerpStops(stops []color.RGBA, t float64) color.RGBA {
	switch len(stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return stops[0]
	}

	segments := len(stops) - 1
	scaled := t * float64(segments)
	i := int(scaled)
	if i < 0 {
		i = 0
	}
	if i >= segments {
		i = segments - 1
	}

	return Lerp(stops[i], stops[i+1], scaled-float64(i))
}

// Blend mixes fg over bg with the given weight: fg*alpha + bg*(1-alpha) per channel.
// The result is opaque.
func Blend(fg, bg color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: clampChannel(float64(fg.R)*alpha + float64(bg.R)*(1-alpha)),
		G: clampChannel(float64(fg.G)*alpha + float64(bg.G)*(1-alpha)),
		B: clampChannel(float64(fg.B)*alpha + float64(bg.B)*(1-alpha)),
		A: 255,
	}
}

// Darken subtracts delta from every channel, stopping at zero
func Darken(c color.RGBA, delta uint8) color.RGBA {
	sub := func(v uint8) uint8 {
		if v < delta {
			return 0
		}
		return v - delta
	}
	return color.RGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}

// WithAlpha returns c as a non-premultiplied colour at the given alpha
func WithAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
