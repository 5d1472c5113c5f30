package render

import (
	"math"

	"github.com/mattyatea/horizon-sky/colors"
)

// Smoothstep performs a Hermite interpolation between 0 and 1 across
// [edge0, edge1]. Returns 0 if x < edge0, 1 if x > edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	// Avoid division by zero
	if edge0 == edge1 {
		if x < edge0 {
			return 0.0
		}
		return 1.0
	}

	t := (x - edge0) / (edge1 - edge0)
	if t < 0.0 {
		t = 0.0
	} else if t > 1.0 {
		t = 1.0
	}
	return t * t * (3.0 - 2.0*t)
}

// Exposure maps the sun height sin(altitude) to an exposure multiplier:
// a fixed night value below -0.15, blending up to the sunset peak at the
// horizon, back down to the day value at 0.4 and flat above.
func Exposure(sunHeight float64, tone ToneOptions) float64 {
	switch {
	case sunHeight < -0.15:
		return tone.NightExposure
	case sunHeight < 0:
		t := Smoothstep(-0.15, 0, sunHeight)
		return tone.NightExposure + (tone.SunsetExposure-tone.NightExposure)*t
	case sunHeight < 0.4:
		t := Smoothstep(0, 0.4, sunHeight)
		return tone.SunsetExposure + (tone.DayExposure-tone.SunsetExposure)*t
	default:
		return tone.DayExposure
	}
}

// HorizonGlow warms the color when the sun sits near the horizon. The glow
// term fades to zero once |sin(altitude)| reaches 1/3.
func HorizonGlow(c colors.Color, sunHeight, strength float64) colors.Color {
	glow := 1.0 - 3.0*math.Abs(sunHeight)
	if glow <= 0 {
		return c
	}
	glow *= strength
	return colors.Color{
		R: c.R * (1.0 + 0.6*glow),
		G: c.G * (1.0 + 0.18*glow),
		B: c.B * (1.0 - 0.12*glow),
	}
}

// SunsetHue biases dim colors toward purple-red. The weight falls off with
// luminance so that a bright daytime sky is left alone.
func SunsetHue(c colors.Color, strength float64) colors.Color {
	w := 1.0 / (1.0 + 2.0*c.Luminance())
	return colors.Color{
		R: c.R * (1.0 + 0.5*strength*w),
		G: c.G * (1.0 - 0.5*strength*w),
		B: c.B * (1.0 + 1.0*strength*w),
	}.ClampLow(0)
}

// ACES applies the filmic tone curve per channel, clamped into [0,1].
func ACES(c colors.Color) colors.Color {
	return colors.Color{R: aces(c.R), G: aces(c.G), B: aces(c.B)}
}

func aces(c float64) float64 {
	v := (c * (2.51*c + 0.03)) / (c*(2.43*c+0.59) + 0.14)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToneMap converts raw in-scattered radiance to a displayable 8-bit color.
// The stage order is part of the contract: exposure, horizon glow, sunset hue,
// ACES, gamma, quantize.
func ToneMap(radiance colors.Color, altitude float64, tone ToneOptions) colors.RGB8 {
	sunHeight := math.Sin(altitude)

	c := radiance.Scale(Exposure(sunHeight, tone))
	c = HorizonGlow(c, sunHeight, tone.GlowStrength)
	c = SunsetHue(c, tone.HueStrength)
	c = ACES(c)
	c = c.Pow(1.0 / tone.Gamma)
	return c.Quantize()
}
