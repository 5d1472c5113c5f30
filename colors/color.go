package colors

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/mattyatea/horizon-sky/vectors"
)

// Color is a linear RGB color with float64 components. Before tone mapping
// the channels hold raw radiance and may exceed 1.0; they are only clamped
// into [0,1] by the display pipeline.
type Color struct {
	R, G, B float64
}

func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func Black() Color {
	return Color{}
}

// FromVec reinterprets a radiance triple as a color.
func FromVec(v vectors.Vec3) Color {
	return Color{R: v.X, G: v.Y, B: v.Z}
}

// Add returns c + o (component-wise).
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul returns c * o (component-wise).
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale returns c * s (scalar).
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Pow raises each channel to the given exponent.
func (c Color) Pow(e float64) Color {
	return Color{math.Pow(c.R, e), math.Pow(c.G, e), math.Pow(c.B, e)}
}

// Luminance returns the Rec.709 perceptual luminance.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Clamp01 clamps each channel into [0,1].
func (c Color) Clamp01() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// ClampLow clamps each channel to be >= min.
func (c Color) ClampLow(min float64) Color {
	return Color{math.Max(c.R, min), math.Max(c.G, min), math.Max(c.B, min)}
}

// Mix returns lerp(c, o, t) = c*(1-t) + o*t.
func (c Color) Mix(o Color, t float64) Color {
	return Color{
		R: c.R*(1-t) + o.R*t,
		G: c.G*(1-t) + o.G*t,
		B: c.B*(1-t) + o.B*t,
	}
}

// Quantize rounds the clamped channels to 8-bit values.
func (c Color) Quantize() RGB8 {
	return RGB8{to8bit(c.R), to8bit(c.G), to8bit(c.B)}
}

// RGB8 is a display-ready 8-bit color.
type RGB8 struct {
	R, G, B uint8
}

// Hex returns the CSS "#rrggbb" form.
func (c RGB8) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Color converts back to float channels in [0,1].
func (c RGB8) Color() Color {
	return Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// NRGBA converts to the stdlib image color type (fully opaque).
func (c RGB8) NRGBA() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, 0xFF}
}

// --- helpers ---

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// to8bit rounds to the nearest 8-bit value after clamping.
func to8bit(x float64) uint8 {
	return uint8(math.Round(255.0 * clamp01(x)))
}
