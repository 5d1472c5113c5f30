package vectors

import "math"

// Vec3 is a simple 3D vector with float64 components. It doubles as an RGB
// triple in the scattering code, where each component is one color channel.
type Vec3 struct {
	X, Y, Z float64
}

func Zero() Vec3 {
	return Vec3{X: 0.0, Y: 0.0, Z: 0.0}
}

// Splat returns a vector with all three components set to s.
func Splat(s float64) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product v * o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div returns the component-wise quotient v / o.
func (v Vec3) Div(o Vec3) Vec3 {
	return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Norm returns the Euclidean length ||v||.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector v / ||v||.
// If ||v|| == 0, it returns the zero vector (0,0,0).
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	inv := 1.0 / n
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Exp returns the component-wise exponential (e^X, e^Y, e^Z).
func (v Vec3) Exp() Vec3 {
	return Vec3{math.Exp(v.X), math.Exp(v.Y), math.Exp(v.Z)}
}

// Clamp limits each component into [min, max].
func (v Vec3) Clamp(min, max float64) Vec3 {
	return Vec3{clamp(v.X, min, max), clamp(v.Y, min, max), clamp(v.Z, min, max)}
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
