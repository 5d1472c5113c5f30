// Package atmosphere implements a single-scattering model of an Earth-like
// atmosphere: Rayleigh and Mie scattering plus ozone absorption over a
// spherical planet. Radiance is computed per RGB channel with a fixed-step
// ray march; multiple scattering is not simulated (the altitude corrector in
// package render compensates for it empirically).
package atmosphere

import (
	"math"

	"github.com/mattyatea/horizon-sky/vectors"
)

// Planet geometry, in meters.
const (
	GroundRadius     = 6_360_000.0
	AtmosphereRadius = 6_460_000.0
)

// Scale heights of the exponential density profiles, in meters.
const (
	RayleighScaleHeight = 8_000.0
	MieScaleHeight      = 1_200.0
)

// Ozone concentration follows a triangular profile: peak density at
// OzonePeakHeight, falling linearly to zero OzoneHalfWidth above and below.
const (
	OzonePeakHeight = 25_000.0
	OzoneHalfWidth  = 15_000.0
)

// Mie asymmetry factor; strongly forward-scattering aerosols.
const mieG = 0.8

// SunIntensity scales the accumulated in-scattered radiance.
const SunIntensity = 1.0

// Scattering and absorption coefficients at sea level, per meter.
var (
	// RayleighScattering is wavelength-dependent: blue scatters ~6x more
	// strongly than red, which is what makes the zenith blue.
	RayleighScattering = vectors.Vec3{X: 5.802e-6, Y: 13.558e-6, Z: 33.1e-6}

	// Aerosol scattering is wavelength-independent at this scale.
	MieScattering = 3.996e-6
	MieAbsorption = 4.4e-6

	OzoneAbsorption = vectors.Vec3{X: 0.650e-6, Y: 1.881e-6, Z: 0.085e-6}
)

// RayleighPhase evaluates the Rayleigh phase function 3(1+cos²θ)/(16π)
// for the cosine of the angle between the view ray and the sun.
func RayleighPhase(cosTheta float64) float64 {
	return 3.0 * (1.0 + cosTheta*cosTheta) / (16.0 * math.Pi)
}

// MiePhase evaluates the Henyey-Greenstein-style aerosol phase function
// with asymmetry g=0.8.
func MiePhase(cosTheta float64) float64 {
	g2 := mieG * mieG
	num := (1.0 - g2) * (1.0 + cosTheta*cosTheta)
	den := (2.0 + g2) * math.Pow(1.0+g2-2.0*mieG*cosTheta, 1.5)
	return 3.0 / (8.0 * math.Pi) * num / den
}

// OzoneDensity returns the relative ozone concentration at height h above
// the ground, in [0,1].
func OzoneDensity(h float64) float64 {
	d := 1.0 - math.Abs(h-OzonePeakHeight)/OzoneHalfWidth
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// SunDirection converts the sun's altitude above the horizon to a unit
// direction in the model's vertical plane. Azimuth does not participate:
// the gradient is rotationally symmetric around local up.
func SunDirection(altitude float64) vectors.Vec3 {
	return vectors.Vec3{X: math.Cos(altitude), Y: math.Sin(altitude)}.Normalize()
}
