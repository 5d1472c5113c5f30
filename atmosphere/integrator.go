package atmosphere

import (
	"math"

	"github.com/mattyatea/horizon-sky/vectors"
)

// InScatter ray-marches the single-scattering integral along one view
// direction from a camera standing on the ground, for the given unit sun
// direction, and returns the raw in-scattered radiance per channel.
//
// Camera-to-sample transmittance is not integrated separately: it is derived
// as the ratio of the transmittance-to-space at the sample and at the camera,
// which share the remainder of the path. The direction of the division flips
// for rays that start out pointing below local up.
func (in Integrator) InScatter(viewDir, sunDir vectors.Vec3) vectors.Vec3 {
	origin := vectors.Vec3{Y: GroundRadius}

	dist, ok := IntersectSphere(origin, viewDir, AtmosphereRadius)
	if !ok {
		// Never reaches the atmosphere: nothing scatters into this ray.
		return vectors.Zero()
	}

	steps := in.marchSteps()
	stepLen := dist / float64(steps)

	cosSunView := viewDir.Dot(sunDir)
	phaseR := RayleighPhase(cosSunView)
	phaseM := MiePhase(cosSunView)

	originUp := origin.Normalize()
	downward := viewDir.Dot(originUp) < 0
	tOrigin := in.Transmittance(0, math.Acos(clampUnit(viewDir.Dot(originUp))))

	total := vectors.Zero()
	for i := 0; i < steps; i++ {
		t := (float64(i) + 0.5) * stepLen
		p := origin.Add(viewDir.Scale(t))
		up := p.Normalize()
		h := p.Norm() - GroundRadius

		viewAngle := math.Acos(clampUnit(viewDir.Dot(up)))
		sunAngle := math.Acos(clampUnit(sunDir.Dot(up)))

		tSample := in.Transmittance(h, viewAngle)
		var tCamera vectors.Vec3
		if downward {
			tCamera = tSample.Div(tOrigin)
		} else {
			tCamera = tOrigin.Div(tSample)
		}

		tLight := in.Transmittance(h, sunAngle)

		densityR := math.Exp(-h / RayleighScaleHeight)
		densityM := math.Exp(-h / MieScaleHeight)

		scatter := RayleighScattering.Scale(densityR * phaseR).
			Add(vectors.Splat(MieScattering * densityM * phaseM))

		total = total.Add(scatter.Mul(tLight).Mul(tCamera).Scale(stepLen))
	}

	return total.Scale(SunIntensity)
}

// clampUnit keeps dot products of unit vectors inside acos's domain.
func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
