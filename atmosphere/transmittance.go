package atmosphere

import (
	"math"

	"github.com/mattyatea/horizon-sky/vectors"
)

// Integrator carries the fixed step counts of the numeric integrals. The two
// counts are independent dials: a full gradient costs
// O(ViewSamples · ScatteringSteps · OpticalDepthSteps) density evaluations,
// so halving either step count halves the dominant cost.
type Integrator struct {
	// ScatteringSteps is the number of ray-march steps along a view ray.
	ScatteringSteps int
	// OpticalDepthSteps is the number of sub-steps of each optical-depth
	// integral toward the top of the atmosphere.
	OpticalDepthSteps int
}

// DefaultSteps is the step count used for both integrals unless overridden.
const DefaultSteps = 32

// NewIntegrator returns an integrator with the default step counts.
func NewIntegrator() Integrator {
	return Integrator{ScatteringSteps: DefaultSteps, OpticalDepthSteps: DefaultSteps}
}

func (in Integrator) depthSteps() int {
	if in.OpticalDepthSteps > 0 {
		return in.OpticalDepthSteps
	}
	return DefaultSteps
}

func (in Integrator) marchSteps() int {
	if in.ScatteringSteps > 0 {
		return in.ScatteringSteps
	}
	return DefaultSteps
}

// Transmittance integrates the optical depth from a point at the given height
// above the ground, along a ray tilted by angle from local up, out to the top
// of the atmosphere, and returns the per-channel transmittance exp(-τ).
// A ray that never reaches the atmosphere boundary passes through no medium
// and transmits fully.
func (in Integrator) Transmittance(height, angle float64) vectors.Vec3 {
	origin := vectors.Vec3{Y: GroundRadius + height}
	dir := vectors.Vec3{X: math.Sin(angle), Y: math.Cos(angle)}

	dist, ok := IntersectSphere(origin, dir, AtmosphereRadius)
	if !ok || dist <= 0 {
		// Open sky: the ray crosses no medium.
		return vectors.Splat(1.0)
	}

	steps := in.depthSteps()
	stepLen := dist / float64(steps)

	var odRayleigh, odMie, odOzone float64
	for i := 0; i < steps; i++ {
		t := (float64(i) + 0.5) * stepLen
		p := origin.Add(dir.Scale(t))
		h := p.Norm() - GroundRadius

		odRayleigh += math.Exp(-h/RayleighScaleHeight) * stepLen
		odMie += math.Exp(-h/MieScaleHeight) * stepLen
		odOzone += OzoneDensity(h) * stepLen
	}

	extinction := RayleighScattering.Scale(odRayleigh).
		Add(vectors.Splat(MieAbsorption * odMie)).
		Add(OzoneAbsorption.Scale(odOzone))

	return extinction.Scale(-1.0).Exp()
}
