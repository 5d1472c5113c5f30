// Package render turns a corrected sun altitude into a vertical sky gradient:
// it drives the atmosphere integrator over a fan of view directions, tone-maps
// each sample to an 8-bit color and assembles the ordered stop list.
package render

import "github.com/mattyatea/horizon-sky/atmosphere"

// Options is the configuration surface of one gradient render. The three
// sample counts are independent: a render performs
// ViewSamples · ScatteringSteps ray-march steps, each of which runs its own
// OpticalDepthSteps-step transmittance integral.
type Options struct {
	// ViewSamples is the number of gradient stops, spread over FOVDeg.
	ViewSamples int
	// ScatteringSteps is the ray-march step count per view direction.
	ScatteringSteps int
	// OpticalDepthSteps is the sub-step count of each transmittance integral.
	OpticalDepthSteps int
	// FOVDeg is the vertical field of view in degrees, measured down from
	// the zenith.
	FOVDeg float64
	// Tone holds the exposure and grading constants.
	Tone ToneOptions
}

// ToneOptions are the six tone-mapping constants. They are a fixed preset in
// normal operation and overridable for testing.
type ToneOptions struct {
	NightExposure  float64
	SunsetExposure float64
	DayExposure    float64
	GlowStrength   float64
	HueStrength    float64
	Gamma          float64
}

// DefaultTone returns the stock grading preset.
func DefaultTone() ToneOptions {
	return ToneOptions{
		NightExposure:  6.0,
		SunsetExposure: 35.0,
		DayExposure:    18.0,
		GlowStrength:   1.0,
		HueStrength:    0.5,
		Gamma:          2.2,
	}
}

// DefaultOptions returns the stock render configuration.
func DefaultOptions() Options {
	return Options{
		ViewSamples:       atmosphere.DefaultSteps,
		ScatteringSteps:   atmosphere.DefaultSteps,
		OpticalDepthSteps: atmosphere.DefaultSteps,
		FOVDeg:            75.0,
		Tone:              DefaultTone(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ViewSamples <= 0 {
		o.ViewSamples = def.ViewSamples
	}
	if o.ScatteringSteps <= 0 {
		o.ScatteringSteps = def.ScatteringSteps
	}
	if o.OpticalDepthSteps <= 0 {
		o.OpticalDepthSteps = def.OpticalDepthSteps
	}
	if o.FOVDeg <= 0 {
		o.FOVDeg = def.FOVDeg
	}
	if o.Tone == (ToneOptions{}) {
		o.Tone = def.Tone
	}
	return o
}
