package render

import (
	"math"
	"time"
)

const degToRad = math.Pi / 180.0

// BlendStrategy selects how the optional sunrise/sunset offset is blended
// over the day. The two behaviors are intentionally kept side by side; see
// DESIGN.md for why BlendMidpoint is the default.
type BlendStrategy int

const (
	// BlendMidpoint smoothsteps between a post-sunrise and a pre-sunset
	// offset across a 30-minute window centered on the midpoint of the
	// daylight span, so the offset is continuous over the whole day.
	BlendMidpoint BlendStrategy = iota
	// BlendRiseSetRamp applies a ±0.5° ramp only within 60 minutes of
	// sunrise or sunset and nothing at any other time.
	BlendRiseSetRamp
)

// Rise/set-specific altitude offsets, degrees.
const (
	riseOffsetDeg = 0.5
	setOffsetDeg  = -0.5
)

// Corrector adjusts a raw ephemeris altitude before rendering. The zero
// value applies only the multiple-scattering offset.
type Corrector struct {
	// Bortle enables the light-pollution floor when set to 1..9.
	Bortle int
	// Rise and Set enable the rise/set blend when both are non-zero.
	Rise, Set time.Time
	Strategy  BlendStrategy
}

// Correct returns the adjusted altitude (radians) for the given wall time.
// The multiple-scattering and rise/set offsets are additive; the Bortle floor
// is applied last so light pollution bounds the final value.
func (c Corrector) Correct(now time.Time, altitude float64) float64 {
	alt := altitude + MultipleScatteringOffset(altitude)
	if !c.Rise.IsZero() && !c.Set.IsZero() {
		alt += RiseSetOffset(now, c.Rise, c.Set, c.Strategy)
	}
	if floor, ok := BortleFloor(c.Bortle); ok && alt < floor {
		alt = floor
	}
	return alt
}

// MultipleScatteringOffset returns the additive altitude offset (radians)
// that stands in for the missing multiple-scattering term: the single-
// scattering model alone renders twilight far too dark, so the sun is lifted
// by up to 11° around and below the horizon. The offset decays back to zero
// by -30°, leaving deep night untouched.
func MultipleScatteringOffset(altitude float64) float64 {
	deg := altitude / degToRad

	var offset float64
	switch {
	case deg > 20:
		offset = 2
	case deg > -6:
		t := (20 - deg) / 26
		offset = 2 + 6*Smoothstep(0, 1, t)
	case deg > -12:
		t := (-6 - deg) / 6
		offset = 8 + 3*Smoothstep(0, 1, t)
	default:
		t := (deg + 30) / 18
		if t < 0 {
			t = 0
		}
		offset = 11 * t
	}
	return offset * degToRad
}

// bortleOffsetDeg maps Bortle class 1..9 to a sky-brightness offset in
// degrees of equivalent sun altitude.
var bortleOffsetDeg = [9]float64{0.0, 0.75, 1.5, 2.25, 3.0, 3.75, 4.5, 5.25, 6.0}

// BortleFloor returns the minimum altitude (radians) implied by the given
// Bortle class. Light pollution keeps the sky from ever getting darker than
// it is at this altitude. The 3° subtraction is the natural visibility floor
// of the single-scattering model. ok is false for values outside 1..9.
func BortleFloor(bortle int) (floor float64, ok bool) {
	if bortle < 1 || bortle > 9 {
		return 0, false
	}
	return (bortleOffsetDeg[bortle-1] - 3.0) * degToRad, true
}

// RiseSetOffset returns the additive altitude offset (radians) for the given
// wall time and the day's sunrise/sunset, per the selected strategy.
func RiseSetOffset(now, rise, set time.Time, strategy BlendStrategy) float64 {
	switch strategy {
	case BlendRiseSetRamp:
		const window = time.Hour
		if d := absDuration(now.Sub(rise)); d <= window {
			return riseOffsetDeg * (1 - d.Seconds()/window.Seconds()) * degToRad
		}
		if d := absDuration(now.Sub(set)); d <= window {
			return setOffsetDeg * (1 - d.Seconds()/window.Seconds()) * degToRad
		}
		return 0
	default: // BlendMidpoint
		const halfWindow = 15 * time.Minute
		mid := rise.Add(set.Sub(rise) / 2)
		t := Smoothstep(0, 1,
			float64(now.Sub(mid.Add(-halfWindow)))/float64(2*halfWindow))
		return (riseOffsetDeg + (setOffsetDeg-riseOffsetDeg)*t) * degToRad
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
