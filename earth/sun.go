// Package earth supplies the astronomical inputs of the renderer: the sun's
// horizontal position for a time and place, and the day's sunrise/sunset.
package earth

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// SunPosition is the sun's location in the local horizontal frame.
type SunPosition struct {
	// Altitude above the horizon, radians in [-π/2, π/2].
	Altitude float64
	// Azimuth east of north, radians in [0, 2π). The renderer ignores it;
	// the gradient depends on altitude alone.
	Azimuth float64
}

// SunPositionAt computes the apparent sun position for a UTC instant and a
// WGS84 coordinate (latitude in [-90,90], longitude in [-180,180], degrees).
func SunPositionAt(t time.Time, latDeg, lonDeg float64) SunPosition {
	jd := julian.TimeToJD(t.UTC())

	// Step 1: Apparent RA/Dec of the Sun.
	ra, dec := solar.ApparentEquatorial(jd)

	// Step 2: Local hour angle via apparent sidereal time at Greenwich
	// and the east-positive longitude.
	gst := sidereal.Apparent0UT(jd)
	hourAngle := gst.Angle().Rad() + unit.AngleFromDeg(lonDeg).Rad() - ra.Rad()

	// Step 3: Equatorial → horizontal.
	lat := unit.AngleFromDeg(latDeg)
	sinAlt := lat.Sin()*dec.Sin() + lat.Cos()*dec.Cos()*math.Cos(hourAngle)
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}

	// Meeus measures azimuth westward from south; shift to from-north.
	az := math.Atan2(math.Sin(hourAngle),
		math.Cos(hourAngle)*lat.Sin()-dec.Tan()*lat.Cos())
	az = math.Mod(az+math.Pi, 2*math.Pi)
	if az < 0 {
		az += 2 * math.Pi
	}

	return SunPosition{Altitude: math.Asin(sinAlt), Azimuth: az}
}
