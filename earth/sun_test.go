package earth

import (
	"math"
	"testing"
	"time"
)

func TestSunPositionAtEquatorNoon(t *testing.T) {
	// Near the March equinox at (0,0) around local noon the sun stands
	// almost at the zenith.
	at := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	pos := SunPositionAt(at, 0, 0)

	if pos.Altitude < 1.0 {
		t.Fatalf("equinox noon altitude = %v rad, expected near zenith", pos.Altitude)
	}
	if pos.Azimuth < 0 || pos.Azimuth >= 2*math.Pi {
		t.Fatalf("azimuth %v out of [0, 2π)", pos.Azimuth)
	}
}

func TestSunPositionAtEquatorMidnight(t *testing.T) {
	at := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	pos := SunPositionAt(at, 0, 0)

	if pos.Altitude > -1.0 {
		t.Fatalf("equinox midnight altitude = %v rad, expected deep below horizon", pos.Altitude)
	}
}

func TestSunPositionAltitudeRange(t *testing.T) {
	times := []time.Time{
		time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 21, 21, 30, 0, 0, time.UTC),
	}
	coords := [][2]float64{{0, 0}, {47, 19}, {-33.9, 151.2}, {78, 15}}

	for _, at := range times {
		for _, c := range coords {
			pos := SunPositionAt(at, c[0], c[1])
			if pos.Altitude < -math.Pi/2 || pos.Altitude > math.Pi/2 {
				t.Errorf("%v @ %v: altitude %v out of range", at, c, pos.Altitude)
			}
			if pos.Azimuth < 0 || pos.Azimuth >= 2*math.Pi {
				t.Errorf("%v @ %v: azimuth %v out of range", at, c, pos.Azimuth)
			}
		}
	}
}

func TestSunPositionDeterministic(t *testing.T) {
	at := time.Date(2026, 8, 25, 15, 4, 5, 0, time.UTC)
	a := SunPositionAt(at, 47, 19)
	b := SunPositionAt(at, 47, 19)
	if a != b {
		t.Fatalf("repeat computation differs: %+v vs %+v", a, b)
	}
}

func TestSunHigherAtNoonThanMorning(t *testing.T) {
	noon := SunPositionAt(time.Date(2026, 6, 1, 11, 0, 0, 0, time.UTC), 47, 19)
	morning := SunPositionAt(time.Date(2026, 6, 1, 5, 0, 0, 0, time.UTC), 47, 19)
	if noon.Altitude <= morning.Altitude {
		t.Fatalf("noon %v should top morning %v", noon.Altitude, morning.Altitude)
	}
}
