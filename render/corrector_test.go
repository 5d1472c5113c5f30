package render

import (
	"math"
	"testing"
	"time"
)

func deg(d float64) float64 { return d * degToRad }

func TestMultipleScatteringOffsetBranches(t *testing.T) {
	cases := []struct {
		altDeg, wantDeg, tol float64
	}{
		{60, 2, 1e-12},     // high sun
		{20, 2, 1e-12},     // boundary of the high-sun branch
		{-6, 8, 1e-9},      // end of the twilight blend
		{-12, 11, 1e-9},    // end of the deep-twilight blend
		{-17.2, 7.822, 1e-2}, // decay branch, interpolated down from 11
		{-30, 0, 1e-12},    // decay fully played out
		{-45, 0, 1e-12},    // deep night
		{-90, 0, 1e-12},
	}
	for _, c := range cases {
		got := MultipleScatteringOffset(deg(c.altDeg)) / degToRad
		if !nearly(got, c.wantDeg, c.tol) {
			t.Errorf("offset(%v°) = %v°, want %v°", c.altDeg, got, c.wantDeg)
		}
	}
}

func TestMultipleScatteringOffsetContinuity(t *testing.T) {
	const epsDeg = 1e-7
	for _, boundary := range []float64{20, -6, -12, -30} {
		lo := MultipleScatteringOffset(deg(boundary - epsDeg))
		hi := MultipleScatteringOffset(deg(boundary + epsDeg))
		if !nearly(lo, hi, 1e-6) {
			t.Errorf("offset discontinuous at %v°: %v vs %v", boundary, lo, hi)
		}
	}
}

func TestBortleFloor(t *testing.T) {
	if _, ok := BortleFloor(0); ok {
		t.Error("Bortle 0 should disable the floor")
	}
	if _, ok := BortleFloor(10); ok {
		t.Error("Bortle 10 is out of range")
	}

	floor9, ok := BortleFloor(9)
	if !ok || !nearly(floor9, deg(3), 1e-12) {
		t.Errorf("Bortle 9 floor = %v, want %v", floor9, deg(3))
	}
	floor1, ok := BortleFloor(1)
	if !ok || !nearly(floor1, deg(-3), 1e-12) {
		t.Errorf("Bortle 1 floor = %v, want %v", floor1, deg(-3))
	}

	// Monotone: worse skies give higher floors.
	prev := floor1
	for b := 2; b <= 9; b++ {
		f, _ := BortleFloor(b)
		if f <= prev {
			t.Errorf("Bortle %d floor %v not above %v", b, f, prev)
		}
		prev = f
	}
}

func TestCorrectorBortleFloorsDeepNight(t *testing.T) {
	// However negative the raw altitude, Bortle 9 clamps the corrected
	// value to exactly (6-3)° in radians.
	c := Corrector{Bortle: 9}
	now := time.Date(2026, 8, 25, 1, 0, 0, 0, time.UTC)
	want := deg(6.0 - 3.0)

	for _, raw := range []float64{-0.6, -1.0, -math.Pi / 2} {
		if got := c.Correct(now, raw); !nearly(got, want, 1e-12) {
			t.Errorf("Correct(%v) = %v, want %v", raw, got, want)
		}
	}
}

func TestCorrectorAddsScatteringOffset(t *testing.T) {
	c := Corrector{}
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	raw := 1.0
	want := raw + MultipleScatteringOffset(raw)
	if got := c.Correct(now, raw); !nearly(got, want, 1e-12) {
		t.Fatalf("Correct(%v) = %v, want %v", raw, got, want)
	}
}

func riseSetDay() (rise, set time.Time) {
	rise = time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC)
	set = time.Date(2026, 8, 25, 18, 0, 0, 0, time.UTC)
	return
}

func TestRiseSetOffsetMidpoint(t *testing.T) {
	rise, set := riseSetDay()

	// Morning side of the window: full sunrise offset.
	got := RiseSetOffset(time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC), rise, set, BlendMidpoint)
	if !nearly(got, deg(riseOffsetDeg), 1e-12) {
		t.Errorf("morning offset = %v, want %v", got, deg(riseOffsetDeg))
	}

	// Evening side: full sunset offset.
	got = RiseSetOffset(time.Date(2026, 8, 25, 16, 0, 0, 0, time.UTC), rise, set, BlendMidpoint)
	if !nearly(got, deg(setOffsetDeg), 1e-12) {
		t.Errorf("evening offset = %v, want %v", got, deg(setOffsetDeg))
	}

	// Exactly at the midpoint the blend sits halfway, which cancels here.
	got = RiseSetOffset(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC), rise, set, BlendMidpoint)
	if !nearly(got, 0, 1e-12) {
		t.Errorf("midpoint offset = %v, want 0", got)
	}
}

func TestRiseSetOffsetRamp(t *testing.T) {
	rise, set := riseSetDay()

	cases := []struct {
		at   time.Time
		want float64
	}{
		{rise, deg(riseOffsetDeg)},
		{rise.Add(30 * time.Minute), deg(riseOffsetDeg / 2)},
		{rise.Add(-30 * time.Minute), deg(riseOffsetDeg / 2)},
		{rise.Add(2 * time.Hour), 0}, // mid-morning: no correction
		{set.Add(-30 * time.Minute), deg(setOffsetDeg / 2)},
		{set, deg(setOffsetDeg)},
		{set.Add(3 * time.Hour), 0}, // night: no correction
	}
	for _, c := range cases {
		if got := RiseSetOffset(c.at, rise, set, BlendRiseSetRamp); !nearly(got, c.want, 1e-12) {
			t.Errorf("ramp offset at %v = %v, want %v", c.at.Format("15:04"), got, c.want)
		}
	}
}

func TestCorrectorStrategiesDiverge(t *testing.T) {
	// Mid-morning the two strategies must disagree: the midpoint blend is
	// still applying the sunrise offset while the ramp has gone quiet.
	rise, set := riseSetDay()
	at := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	mid := RiseSetOffset(at, rise, set, BlendMidpoint)
	ramp := RiseSetOffset(at, rise, set, BlendRiseSetRamp)
	if mid == ramp {
		t.Fatalf("strategies should diverge mid-morning, both %v", mid)
	}
}
