package render

import (
	"math"
	"testing"

	"github.com/mattyatea/horizon-sky/colors"
)

func nearly(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0, 1, -1); got != 0 {
		t.Errorf("below edge = %v", got)
	}
	if got := Smoothstep(0, 1, 2); got != 1 {
		t.Errorf("above edge = %v", got)
	}
	if got := Smoothstep(0, 1, 0.5); !nearly(got, 0.5, 1e-12) {
		t.Errorf("midpoint = %v", got)
	}
	// Degenerate range must not divide by zero.
	if got := Smoothstep(1, 1, 2); got != 1 {
		t.Errorf("degenerate = %v", got)
	}
}

func TestExposureBranches(t *testing.T) {
	tone := DefaultTone()

	cases := []struct {
		sunHeight, want float64
	}{
		{-0.5, 6.0},  // deep night
		{-0.15, 6.0}, // night/sunset boundary
		{0.0, 35.0},  // horizon: sunset peak exactly
		{0.4, 18.0},  // start of the day plateau
		{0.9, 18.0},  // day plateau
	}
	for _, c := range cases {
		if got := Exposure(c.sunHeight, tone); !nearly(got, c.want, 1e-12) {
			t.Errorf("Exposure(%v) = %v, want %v", c.sunHeight, got, c.want)
		}
	}
}

func TestExposureDayPlateau(t *testing.T) {
	// Any altitude in (π/6, π/2) has sin > 0.4 and must hit the fixed day
	// exposure exactly.
	tone := DefaultTone()
	for _, alt := range []float64{math.Pi/6 + 0.01, 0.7, 1.0, math.Pi/2 - 0.01} {
		if got := Exposure(math.Sin(alt), tone); got != tone.DayExposure {
			t.Errorf("Exposure(sin %v) = %v, want day %v", alt, got, tone.DayExposure)
		}
	}
}

func TestExposureMonotoneThroughSunrise(t *testing.T) {
	tone := DefaultTone()
	prev := Exposure(-0.15, tone)
	for s := -0.14; s < 0; s += 0.01 {
		cur := Exposure(s, tone)
		if cur < prev {
			t.Fatalf("exposure dipped at %v: %v < %v", s, cur, prev)
		}
		prev = cur
	}
}

func TestHorizonGlow(t *testing.T) {
	c := colors.New(1, 1, 1)

	// Sun well away from the horizon: untouched.
	if got := HorizonGlow(c, 0.9, 1.0); got != c {
		t.Errorf("high sun glow = %+v", got)
	}
	if got := HorizonGlow(c, -0.5, 1.0); got != c {
		t.Errorf("deep night glow = %+v", got)
	}

	// Sun at the horizon: full warm boost.
	got := HorizonGlow(c, 0, 1.0)
	if !nearly(got.R, 1.6, 1e-12) || !nearly(got.G, 1.18, 1e-12) || !nearly(got.B, 0.88, 1e-12) {
		t.Errorf("horizon glow = %+v", got)
	}
}

func TestSunsetHue(t *testing.T) {
	// Black stays black and nothing goes negative.
	if got := SunsetHue(colors.Black(), 0.5); got != colors.Black() {
		t.Errorf("black hue = %+v", got)
	}

	// A dim gray shifts toward blue/red at green's expense.
	got := SunsetHue(colors.New(0.1, 0.1, 0.1), 0.5)
	if !(got.B > got.R && got.R > got.G) {
		t.Errorf("expected B > R > G, got %+v", got)
	}

	// Bright colors are barely affected: weight decays with luminance.
	bright := SunsetHue(colors.New(4, 4, 4), 0.5)
	if bright.G < 3.5 {
		t.Errorf("bright green over-suppressed: %+v", bright)
	}
}

func TestACES(t *testing.T) {
	if got := ACES(colors.Black()); got != colors.Black() {
		t.Errorf("ACES(0) = %+v", got)
	}
	// Clamped into [0,1] even for huge radiance.
	big := ACES(colors.New(100, 100, 100))
	if big.R > 1 || big.R < 0.9 {
		t.Errorf("ACES(100) = %+v, want near 1", big)
	}
	// Monotone per channel.
	lo, hi := aces(0.2), aces(0.8)
	if lo >= hi {
		t.Errorf("aces not monotone: %v >= %v", lo, hi)
	}
}

func TestToneMapStageOrder(t *testing.T) {
	// The pipeline is exposure → glow → hue → ACES → gamma → quantize;
	// reordering any two stages changes the output. Pin the composition.
	tone := DefaultTone()
	radiance := colors.New(0.004, 0.011, 0.027)
	altitude := 0.05

	sunHeight := math.Sin(altitude)
	want := radiance.Scale(Exposure(sunHeight, tone))
	want = HorizonGlow(want, sunHeight, tone.GlowStrength)
	want = SunsetHue(want, tone.HueStrength)
	wantQ := ACES(want).Pow(1.0 / tone.Gamma).Quantize()

	if got := ToneMap(radiance, altitude, tone); got != wantQ {
		t.Fatalf("ToneMap = %+v, want staged %+v", got, wantQ)
	}
}

func TestToneMapDeterministic(t *testing.T) {
	tone := DefaultTone()
	c := colors.New(0.01, 0.02, 0.05)
	if ToneMap(c, 0.3, tone) != ToneMap(c, 0.3, tone) {
		t.Fatal("tone map not deterministic")
	}
}
