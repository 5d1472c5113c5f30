package render

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mattyatea/horizon-sky/atmosphere"
	"github.com/mattyatea/horizon-sky/colors"
	"github.com/mattyatea/horizon-sky/vectors"
)

// GradientStop is one color sample of the vertical gradient. Percent runs
// from ~0 at the field-of-view edge to 100 at the zenith.
type GradientStop struct {
	Percent float64
	Color   colors.RGB8
}

// GradientResult is one fully assembled sky gradient. Stops are sorted by
// ascending percent; TopColor and BottomColor are the stops at the highest
// and lowest percent.
type GradientResult struct {
	Stops       []GradientStop
	Gradient    string
	TopColor    colors.RGB8
	BottomColor colors.RGB8
}

// Render produces the sky gradient for one (already corrected) sun altitude.
// It is a pure function: identical inputs yield identical results, and
// concurrent calls share no state.
func Render(altitude float64, opts Options) GradientResult {
	opts = opts.withDefaults()

	integ := atmosphere.Integrator{
		ScatteringSteps:   opts.ScatteringSteps,
		OpticalDepthSteps: opts.OpticalDepthSteps,
	}
	sunDir := atmosphere.SunDirection(altitude)

	n := opts.ViewSamples
	fov := opts.FOVDeg * math.Pi / 180.0

	stops := make([]GradientStop, 0, n)
	for i := 0; i < n; i++ {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		// Zenith angle of this sample, 0 = straight up.
		zenith := fov * frac
		viewDir := vectors.Vec3{X: math.Sin(zenith), Y: math.Cos(zenith)}

		radiance := integ.InScatter(viewDir, sunDir)
		stops = append(stops, GradientStop{
			Percent: 100.0 * (1.0 - frac),
			Color:   ToneMap(colors.FromVec(radiance), altitude, opts.Tone),
		})
	}

	sort.Slice(stops, func(i, j int) bool { return stops[i].Percent < stops[j].Percent })

	return GradientResult{
		Stops:       stops,
		Gradient:    cssGradient(stops),
		TopColor:    stops[len(stops)-1].Color,
		BottomColor: stops[0].Color,
	}
}

// cssGradient renders the sorted stops as a CSS linear-gradient value.
func cssGradient(stops []GradientStop) string {
	var b strings.Builder
	b.WriteString("linear-gradient(to bottom")
	for _, s := range stops {
		fmt.Fprintf(&b, ", %s %.2f%%", s.Color.Hex(), s.Percent)
	}
	b.WriteString(")")
	return b.String()
}

// RenderSeries renders a gradient per altitude, in parallel. Renders are
// independent, so the only coordination needed is the bounded worker group.
func RenderSeries(ctx context.Context, altitudes []float64, opts Options) ([]GradientResult, error) {
	results := make([]GradientResult, len(altitudes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, alt := range altitudes {
		i, alt := i, alt
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Render(alt, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
