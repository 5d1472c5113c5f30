// Package watch re-renders the sky gradient on a timer. The renderer itself
// has no cancellation semantics; stopping is simply a matter of no longer
// invoking it, which is what the context controls here.
package watch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mattyatea/horizon-sky/earth"
	"github.com/mattyatea/horizon-sky/render"
)

// Watcher periodically recomputes the gradient for a fixed location.
type Watcher struct {
	// LatitudeDeg/LongitudeDeg locate the observer (WGS84 degrees).
	LatitudeDeg  float64
	LongitudeDeg float64
	// Interval between renders. Zero means one minute.
	Interval time.Duration
	// Options configure the renderer.
	Options render.Options
	// Corrector adjusts the raw altitude; rise/set fields are refreshed
	// from RiseSets each cycle when a provider is present.
	Corrector render.Corrector
	// RiseSets optionally supplies the day's sunrise/sunset for the blend.
	RiseSets earth.RiseSetProvider
	// OnGradient receives every completed render.
	OnGradient func(time.Time, render.GradientResult)
	// Log defaults to zap's no-op logger.
	Log *zap.Logger

	// now is swappable in tests.
	now func() time.Time
}

// Run renders once immediately and then on every tick until ctx is
// cancelled. It only ever returns ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	if w.Log == nil {
		w.Log = zap.NewNop()
	}
	if w.now == nil {
		w.now = time.Now
	}

	w.cycle()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.cycle()
		}
	}
}

func (w *Watcher) cycle() {
	now := w.now()

	corr := w.Corrector
	if w.RiseSets != nil {
		rs, err := w.RiseSets.RiseSet(w.LatitudeDeg, w.LongitudeDeg, now)
		if err != nil {
			// Render without the rise/set blend rather than skip the cycle.
			w.Log.Warn("rise/set lookup failed", zap.Error(err))
			corr.Rise, corr.Set = time.Time{}, time.Time{}
		} else {
			corr.Rise, corr.Set = rs.Rise, rs.Set
		}
	}

	pos := earth.SunPositionAt(now, w.LatitudeDeg, w.LongitudeDeg)
	altitude := corr.Correct(now, pos.Altitude)
	result := render.Render(altitude, w.Options)

	w.Log.Info("rendered sky gradient",
		zap.Time("at", now),
		zap.Float64("raw_altitude", pos.Altitude),
		zap.Float64("corrected_altitude", altitude),
		zap.String("top", result.TopColor.Hex()),
		zap.String("bottom", result.BottomColor.Hex()),
	)

	if w.OnGradient != nil {
		w.OnGradient(now, result)
	}
}
