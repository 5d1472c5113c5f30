package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mattyatea/horizon-sky/config"
	"github.com/mattyatea/horizon-sky/earth"
	"github.com/mattyatea/horizon-sky/logger"
	"github.com/mattyatea/horizon-sky/render"
	"github.com/mattyatea/horizon-sky/watch"
)

type cliFlags struct {
	lat, lon *float64
	fov      *float64
	samples  *int
	bortle   *int
	riseSet  *bool

	timeStr  *string
	interval *time.Duration
	doWatch  *bool

	cfgPath *string
	out     *string
	width   *int
	height  *int

	showHelp *bool
}

func defineFlags() cliFlags {
	return cliFlags{
		lat:     flag.Float64("lat", 47.0, "Observer latitude in degrees"),
		lon:     flag.Float64("lon", 19.0, "Observer longitude in degrees"),
		fov:     flag.Float64("fov", 75.0, "Vertical field of view in degrees"),
		samples: flag.Int("samples", 32, "Gradient stops / integration steps"),
		bortle:  flag.Int("bortle", 0, "Bortle light-pollution class 1-9 (0 disables)"),
		riseSet: flag.Bool("riseset", false, "Blend a sunrise/sunset altitude offset"),

		timeStr:  flag.String("time", "", "Time in RFC3339 format (e.g., 2026-08-25T15:04:05Z); defaults to now"),
		interval: flag.Duration("interval", 5*time.Minute, "Re-render interval in watch mode"),
		doWatch:  flag.Bool("watch", false, "Keep re-rendering until interrupted"),

		cfgPath: flag.String("config", "", "YAML config file path"),
		out:     flag.String("out", "", "Optional PNG file for a vertical gradient strip"),
		width:   flag.Int("width", 64, "PNG strip width in pixels"),
		height:  flag.Int("height", 512, "PNG strip height in pixels"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Horizon Sky - Sky Gradient Generator

Renders the vertical sky color gradient for the sun's current altitude.

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Location", []string{"lat", "lon"})
	printGroup("Rendering", []string{"samples", "fov", "bortle", "riseset", "time"})
	printGroup("Watch Mode", []string{"watch", "interval"})
	printGroup("Output", []string{"out", "width", "height"})
	printGroup("Misc", []string{"config", "h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-9s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	flags := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *flags.showHelp {
		printHelp()
		return
	}

	cfg, err := config.Load(*flags.cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(cfg, flags)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Log.Sync()

	opts := render.Options{
		ViewSamples:       cfg.Render.Samples,
		ScatteringSteps:   cfg.Render.ScatteringSteps,
		OpticalDepthSteps: cfg.Render.OpticalDepthSteps,
		FOVDeg:            cfg.Render.FOVDeg,
		Tone:              render.DefaultTone(),
	}

	if *flags.doWatch {
		runWatch(cfg, opts)
		return
	}

	renderOnce(cfg, opts, flags)
}

// applyFlags copies explicitly set CLI flags over the file config.
func applyFlags(cfg *config.Config, flags cliFlags) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			cfg.Location.LatitudeDeg = *flags.lat
		case "lon":
			cfg.Location.LongitudeDeg = *flags.lon
		case "fov":
			cfg.Render.FOVDeg = *flags.fov
		case "samples":
			cfg.Render.Samples = *flags.samples
		case "bortle":
			cfg.Render.Bortle = *flags.bortle
		case "riseset":
			cfg.Render.RiseSetBlend = *flags.riseSet
		case "interval":
			cfg.Watch.Interval = *flags.interval
		}
	})
}

func renderOnce(cfg *config.Config, opts render.Options, flags cliFlags) {
	at := parseTimeOrExit(*flags.timeStr)

	corr := render.Corrector{Bortle: cfg.Render.Bortle}
	if cfg.Render.RiseSetBlend {
		rs, err := earth.LocalProvider{}.RiseSet(cfg.Location.LatitudeDeg, cfg.Location.LongitudeDeg, at)
		if err != nil {
			logger.Log.Warn("rise/set unavailable, skipping blend", zap.Error(err))
		} else {
			corr.Rise, corr.Set = rs.Rise, rs.Set
		}
	}

	pos := earth.SunPositionAt(at, cfg.Location.LatitudeDeg, cfg.Location.LongitudeDeg)
	altitude := corr.Correct(at, pos.Altitude)
	result := render.Render(altitude, opts)

	fmt.Println(result.Gradient)
	fmt.Printf("top: %s  bottom: %s\n", result.TopColor.Hex(), result.BottomColor.Hex())

	if *flags.out != "" {
		if err := writePNG(*flags.out, result.Strip(*flags.width, *flags.height)); err != nil {
			logger.Log.Fatal("failed to write PNG", zap.Error(err))
		}
		logger.Log.Info("wrote gradient strip", zap.String("path", *flags.out))
	}
}

func runWatch(cfg *config.Config, opts render.Options) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider earth.RiseSetProvider
	if cfg.Render.RiseSetBlend {
		cached, err := earth.NewCachedProvider(earth.LocalProvider{}, 64)
		if err != nil {
			logger.Log.Fatal("failed to build rise/set cache", zap.Error(err))
		}
		provider = cached
	}

	w := &watch.Watcher{
		LatitudeDeg:  cfg.Location.LatitudeDeg,
		LongitudeDeg: cfg.Location.LongitudeDeg,
		Interval:     cfg.Watch.Interval,
		Options:      opts,
		Corrector:    render.Corrector{Bortle: cfg.Render.Bortle},
		RiseSets:     provider,
		Log:          logger.Log,
		OnGradient: func(_ time.Time, g render.GradientResult) {
			fmt.Println(g.Gradient)
		},
	}

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Fatal("watcher stopped", zap.Error(err))
	}
}

func parseTimeOrExit(timeStr string) time.Time {
	if timeStr == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid time format: %v\n", err)
		os.Exit(1)
	}
	return t
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(f, img)
}
