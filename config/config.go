// Package config handles application configuration loading.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Location LocationConfig `yaml:"location"`
	Render   RenderConfig   `yaml:"render"`
	Watch    WatchConfig    `yaml:"watch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LocationConfig is the observer's place on Earth.
type LocationConfig struct {
	LatitudeDeg  float64 `yaml:"latitude"`
	LongitudeDeg float64 `yaml:"longitude"`
}

// RenderConfig holds the quality and correction settings.
type RenderConfig struct {
	Samples           int     `yaml:"samples"`
	ScatteringSteps   int     `yaml:"scattering_steps"`
	OpticalDepthSteps int     `yaml:"optical_depth_steps"`
	FOVDeg            float64 `yaml:"fov"`
	Bortle            int     `yaml:"bortle"` // 0 disables the light-pollution floor
	RiseSetBlend      bool    `yaml:"rise_set_blend"`
}

// WatchConfig holds the periodic re-render settings.
type WatchConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Location: LocationConfig{
			LatitudeDeg:  47.0,
			LongitudeDeg: 19.0,
		},
		Render: RenderConfig{
			Samples:           32,
			ScatteringSteps:   32,
			OpticalDepthSteps: 32,
			FOVDeg:            75.0,
			Bortle:            0,
			RiseSetBlend:      false,
		},
		Watch: WatchConfig{
			Interval: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
