// Package config loads application configuration from environment
// variables, with defaults matching the Waveshare 1.3" LCD HAT wiring.
package config

import (
	"os"
	"strconv"
	"time"
)

// PollConfig holds feed selection and loop timing.
type PollConfig struct {
	// Feed is the registry key of the feed to poll.
	Feed string
	// Date scopes date-based feeds ("YYYY-MM-DD"); empty means today.
	Date string
	// Once runs a single fetch-render cycle and exits.
	Once bool
	// Interval is the dwell between successful cycles.
	Interval time.Duration
	// Cooldown is the delay after a failed cycle.
	Cooldown time.Duration
	// ProbeConnectivity enables the pre-fetch reachability probe with
	// fallback demo data.
	ProbeConnectivity bool
}

// DisplayConfig holds panel wiring and rendering options.
type DisplayConfig struct {
	SPIBus       string
	DCPin        string
	ResetPin     string
	BacklightPin string
	FontPath     string
	// TwoLineLayout draws each game as two truncated lines instead of one.
	TwoLineLayout bool
	// Dwell is how long a rendered frame is held before the cycle ends.
	Dwell time.Duration
}

// Config holds all application configuration.
type Config struct {
	Poll    PollConfig
	Display DisplayConfig
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Poll: PollConfig{
			Feed:              getEnv("FEED", "nhl_schedule"),
			Date:              getEnv("SCOREBOARD_DATE", ""),
			Once:              getBool("RUN_ONCE", false),
			Interval:          getDuration("POLL_INTERVAL", 60*time.Second),
			Cooldown:          getDuration("POLL_COOLDOWN", 10*time.Second),
			ProbeConnectivity: getBool("CONNECTIVITY_PROBE", false),
		},
		Display: DisplayConfig{
			SPIBus:        getEnv("SPI_BUS", "SPI0.0"),
			DCPin:         getEnv("DC_PIN", "GPIO25"),
			ResetPin:      getEnv("RESET_PIN", "GPIO27"),
			BacklightPin:  getEnv("BACKLIGHT_PIN", "GPIO24"),
			FontPath:      getEnv("FONT_PATH", ""),
			TwoLineLayout: getBool("TWO_LINE_LAYOUT", false),
			Dwell:         getDuration("FRAME_DWELL", 2*time.Second),
		},
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
