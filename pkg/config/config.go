package config

import (
	"strconv"
	"strings"
	"time"
)

// Config represents the window and simulation configuration for bounce
type Config struct {
	Title        string
	ScreenWidth  int32
	ScreenHeight int32
	// HalfWidth is half the side length of the box.
	HalfWidth float32
	// Velocity is the signed horizontal distance travelled per frame.
	Velocity float32
	// FrameDelay is the fixed sleep between loop iterations.
	FrameDelay time.Duration
	ClearColor [4]float32
	// Metrics enables per-step timing averages logged at shutdown.
	Metrics bool
}

// New is an optional constructor for Config, mainly for a friendlier API.
func New(screenWidth, screenHeight int32, halfWidth, velocity float32) *Config {
	cfg := Default()
	cfg.ScreenWidth = screenWidth
	cfg.ScreenHeight = screenHeight
	cfg.HalfWidth = halfWidth
	cfg.Velocity = velocity
	return cfg
}

// Default returns the startup configuration used when no argument is given.
func Default() *Config {
	return &Config{
		Title:        "bounce",
		ScreenWidth:  400,
		ScreenHeight: 200,
		HalfWidth:    20,
		Velocity:     5,
		FrameDelay:   200 * time.Microsecond,
		ClearColor:   [4]float32{0.1, 0.1, 0.1, 1.0},
	}
}

// FromArgs returns the default configuration with the initial velocity
// overridden by the first positional argument, if any. args excludes the
// program name.
func FromArgs(args []string) *Config {
	cfg := Default()
	if len(args) >= 1 {
		cfg.Velocity = ParseVelocity(args[0])
	}
	return cfg
}

// ParseVelocity converts s the way C's atoi does: leading whitespace is
// skipped, an optional sign and the leading run of decimal digits are used,
// and everything after is ignored. Input without leading digits yields 0.
func ParseVelocity(s string) float32 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		// out of int range
		return 0
	}
	return float32(n)
}
