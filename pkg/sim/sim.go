// Package sim holds the bouncing box simulation: its state record, the
// fixed-timestep physics step and the render step. It knows nothing about
// windows or graphics APIs; drawing goes through Canvas and time through
// Clock.
package sim

import (
	"time"

	"github.com/gregjohnson2017/bounce/pkg/config"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// The two colors a reversal can produce.
var (
	Red  = Color{R: 255}
	Blue = Color{B: 255}
)

// Point is a position in world coordinates, origin bottom-left.
type Point struct {
	X, Y float32
}

// Viewport is the drawable area in world units, mapped 1:1 to window pixels.
type Viewport struct {
	Width, Height int32
}

// State is the single mutable record the simulation runs on.
type State struct {
	Pos          Point
	HalfWidth    float32
	Velocity     float32
	Color        Color
	LastReversal time.Time
	Viewport     Viewport
}

// New returns the startup state for cfg. The box starts touching the left
// edge, vertically centered in the initial viewport.
func New(cfg *config.Config, clock Clock) *State {
	return &State{
		Pos: Point{
			X: cfg.HalfWidth,
			Y: float32(cfg.ScreenHeight) / 2,
		},
		HalfWidth:    cfg.HalfWidth,
		Velocity:     cfg.Velocity,
		Color:        Red,
		LastReversal: clock.Now(),
		Viewport: Viewport{
			Width:  cfg.ScreenWidth,
			Height: cfg.ScreenHeight,
		},
	}
}

// Clock is the time source used to measure intervals between reversals.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}
