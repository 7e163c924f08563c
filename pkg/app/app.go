// Package app runs the bounce loop: poll events, step the simulation,
// render, swap, then sleep a fixed delay.
package app

import (
	"time"

	"github.com/gregjohnson2017/bounce/pkg/config"
	"github.com/gregjohnson2017/bounce/pkg/log"
	"github.com/gregjohnson2017/bounce/pkg/perf"
	"github.com/gregjohnson2017/bounce/pkg/sim"
	"github.com/gregjohnson2017/bounce/pkg/util"
)

// Shell is what the loop needs from the windowing system.
type Shell interface {
	// PollEvents handles every pending event without blocking, applying
	// resizes to vp. It returns false once the loop should terminate.
	PollEvents(vp *sim.Viewport) bool
	// Canvas returns the drawing surface for the current frame.
	Canvas() sim.Canvas
	// Swap presents the frame.
	Swap()
}

// Application holds state for the bounce loop
type Application struct {
	cfg     *config.Config
	clock   sim.Clock
	frames  int64
	running bool
	shell   Shell
	sleep   func(time.Duration)
	state   *sim.State
}

// New returns an application with a freshly initialized simulation state.
func New(shell Shell, cfg *config.Config, clock sim.Clock) *Application {
	return &Application{
		cfg:   cfg,
		clock: clock,
		shell: shell,
		sleep: time.Sleep,
		state: sim.New(cfg, clock),
	}
}

// Start sets up the state for running
func (app *Application) Start() {
	app.running = true
	log.Infof("starting with velocity %v in a %vx%v viewport",
		app.state.Velocity, app.state.Viewport.Width, app.state.Viewport.Height)
}

// Running returns whether the application is still running
func (app *Application) Running() bool {
	return app.running
}

// State returns the simulation state driven by the loop.
func (app *Application) State() *sim.State {
	return app.state
}

// Frame runs one loop iteration. Once the shell asks to terminate, nothing
// past event polling happens and Running reports false.
func (app *Application) Frame() {
	if !app.shell.PollEvents(&app.state.Viewport) {
		app.running = false
		return
	}

	sw := util.Start()
	sim.Step(app.state, app.clock)
	sw.StopRecordAverage("sim.Step")

	sw = util.Start()
	sim.Render(app.state, app.shell.Canvas())
	sw.StopRecordAverage("sim.Render")

	sw = util.Start()
	app.shell.Swap()
	sw.StopRecordAverage("shell.Swap")

	app.frames++
	app.sleep(app.cfg.FrameDelay)
}

// Run starts the application and loops until it stops running.
func (app *Application) Run() {
	app.Start()
	for app.running {
		app.Frame()
	}
}

// Quit reports metrics gathered during the run
func (app *Application) Quit() {
	log.Infof("stopped after %v frames", app.frames)
	perf.LogMetrics()
}
