// Package platform owns the SDL2 window, its OpenGL context and the event
// queue. Shell satisfies app.Shell.
package platform

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/gregjohnson2017/bounce/pkg/config"
	"github.com/gregjohnson2017/bounce/pkg/gfx"
	"github.com/gregjohnson2017/bounce/pkg/log"
	"github.com/gregjohnson2017/bounce/pkg/sim"
	"github.com/veandco/go-sdl2/sdl"
)

// ErrNoDisplay indicates that the video subsystem could not reach a display
const ErrNoDisplay log.ConstErr = "cannot connect to display"

// ErrNoVisual indicates that no window with a suitable GL context could be
// created
const ErrNoVisual log.ConstErr = "no appropriate visual found"

// viewportCanvas is a canvas whose projection follows the window size.
type viewportCanvas interface {
	sim.Canvas
	SetViewport(width, height int32) error
}

// Shell is an SDL2 window with a double-buffered OpenGL context.
type Shell struct {
	canvas viewportCanvas
	ctx    sdl.GLContext
	mouse  sdl.Point
	quit   bool
	win    *sdl.Window

	// Reserved input hooks, nil unless set.
	OnKeyA        func()
	OnMouseButton func(button uint8, pressed bool, x, y int32)
	OnMouseMove   func(x, y int32)
}

// New opens a resizable window of cfg's screen size and prepares a GL
// canvas whose world coordinates match its pixels.
func New(cfg *config.Config) (*Shell, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 3},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("%w: %v", ErrNoVisual, err)
		}
	}

	win, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.ScreenWidth, cfg.ScreenHeight, sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", ErrNoVisual, err)
	}
	ctx, err := win.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", ErrNoVisual, err)
	}
	s := &Shell{ctx: ctx, win: win}
	if err = gl.Init(); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrNoVisual, err)
	}
	log.Infof("OpenGL version %v", gl.GoStr(gl.GetString(gl.VERSION)))

	canvas, err := gfx.NewCanvas(cfg.ScreenWidth, cfg.ScreenHeight, cfg.ClearColor)
	if err != nil {
		s.Destroy()
		return nil, err
	}
	s.canvas = canvas
	win.Show()
	return s, nil
}

// PollEvents drains the SDL event queue. SDL_PollEvent never blocks.
func (s *Shell) PollEvents(vp *sim.Viewport) bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		s.handleEvent(e, vp)
	}
	return !s.quit
}

// Canvas returns the GL canvas.
func (s *Shell) Canvas() sim.Canvas {
	return s.canvas
}

// Swap presents the back buffer.
func (s *Shell) Swap() {
	s.win.GLSwap()
}

// Destroy releases the canvas, GL context, window and SDL.
func (s *Shell) Destroy() {
	if c, ok := s.canvas.(*gfx.Canvas); ok {
		c.Destroy()
	}
	sdl.GLDeleteContext(s.ctx)
	if err := s.win.Destroy(); err != nil {
		log.Warnf("destroying window: %v", err)
	}
	sdl.Quit()
}

func (s *Shell) handleEvent(e sdl.Event, vp *sim.Viewport) {
	switch evt := e.(type) {
	case *sdl.QuitEvent:
		s.quit = true
	case *sdl.WindowEvent:
		s.handleWindowEvent(evt, vp)
	case *sdl.KeyboardEvent:
		s.handleKeyboardEvent(evt)
	case *sdl.MouseButtonEvent:
		s.handleMouseButtonEvent(evt)
	case *sdl.MouseMotionEvent:
		s.handleMouseMotionEvent(evt)
	}
}

func (s *Shell) handleWindowEvent(evt *sdl.WindowEvent, vp *sim.Viewport) {
	if evt.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
		return
	}
	if evt.Data1 == vp.Width && evt.Data2 == vp.Height {
		return
	}
	vp.Width = evt.Data1
	vp.Height = evt.Data2
	if err := s.canvas.SetViewport(vp.Width, vp.Height); err != nil {
		log.Warnf("resizing viewport: %v", err)
	}
	log.Debugf("viewport resized to %vx%v", vp.Width, vp.Height)
}

func (s *Shell) handleKeyboardEvent(evt *sdl.KeyboardEvent) {
	if evt.Type != sdl.KEYDOWN {
		return
	}
	switch evt.Keysym.Sym {
	case sdl.K_a:
		if s.OnKeyA != nil {
			s.OnKeyA()
		}
	case sdl.K_ESCAPE:
		s.quit = true
	}
}

func (s *Shell) handleMouseButtonEvent(evt *sdl.MouseButtonEvent) {
	if evt.Button != sdl.BUTTON_LEFT && evt.Button != sdl.BUTTON_RIGHT {
		return
	}
	if s.OnMouseButton != nil {
		s.OnMouseButton(evt.Button, evt.State == sdl.PRESSED, evt.X, evt.Y)
	}
}

// handleMouseMotionEvent only reports motion that changes the coordinates.
func (s *Shell) handleMouseMotionEvent(evt *sdl.MouseMotionEvent) {
	if evt.X == s.mouse.X && evt.Y == s.mouse.Y {
		return
	}
	s.mouse = sdl.Point{X: evt.X, Y: evt.Y}
	if s.OnMouseMove != nil {
		s.OnMouseMove(evt.X, evt.Y)
	}
}
