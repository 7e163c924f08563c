package app

import (
	"reflect"
	"testing"
	"time"

	"github.com/gregjohnson2017/bounce/pkg/config"
	"github.com/gregjohnson2017/bounce/pkg/perf"
	"github.com/gregjohnson2017/bounce/pkg/sim"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

type recorder struct {
	ops []string
}

func (r *recorder) Clear() { r.ops = append(r.ops, "clear") }
func (r *recorder) SetColor(sim.Color) { r.ops = append(r.ops, "color") }
func (r *recorder) DrawQuad(sim.Point, float32) { r.ops = append(r.ops, "quad") }
func (r *recorder) Canvas() sim.Canvas { return r }
func (r *recorder) Swap() { r.ops = append(r.ops, "swap") }
func (r *recorder) sleep(d time.Duration) { r.ops = append(r.ops, "sleep "+d.String()) }
func (r *recorder) reset() { r.ops = nil }
func (r *recorder) count(op string) (n int) {
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}

// scriptedShell runs a fixed number of frames, applying per-frame resizes.
type scriptedShell struct {
	*recorder
	frames  int
	polls   int
	resizes map[int]sim.Viewport
}

func (s *scriptedShell) PollEvents(vp *sim.Viewport) bool {
	s.ops = append(s.ops, "poll")
	s.polls++
	if r, ok := s.resizes[s.polls]; ok {
		*vp = r
	}
	return s.polls <= s.frames
}

func newTestApp(shell *scriptedShell, cfg *config.Config) *Application {
	a := New(shell, cfg, fixedClock{time.Unix(0, 0)})
	a.sleep = shell.sleep
	return a
}

func TestFrameOrder(t *testing.T) {
	shell := &scriptedShell{recorder: &recorder{}, frames: 1}
	a := newTestApp(shell, config.Default())
	a.Start()
	a.Frame()
	expected := []string{"poll", "clear", "color", "quad", "swap", "sleep 200µs"}
	if !reflect.DeepEqual(expected, shell.ops) {
		t.Fatalf("expected != actual\nexpected: %v\nactual: %v", expected, shell.ops)
	}
	if a.State().Pos.X != 25 {
		t.Fatalf("expected physics to move box to 25, got %v", a.State().Pos.X)
	}
}

func TestRunStopsWhenShellTerminates(t *testing.T) {
	shell := &scriptedShell{recorder: &recorder{}, frames: 3}
	a := newTestApp(shell, config.Default())
	a.Run()
	if a.Running() {
		t.Fatal("expected application to stop")
	}
	if shell.count("swap") != 3 {
		t.Fatalf("expected 3 swaps, got %v", shell.count("swap"))
	}
	if shell.polls != 4 {
		t.Fatalf("expected 4 polls, got %v", shell.polls)
	}
	if last := shell.ops[len(shell.ops)-1]; last != "poll" {
		t.Fatalf("expected the terminating poll to be last, got %v", last)
	}
	a.Quit()
}

func TestResizeBelowBoxSkipsDrawing(t *testing.T) {
	shell := &scriptedShell{
		recorder: &recorder{},
		frames:   10,
		resizes:  map[int]sim.Viewport{3: {Width: 30, Height: 200}},
	}
	a := newTestApp(shell, config.Default())
	a.Start()
	a.Frame()
	a.Frame()
	if shell.count("quad") != 2 {
		t.Fatalf("expected 2 quads before resize, got %v", shell.count("quad"))
	}
	shell.reset()
	for a.Running() {
		a.Frame()
	}
	if shell.count("quad") != 0 {
		t.Fatalf("expected no quads after resize, got %v", shell.count("quad"))
	}
	if shell.count("clear") != 8 || shell.count("swap") != 8 {
		t.Fatalf("expected frames to keep clearing and swapping, got %v", shell.ops)
	}
	if a.State().Viewport.Width != 30 {
		t.Fatalf("expected viewport width 30, got %v", a.State().Viewport.Width)
	}
}

func TestZeroVelocityNeverMoves(t *testing.T) {
	shell := &scriptedShell{recorder: &recorder{}, frames: 50}
	a := newTestApp(shell, config.FromArgs([]string{"abc"}))
	start := *a.State()
	a.Run()
	if !reflect.DeepEqual(start, *a.State()) {
		t.Fatalf("state changed\nbefore: %+v\nafter: %+v", start, *a.State())
	}
	if a.State().Color != sim.Red {
		t.Fatalf("expected red, got %v", a.State().Color)
	}
}

func TestFrameRecordsMetrics(t *testing.T) {
	perf.Reset()
	perf.SetMetricsEnabled(true)
	defer perf.Reset()
	defer perf.SetMetricsEnabled(false)

	shell := &scriptedShell{recorder: &recorder{}, frames: 2}
	a := newTestApp(shell, config.Default())
	a.Run()
	for _, key := range []string{"sim.Step", "sim.Render", "shell.Swap"} {
		if _, ok := perf.Average(key); !ok {
			t.Fatalf("expected samples for %v", key)
		}
	}
}
