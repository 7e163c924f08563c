package sim

import (
	"time"

	"github.com/gregjohnson2017/bounce/pkg/log"
)

// ReversalThreshold separates slow crossings (blue) from fast ones (red).
const ReversalThreshold = 900 * time.Millisecond

// Step advances st by one frame and reports whether the box reversed.
func Step(st *State, clock Clock) bool {
	st.Pos.X += st.Velocity

	right := float32(st.Viewport.Width) - st.HalfWidth
	hit := false
	if st.Pos.X >= right {
		st.Pos.X = right
		hit = true
	} else if st.Pos.X <= st.HalfWidth {
		st.Pos.X = st.HalfWidth
		hit = true
	}
	// negating zero does not change direction
	if !hit || st.Velocity == 0 {
		return false
	}
	st.Velocity = -st.Velocity

	now := clock.Now()
	elapsed := now.Sub(st.LastReversal)
	// compared in whole milliseconds
	if elapsed.Milliseconds() > ReversalThreshold.Milliseconds() {
		st.Color = Blue
	} else {
		st.Color = Red
	}
	st.LastReversal = now
	log.Debugf("reversal at x=%v after %v, velocity now %v", st.Pos.X, elapsed, st.Velocity)
	return true
}
