package sim

// Canvas is the set of drawing primitives the render step needs.
type Canvas interface {
	// Clear fills the frame with the background color.
	Clear()
	// SetColor sets the color used by subsequent draws.
	SetColor(c Color)
	// DrawQuad draws a filled axis-aligned square centered on center.
	DrawQuad(center Point, halfWidth float32)
}

// Render draws st onto c. The box is skipped when it does not fit inside
// the viewport. st is not modified.
func Render(st *State, c Canvas) {
	c.Clear()
	if st.HalfWidth*2 >= float32(st.Viewport.Width) {
		return
	}
	c.SetColor(st.Color)
	c.DrawQuad(st.Pos, st.HalfWidth)
}
