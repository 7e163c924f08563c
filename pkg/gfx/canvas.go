// Package gfx draws the simulation with OpenGL. Canvas satisfies
// sim.Canvas using a solid color shader program and a streamed quad.
package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/gregjohnson2017/bounce/pkg/sim"
)

// Make sure Canvas satisfies the interface
var _ sim.Canvas = (*Canvas)(nil)

// Canvas renders quads in world coordinates spanning the viewport, origin
// bottom-left. A current GL context is required for every method.
type Canvas struct {
	prog  *Program
	quad  *VAO
	clear [4]float32
}

// NewCanvas builds the shader program and quad buffer and sets up the
// projection for a width x height viewport.
func NewCanvas(width, height int32, clearColor [4]float32) (*Canvas, error) {
	vsh, err := NewShader(QuadVertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer vsh.Delete()
	fsh, err := NewShader(SolidColorFragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer fsh.Delete()
	prog, err := NewProgram(vsh, fsh)
	if err != nil {
		return nil, err
	}

	c := &Canvas{
		prog:  prog,
		quad:  NewVAO(gl.TRIANGLES, []int32{2}),
		clear: clearColor,
	}
	if err = c.SetViewport(width, height); err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}

// SetViewport reconfigures the projection so world coordinates span
// [0, width] x [0, height].
func (c *Canvas) SetViewport(width, height int32) error {
	gl.Viewport(0, 0, width, height)
	return c.prog.UploadUniform("area", float32(width), float32(height))
}

// Clear fills the color buffer with the clear color.
func (c *Canvas) Clear() {
	gl.ClearColor(c.clear[0], c.clear[1], c.clear[2], c.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SetColor sets the fill color of subsequent quads.
func (c *Canvas) SetColor(col sim.Color) {
	rgba := ColorToFloats(col)
	// uni_color is declared by SolidColorFragment so the upload cannot fail
	_ = c.prog.UploadUniform("uni_color", rgba[0], rgba[1], rgba[2], rgba[3])
}

// DrawQuad draws a filled square of side 2*halfWidth centered on center.
func (c *Canvas) DrawQuad(center sim.Point, halfWidth float32) {
	// never empty, so Load cannot fail
	_ = c.quad.Load(QuadVertices(center, halfWidth), gl.STREAM_DRAW)
	c.prog.Bind()
	c.quad.Draw()
	c.prog.Unbind()
}

// Destroy frees the GL resources.
func (c *Canvas) Destroy() {
	c.quad.Destroy()
	c.prog.Delete()
}

// QuadVertices returns two counter-clockwise triangles covering the square
// of the given half width around center, as (x,y) pairs.
func QuadVertices(center sim.Point, halfWidth float32) []float32 {
	l, r := center.X-halfWidth, center.X+halfWidth
	b, t := center.Y-halfWidth, center.Y+halfWidth
	return []float32{
		l, b, r, b, r, t,
		l, b, r, t, l, t,
	}
}

// ColorToFloats converts an 8-bit color to opaque normalized RGBA.
func ColorToFloats(col sim.Color) [4]float32 {
	return [4]float32{
		float32(col.R) / 255,
		float32(col.G) / 255,
		float32(col.B) / 255,
		1,
	}
}
