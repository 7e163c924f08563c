package gfx

import (
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/gregjohnson2017/bounce/pkg/log"
)

// VAO represents a Vertex Array Object with its own vertex buffer.
type VAO struct {
	vaoID      uint32
	vbo        *BufferObject
	mode       uint32
	vertSize   int32
	numAttribs uint32
}

// NewVAO configures a VAO & VBO pair with a specified mode and vertex
// layout. Example mode: gl.TRIANGLES. Example vertex layout: (x,y) ->
// layout = (2).
func NewVAO(mode uint32, layout []int32) *VAO {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)
	vbo := NewBufferObject()
	var vertSize int32
	for _, s := range layout {
		vertSize += s
	}

	vbo.Bind(gl.ARRAY_BUFFER)
	gl.BindVertexArray(vaoID)
	// ex: (x,y) -> 2*4 = 8 bytes
	stride := vertSize * 4
	var offset int32
	for i, s := range layout {
		gl.VertexAttribPointer(uint32(i), s, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(offset*4)))
		offset += s
	}
	gl.BindVertexArray(0)
	vbo.Unbind(gl.ARRAY_BUFFER)

	return &VAO{
		vaoID:      vaoID,
		vbo:        vbo,
		mode:       mode,
		vertSize:   vertSize,
		numAttribs: uint32(len(layout)),
	}
}

// ErrEmptyData indicates that the given data is empty.
const ErrEmptyData log.ConstErr = "data is empty so cannot be used"

// Load replaces the vertex data. Example usage is gl.STREAM_DRAW.
func (vao *VAO) Load(data []float32, usage uint32) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	vao.vbo.BufferData(gl.ARRAY_BUFFER, uint32(4*len(data)), gl.Ptr(&data[0]), usage)
	return nil
}

// Draw renders the shapes from previously loaded data.
func (vao *VAO) Draw() {
	if vao.vbo.GetSizeBytes() == 0 {
		return
	}
	var i uint32
	gl.BindVertexArray(vao.vaoID)
	for i = 0; i < vao.numAttribs; i++ {
		gl.EnableVertexAttribArray(i)
	}
	gl.DrawArrays(vao.mode, 0, int32(vao.vbo.GetSizeBytes())/(4*vao.vertSize))
	for i = 0; i < vao.numAttribs; i++ {
		gl.DisableVertexAttribArray(i)
	}
	gl.BindVertexArray(0)
}

// Destroy frees the resources.
func (vao *VAO) Destroy() {
	gl.DeleteVertexArrays(1, &vao.vaoID)
	vao.vbo.Destroy()
	vao.vbo = nil
	vao.vaoID = 0
	vao.mode = 0
}
