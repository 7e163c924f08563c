package gfx

import (
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
)

// BufferObject is a GL buffer that remembers how many bytes it holds.
type BufferObject struct {
	id        uint32
	sizeBytes uint32
}

func NewBufferObject() *BufferObject {
	var bo BufferObject
	gl.GenBuffers(1, &bo.id)
	return &bo
}

// BufferData replaces the whole buffer store, like malloc followed by memcpy.
func (bo *BufferObject) BufferData(target uint32, sizeBytes uint32, ptr unsafe.Pointer, usage uint32) {
	bo.sizeBytes = sizeBytes
	bo.Bind(target)
	gl.BufferData(target, int(sizeBytes), ptr, usage)
	bo.Unbind(target)
}

func (bo *BufferObject) GetSizeBytes() uint32 {
	return bo.sizeBytes
}

func (bo *BufferObject) Bind(target uint32) {
	gl.BindBuffer(target, bo.id)
}

func (bo *BufferObject) Unbind(target uint32) {
	gl.BindBuffer(target, 0)
}

func (bo *BufferObject) Destroy() {
	gl.DeleteBuffers(1, &bo.id)
	bo.id = 0
	bo.sizeBytes = 0
}
