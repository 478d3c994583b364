// Package display provides the framebuffer capability the rasterizer draws
// into, plus the backends that put one on screen. The buffer layout is the
// firmware graphics convention: 4 bytes per pixel (BGRX), row-major with an
// explicit stride.
package display

// BytesPerPixel is fixed; mode negotiation rejects anything else.
const BytesPerPixel = 4

type Framebuffer interface {
	Width() int
	Height() int
	// StrideBytes is the byte distance between the starts of two
	// consecutive rows; it may exceed Width*BytesPerPixel.
	StrideBytes() int
	// Buffer is the raw pixel memory, borrowed by the caller for the
	// duration of a draw. Its length is StrideBytes*Height.
	Buffer() []byte
	// Present flushes the buffer to the device.
	Present() error
	Close() error
}

// Memory is a plain in-memory framebuffer. It backs the engine tests and the
// terminal backend, and is the exact shape of a borrowed hardware view.
type Memory struct {
	width  int
	height int
	stride int
	buf    []byte
}

func NewMemory(width, height int) *Memory {
	stride := width * BytesPerPixel
	return &Memory{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

// NewMemoryStride builds a buffer with row padding, as real modes often
// have.
func NewMemoryStride(width, height, stride int) *Memory {
	return &Memory{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (m *Memory) Width() int       { return m.width }
func (m *Memory) Height() int      { return m.height }
func (m *Memory) StrideBytes() int { return m.stride }
func (m *Memory) Buffer() []byte   { return m.buf }
func (m *Memory) Present() error   { return nil }
func (m *Memory) Close() error     { return nil }

// Clear sets every pixel to the given packed 0x00RRGGBB color.
func (m *Memory) Clear(color uint32) {
	for y := 0; y < m.height; y++ {
		row := m.buf[y*m.stride:]
		for x := 0; x < m.width; x++ {
			o := x * BytesPerPixel
			row[o] = byte(color)
			row[o+1] = byte(color >> 8)
			row[o+2] = byte(color >> 16)
			row[o+3] = 0
		}
	}
}
