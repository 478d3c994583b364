package display

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL presents the framebuffer in a window through a streaming texture,
// standing in for the firmware graphics output on a host machine.
type SDL struct {
	width  int
	height int
	stride int
	buf    []byte

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewSDL opens a window of at least width x height pixels, zoomed by scale.
func NewSDL(title string, width, height, scale int) (*SDL, error) {
	if scale < 1 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); nil != err {
		return nil, fmt.Errorf("unable to initialize video: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width*scale), int32(height*scale), sdl.WINDOW_SHOWN)
	if nil != err {
		sdl.Quit()
		return nil, fmt.Errorf("unable to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if nil != err {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("unable to create renderer: %w", err)
	}

	// ARGB8888 is stored B,G,R,X in memory on little-endian, the same
	// layout the rasterizer writes.
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if nil != err {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("unable to create texture: %w", err)
	}

	return &SDL{
		width:    width,
		height:   height,
		stride:   width * BytesPerPixel,
		buf:      make([]byte, width*height*BytesPerPixel),
		window:   window,
		renderer: renderer,
		texture:  texture,
	}, nil
}

func (s *SDL) Width() int       { return s.width }
func (s *SDL) Height() int      { return s.height }
func (s *SDL) StrideBytes() int { return s.stride }
func (s *SDL) Buffer() []byte   { return s.buf }

func (s *SDL) Present() error {
	pixels, pitch, err := s.texture.Lock(nil)
	if nil != err {
		return fmt.Errorf("unable to lock texture: %w", err)
	}
	if pitch == s.stride {
		copy(pixels, s.buf)
	} else {
		for y := 0; y < s.height; y++ {
			copy(pixels[y*pitch:y*pitch+s.stride], s.buf[y*s.stride:])
		}
	}
	s.texture.Unlock()

	if err := s.renderer.Copy(s.texture, nil, nil); nil != err {
		return fmt.Errorf("unable to copy texture: %w", err)
	}
	s.renderer.Present()
	return nil
}

// Aborted drains pending window events and reports whether the user asked
// to quit (window close, Escape or q).
func (s *SDL) Aborted() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN &&
				(e.Keysym.Sym == sdl.K_ESCAPE || e.Keysym.Sym == sdl.K_q) {
				return true
			}
		}
	}
	return false
}

func (s *SDL) Close() error {
	s.texture.Destroy()
	s.renderer.Destroy()
	s.window.Destroy()
	sdl.Quit()
	return nil
}
