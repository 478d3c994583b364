package raster

import (
	"testing"

	"git.lost.host/meutraa/fbplay/internal/anim"
	"git.lost.host/meutraa/fbplay/internal/display"
	"git.lost.host/meutraa/fbplay/internal/glyph"
)

func frame(t *testing.T, columns, rows int, cells string) anim.Frame {
	t.Helper()
	a, err := anim.New(columns, rows, 10, []byte(cells))
	if nil != err {
		t.Fatal("unable to build frame", err)
	}
	return a.FrameAt(0)
}

func pixel(fb display.Framebuffer, x, y int) uint32 {
	o := y*fb.StrideBytes() + x*display.BytesPerPixel
	buf := fb.Buffer()
	return uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16
}

func TestDrawPlacesGlyphPixels(t *testing.T) {
	fb := display.NewMemory(glyph.Width*2, glyph.Height)
	r := Rasterizer{Foreground: DefaultForeground, Background: DefaultBackground}

	f := frame(t, 2, 1, "+ ")
	if err := r.Draw(f, fb, glyph.Width, glyph.Height); nil != err {
		t.Fatal("unable to draw", err)
	}

	g, _ := glyph.Lookup('+')
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < glyph.Width; x++ {
			want := DefaultBackground
			if g.Set(x, y) {
				want = DefaultForeground
			}
			if got := pixel(fb, x, y); got != want {
				t.Log("cell 0 pixel", x, y, "got", got, "want", want)
				t.Fail()
			}
			// Second cell is a space, always background.
			if got := pixel(fb, glyph.Width+x, y); got != DefaultBackground {
				t.Log("cell 1 pixel", x, y, "got", got)
				t.Fail()
			}
		}
	}
}

func TestDrawScalesToCellSize(t *testing.T) {
	// A 2x cell must repeat every glyph pixel in a 2x2 block.
	fb := display.NewMemory(glyph.Width*2, glyph.Height*2)
	r := Rasterizer{Foreground: DefaultForeground}

	f := frame(t, 1, 1, "@")
	if err := r.Draw(f, fb, glyph.Width*2, glyph.Height*2); nil != err {
		t.Fatal("unable to draw", err)
	}

	g, _ := glyph.Lookup('@')
	for y := 0; y < glyph.Height*2; y++ {
		for x := 0; x < glyph.Width*2; x++ {
			want := uint32(0)
			if g.Set(x/2, y/2) {
				want = DefaultForeground
			}
			if got := pixel(fb, x, y); got != want {
				t.Log("pixel", x, y, "got", got, "want", want)
				t.Fail()
			}
		}
	}
}

func TestDrawClipsUndersizedViews(t *testing.T) {
	// Destinations smaller than the frame extent, with row padding in the
	// stride. Nothing outside the pixel rows may be written, and the draw
	// must not fault.
	f := frame(t, 4, 3, "@@@@@@@@@@@@")
	r := Rasterizer{Foreground: DefaultForeground}

	sizes := [][2]int{{1, 1}, {5, 3}, {31, 2}, {9, 23}}
	for _, size := range sizes {
		width, height := size[0], size[1]
		stride := width*display.BytesPerPixel + 7
		fb := display.NewMemoryStride(width, height, stride)

		if err := r.Draw(f, fb, glyph.Width, glyph.Height); nil != err {
			t.Fatal("unable to draw", err)
		}

		buf := fb.Buffer()
		for y := 0; y < height; y++ {
			pad := buf[y*stride+width*display.BytesPerPixel : (y+1)*stride]
			for i, b := range pad {
				if b != 0 {
					t.Log("write in row padding", width, "x", height, "row", y, "byte", i)
					t.Fail()
				}
			}
		}
	}
}

func TestDrawWithOrigin(t *testing.T) {
	fb := display.NewMemory(glyph.Width*3, glyph.Height*3)
	r := Rasterizer{Foreground: DefaultForeground, OriginX: glyph.Width, OriginY: glyph.Height}

	f := frame(t, 1, 1, "@")
	if err := r.Draw(f, fb, glyph.Width, glyph.Height); nil != err {
		t.Fatal("unable to draw", err)
	}

	g, _ := glyph.Lookup('@')
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < glyph.Width; x++ {
			want := uint32(0)
			if g.Set(x, y) {
				want = DefaultForeground
			}
			if got := pixel(fb, glyph.Width+x, glyph.Height+y); got != want {
				t.Log("offset pixel", x, y, "got", got, "want", want)
				t.Fail()
			}
		}
	}
	// Origin row/column stays untouched.
	for x := 0; x < fb.Width(); x++ {
		if pixel(fb, x, 0) != 0 {
			t.Log("write above origin at", x)
			t.Fail()
		}
	}
}

func TestDrawRejectsInvalidCellSize(t *testing.T) {
	fb := display.NewMemory(8, 8)
	r := Rasterizer{}
	f := frame(t, 1, 1, "@")
	if err := r.Draw(f, fb, 0, 8); nil == err {
		t.Log("expected error for zero cell width")
		t.Fail()
	}
	if err := r.Draw(f, fb, 8, -1); nil == err {
		t.Log("expected error for negative cell height")
		t.Fail()
	}
}

var sink error

func BenchmarkDraw(b *testing.B) {
	cells := make([]byte, 80*30)
	for i := range cells {
		cells[i] = glyph.Alphabet[i%len(glyph.Alphabet)]
	}
	a, err := anim.New(80, 30, 30, cells)
	if nil != err {
		b.Fatal(err)
	}
	f := a.FrameAt(0)
	fb := display.NewMemory(80*glyph.Width, 30*glyph.Height)
	r := Rasterizer{Foreground: DefaultForeground}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		sink = r.Draw(f, fb, glyph.Width, glyph.Height)
	}
}
