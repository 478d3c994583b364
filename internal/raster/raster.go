// Package raster blits glyph bitmaps for every cell of a frame into a
// framebuffer. It is the only code that writes pixels during playback,
// and it clips every write against the destination bounds, so an
// out-of-bounds store cannot happen regardless of how the frame, cell
// size and mode were configured.
package raster

import (
	"fmt"

	"git.lost.host/meutraa/fbplay/internal/anim"
	"git.lost.host/meutraa/fbplay/internal/display"
	"git.lost.host/meutraa/fbplay/internal/glyph"
)

// Packed 0x00RRGGBB pixel values. The source material is two-tone, so
// exactly two colors exist; no blending.
const (
	DefaultForeground uint32 = 0xffffff
	DefaultBackground uint32 = 0x000000
)

type Rasterizer struct {
	Foreground uint32
	Background uint32
	// Pixel offset of the grid inside the destination, used to center
	// the animation in a larger mode.
	OriginX int
	OriginY int
}

// Draw renders one frame, each cell as a cellWidth x cellHeight pixel box
// at (OriginX + col*cellWidth, OriginY + row*cellHeight). Cell boxes that
// differ from the glyph size sample the bitmap nearest-neighbour. The call
// is synchronous; dst is borrowed for its duration only.
func (r *Rasterizer) Draw(f anim.Frame, dst display.Framebuffer, cellWidth, cellHeight int) error {
	if cellWidth <= 0 || cellHeight <= 0 {
		return fmt.Errorf("invalid cell size %vx%v", cellWidth, cellHeight)
	}

	buf := dst.Buffer()
	width, height, stride := dst.Width(), dst.Height(), dst.StrideBytes()

	fg := [3]byte{byte(r.Foreground), byte(r.Foreground >> 8), byte(r.Foreground >> 16)}
	bg := [3]byte{byte(r.Background), byte(r.Background >> 8), byte(r.Background >> 16)}

	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Columns; col++ {
			g, err := glyph.Lookup(f.At(col, row))
			if nil != err {
				return fmt.Errorf("frame cell (%v,%v): %w", col, row, err)
			}

			baseX := r.OriginX + col*cellWidth
			baseY := r.OriginY + row*cellHeight

			for cy := 0; cy < cellHeight; cy++ {
				y := baseY + cy
				if y < 0 || y >= height {
					continue
				}
				gy := cy * glyph.Height / cellHeight
				rowOff := y * stride
				for cx := 0; cx < cellWidth; cx++ {
					x := baseX + cx
					if x < 0 || x >= width {
						continue
					}
					c := &bg
					if g.Set(cx*glyph.Width/cellWidth, gy) {
						c = &fg
					}
					o := rowOff + x*display.BytesPerPixel
					buf[o] = c[0]
					buf[o+1] = c[1]
					buf[o+2] = c[2]
					buf[o+3] = 0
				}
			}
		}
	}
	return nil
}
