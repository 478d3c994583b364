// Package encode is the offline half of the pipeline: it turns source
// video (animated GIF) into the character-grid container the player loads.
// It never runs during playback.
package encode

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"

	xdraw "golang.org/x/image/draw"

	"git.lost.host/meutraa/fbplay/internal/anim"
	"git.lost.host/meutraa/fbplay/internal/glyph"
)

// FromGIF decodes every frame of an animated GIF, scales it to the
// character grid and quantizes luminance onto the glyph alphabet, darkest
// character first.
func FromGIF(r io.Reader, columns, rows int, rate uint16) (*anim.Animation, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid grid %vx%v", columns, rows)
	}

	g, err := gif.DecodeAll(r)
	if nil != err {
		return nil, fmt.Errorf("unable to decode gif: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	// GIF frames are deltas; compose each over the running canvas before
	// sampling, so partially-updated frames come out whole. After
	// sampling, apply the frame's disposal so stale pixels do not leak
	// into later frames.
	canvas := image.NewRGBA(bounds)
	small := image.NewRGBA(image.Rect(0, 0, columns, rows))
	cells := make([]byte, 0, len(g.Image)*columns*rows)
	var previous []uint8

	for i, frame := range g.Image {
		disposal := uint8(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = append(previous[:0], canvas.Pix...)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		xdraw.NearestNeighbor.Scale(small, small.Bounds(), canvas, bounds, xdraw.Src, nil)

		for y := 0; y < rows; y++ {
			for x := 0; x < columns; x++ {
				cells = append(cells, rampChar(small.RGBAAt(x, y).R, small.RGBAAt(x, y).G, small.RGBAAt(x, y).B))
			}
		}

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			copy(canvas.Pix, previous)
		}
	}

	return anim.New(columns, rows, rate, cells)
}

// rampChar maps a pixel to the alphabet character whose ink coverage best
// matches its luminance.
func rampChar(r, g, b uint8) byte {
	luma := (77*uint32(r) + 150*uint32(g) + 29*uint32(b)) >> 8
	return glyph.Alphabet[int(luma)*len(glyph.Alphabet)/256]
}
