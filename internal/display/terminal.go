package display

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal renders the pixel buffer into the controlling terminal, two
// vertical pixels per character cell using half blocks. It exists so the
// player can run without a windowing system at all.
type Terminal struct {
	*Memory
	out    *os.File
	buffer strings.Builder
}

var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

// NewTerminal opens the whole terminal as a pixel mode, one cell per pixel
// column and two pixel rows per cell. minWidth/minHeight is the extent the
// animation needs; a smaller terminal is a fatal mode-negotiation failure.
func NewTerminal(minWidth, minHeight int) (*Terminal, error) {
	out := os.Stdout
	columns, rows, err := term.GetSize(int(out.Fd()))
	if nil != err {
		return nil, fmt.Errorf("unable to get terminal size: %w", err)
	}
	width, height := columns, rows*2
	if width < minWidth || height < minHeight {
		return nil, fmt.Errorf("terminal mode is %vx%v pixels, animation needs %vx%v",
			width, height, minWidth, minHeight)
	}

	fmt.Fprintf(out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)

	return &Terminal{Memory: NewMemory(width, height), out: out}, nil
}

// lit treats a pixel as foreground when any channel is at least half on,
// which is exact for the two-tone output the rasterizer produces.
func (t *Terminal) lit(x, y int) bool {
	o := y*t.StrideBytes() + x*BytesPerPixel
	buf := t.Memory.Buffer()
	return buf[o] >= 0x80 || buf[o+1] >= 0x80 || buf[o+2] >= 0x80
}

func (t *Terminal) Present() error {
	t.buffer.Reset()
	t.buffer.WriteString("\033[H")
	for y := 0; y < t.Height(); y += 2 {
		for x := 0; x < t.Width(); x++ {
			block := 0
			if t.lit(x, y) {
				block |= 1
			}
			if y+1 < t.Height() && t.lit(x, y+1) {
				block |= 2
			}
			t.buffer.WriteRune(halfBlocks[block])
		}
		t.buffer.WriteString("\033[1E")
	}
	_, err := t.out.WriteString(t.buffer.String())
	if nil != err {
		return fmt.Errorf("unable to flush terminal frame: %w", err)
	}
	return nil
}

func (t *Terminal) Close() error {
	_, err := fmt.Fprintf(t.out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return err
}
