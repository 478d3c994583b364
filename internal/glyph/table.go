package glyph

import "fmt"

// Fixed bitmap size shared with the rasterizer. Changing these means
// redrawing every bitmap below, so they are constants, not configuration.
const (
	Width  = 8
	Height = 8
)

// Alphabet is the brightness ramp the encoder quantizes onto, darkest
// first. Frame cells hold these byte values and nothing else.
const Alphabet = " .':-=+*xzcow%#@"

// A Glyph is one row bitmap per scanline, most significant bit leftmost.
type Glyph [Height]byte

var bitmaps = [len(Alphabet)]Glyph{
	{ // ' '
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // '.'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00,
	},
	{ // '\''
		0x18, 0x18, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // ':'
		0x00, 0x18, 0x18, 0x00, 0x00, 0x18, 0x18, 0x00,
	},
	{ // '-'
		0x00, 0x00, 0x00, 0x7e, 0x00, 0x00, 0x00, 0x00,
	},
	{ // '='
		0x00, 0x00, 0x7e, 0x00, 0x7e, 0x00, 0x00, 0x00,
	},
	{ // '+'
		0x00, 0x18, 0x18, 0x7e, 0x7e, 0x18, 0x18, 0x00,
	},
	{ // '*'
		0x00, 0x66, 0x3c, 0xff, 0x3c, 0x66, 0x00, 0x00,
	},
	{ // 'x'
		0x00, 0x00, 0x66, 0x3c, 0x18, 0x3c, 0x66, 0x00,
	},
	{ // 'z'
		0x00, 0x00, 0x7e, 0x0c, 0x18, 0x30, 0x7e, 0x00,
	},
	{ // 'c'
		0x00, 0x00, 0x3c, 0x66, 0x60, 0x66, 0x3c, 0x00,
	},
	{ // 'o'
		0x00, 0x00, 0x3c, 0x66, 0x66, 0x66, 0x3c, 0x00,
	},
	{ // 'w'
		0x00, 0x00, 0xc3, 0xc3, 0xdb, 0xff, 0x66, 0x00,
	},
	{ // '%'
		0x62, 0x66, 0x0c, 0x18, 0x30, 0x66, 0x46, 0x00,
	},
	{ // '#'
		0x6c, 0x6c, 0xfe, 0x6c, 0xfe, 0x6c, 0x6c, 0x00,
	},
	{ // '@'
		0x3c, 0x66, 0xde, 0xd6, 0xde, 0xc0, 0x7c, 0x00,
	},
}

// table is a direct byte-indexed array, so a lookup is one load. Built once
// at init from the constant bitmaps, immutable afterwards.
var table [256]*Glyph

func init() {
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = &bitmaps[i]
	}
}

// Lookup returns the bitmap for c. A miss means the frame data was encoded
// with a different alphabet and is fatal to the caller; it is never a
// recoverable runtime condition.
func Lookup(c byte) (*Glyph, error) {
	g := table[c]
	if nil == g {
		return nil, fmt.Errorf("no glyph for character %q (0x%02x)", c, c)
	}
	return g, nil
}

// Valid reports whether c is part of the encoding alphabet.
func Valid(c byte) bool {
	return table[c] != nil
}

// Set reports whether the pixel at (x, y) of the glyph is foreground.
func (g *Glyph) Set(x, y int) bool {
	return g[y]&(0x80>>uint(x)) != 0
}

// Index returns the ramp position of c, brightest last, or -1 for a
// character outside the alphabet.
func Index(c byte) int {
	for i := 0; i < len(Alphabet); i++ {
		if Alphabet[i] == c {
			return i
		}
	}
	return -1
}
