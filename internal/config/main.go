package config

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/fbplay/internal/glyph"
)

var (
	play     = kingpin.Command("play", "Play an encoded animation")
	PlayFile = play.Arg("animation", "Encoded animation file").Required().ExistingFile()
	Backend  = play.Flag("backend", "Output backend").Default("sdl").Short('b').Enum("sdl", "terminal")
	// Cell size defaults to the glyph bitmap size; larger cells upscale.
	CellWidth  = play.Flag("cell-width", "Pixel width of one character cell").Default("8").Uint()
	CellHeight = play.Flag("cell-height", "Pixel height of one character cell").Default("8").Uint()
	Loop       = play.Flag("loop", "Restart from frame 0 at the end").Short('l').Bool()
	Rate       = play.Flag("rate", "Override the encoded frame rate").Short('r').Uint()
	Scale      = play.Flag("scale", "Window zoom factor (sdl backend)").Default("1").Short('s').Uint()

	encode       = kingpin.Command("encode", "Encode an animated gif")
	EncodeInput  = encode.Arg("gif", "Source gif file").Required().ExistingFile()
	EncodeOutput = encode.Arg("out", "Output animation file").Required().String()
	Columns      = encode.Flag("columns", "Grid width in characters").Default("120").Uint()
	Rows         = encode.Flag("rows", "Grid height in characters").Default("45").Uint()
	Fps          = encode.Flag("fps", "Target playback rate").Default("30").Uint()

	info     = kingpin.Command("info", "Print animation metadata")
	InfoFile = info.Arg("animation", "Encoded animation file").Required().ExistingFile()

	// Command is the subcommand selected on the command line.
	Command string
)

func init() {
	kingpin.Version("0.1.0")
	kingpin.CommandLine.Help = fmt.Sprintf(
		"Plays pre-encoded ascii animations into a raw framebuffer (%vx%v glyphs).",
		glyph.Width, glyph.Height)
	Command = kingpin.Parse()
}
