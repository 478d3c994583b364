package main

import (
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/fbplay/internal/anim"
	"git.lost.host/meutraa/fbplay/internal/config"
	"git.lost.host/meutraa/fbplay/internal/display"
	"git.lost.host/meutraa/fbplay/internal/encode"
	"git.lost.host/meutraa/fbplay/internal/glyph"
	"git.lost.host/meutraa/fbplay/internal/input"
	"git.lost.host/meutraa/fbplay/internal/pace"
	"git.lost.host/meutraa/fbplay/internal/play"
	"git.lost.host/meutraa/fbplay/internal/raster"
)

func main() {
	var err error
	switch config.Command {
	case "play":
		err = runPlay()
	case "encode":
		err = runEncode()
	case "info":
		err = runInfo()
	}
	if nil != err {
		log.Fatalln(err)
	}
}

func loadAnimation(path string) (*anim.Animation, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open animation: %w", err)
	}
	defer f.Close()

	a, err := anim.Load(f, glyph.Valid)
	if nil != err {
		return nil, fmt.Errorf("unable to load %v: %w", path, err)
	}
	return a, nil
}

func runPlay() error {
	a, err := loadAnimation(*config.PlayFile)
	if nil != err {
		return err
	}
	if *config.Rate > 0 {
		// Hold the override to the same bound the container enforces,
		// before it is narrowed to the header type.
		if *config.Rate > anim.MaxRate {
			return fmt.Errorf("rate override %v out of range [1, %v]", *config.Rate, anim.MaxRate)
		}
		a.Rate = uint16(*config.Rate)
	}

	pacer, err := pace.New(a.FrameCount, a.Rate, *config.Loop)
	if nil != err {
		return err
	}

	cellW, cellH := int(*config.CellWidth), int(*config.CellHeight)
	needW, needH := a.Columns*cellW, a.Rows*cellH

	loop := &play.Loop{
		Animation:  a,
		Pacer:      pacer,
		Rasterizer: &raster.Rasterizer{Foreground: raster.DefaultForeground, Background: raster.DefaultBackground},
		CellWidth:  cellW,
		CellHeight: cellH,
	}

	switch *config.Backend {
	case "terminal":
		fb, err := display.NewTerminal(needW, needH)
		if nil != err {
			return err
		}
		defer fb.Close()

		poll, closeKeys, err := input.Keyboard()
		if nil != err {
			return err
		}
		defer closeKeys()

		// Center the grid in the terminal, which is rarely an exact fit.
		loop.Rasterizer.OriginX = (fb.Width() - needW) / 2
		loop.Rasterizer.OriginY = (fb.Height() - needH) / 2
		loop.Display = fb
		loop.Abort = poll
	default:
		fb, err := display.NewSDL("fbplay", needW, needH, int(*config.Scale))
		if nil != err {
			return err
		}
		defer fb.Close()

		loop.Display = fb
		loop.Abort = fb.Aborted
	}

	status, err := loop.Run()
	if nil != err {
		return err
	}
	log.Println("playback", status)
	return nil
}

func runEncode() error {
	in, err := os.Open(*config.EncodeInput)
	if nil != err {
		return fmt.Errorf("unable to open gif: %w", err)
	}
	defer in.Close()

	a, err := encode.FromGIF(in, int(*config.Columns), int(*config.Rows), uint16(*config.Fps))
	if nil != err {
		return err
	}

	out, err := os.Create(*config.EncodeOutput)
	if nil != err {
		return fmt.Errorf("unable to create %v: %w", *config.EncodeOutput, err)
	}
	defer out.Close()

	if err := anim.Encode(out, a); nil != err {
		return err
	}
	log.Printf("encoded %v frames (%vx%v at %v fps) to %v\n",
		a.FrameCount, a.Columns, a.Rows, a.Rate, *config.EncodeOutput)
	return nil
}

func runInfo() error {
	a, err := loadAnimation(*config.InfoFile)
	if nil != err {
		return err
	}
	fmt.Printf("grid:     %vx%v characters\n", a.Columns, a.Rows)
	fmt.Printf("frames:   %v\n", a.FrameCount)
	fmt.Printf("rate:     %v fps\n", a.Rate)
	fmt.Printf("duration: %v\n", a.Duration())
	return nil
}
