// Package play runs the playback state machine: Initializing, Playing,
// then Complete or Aborted. All I/O happened before Playing begins (the
// animation is fully resident, the framebuffer is open), so nothing inside
// the loop can stall on storage.
package play

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/fbplay/internal/anim"
	"git.lost.host/meutraa/fbplay/internal/display"
	"git.lost.host/meutraa/fbplay/internal/pace"
	"git.lost.host/meutraa/fbplay/internal/raster"
)

type Status int

const (
	// Complete means the sequence reached its end with looping disabled.
	Complete Status = iota
	// Aborted means the abort poll fired before the end.
	Aborted
)

func (s Status) String() string {
	if s == Aborted {
		return "aborted"
	}
	return "complete"
}

// Loop owns the playing state. The framebuffer is borrowed exclusively for
// the duration of Run and handed back when it returns; the caller closes it.
type Loop struct {
	Animation  *anim.Animation
	Display    display.Framebuffer
	Rasterizer *raster.Rasterizer
	Pacer      *pace.Pacer

	CellWidth  int
	CellHeight int

	// Clock and Sleep default to the system; tests inject fakes.
	Clock pace.Clock
	Sleep func(time.Duration)
	// Abort is polled once per iteration; nil means never abort.
	Abort func() bool
}

// Run plays the animation to the end (or to an abort) and returns how it
// stopped. Per-frame draw overruns skip ahead to the currently due index;
// a frame index is drawn at most once per pass through the sequence.
func (l *Loop) Run() (Status, error) {
	if nil == l.Clock {
		l.Clock = pace.SystemClock{}
	}
	if nil == l.Sleep {
		l.Sleep = time.Sleep
	}

	needW := l.Animation.Columns * l.CellWidth
	needH := l.Animation.Rows * l.CellHeight
	if l.Display.Width() < needW || l.Display.Height() < needH {
		return Complete, fmt.Errorf("display mode %vx%v is smaller than the %vx%v frame extent",
			l.Display.Width(), l.Display.Height(), needW, needH)
	}

	// The playback clock starts once and is never reset.
	start := l.Clock.Now()
	last := -1

	for {
		elapsed := l.Clock.Now().Sub(start)
		due, done := l.Pacer.DueFrameIndex(elapsed)

		if due != last {
			if err := l.Rasterizer.Draw(l.Animation.FrameAt(due), l.Display, l.CellWidth, l.CellHeight); nil != err {
				return Complete, err
			}
			if err := l.Display.Present(); nil != err {
				return Complete, fmt.Errorf("unable to present frame %v: %w", due, err)
			}
			last = due
		}

		if nil != l.Abort && l.Abort() {
			return Aborted, nil
		}
		if done {
			return Complete, nil
		}

		// The due frame is on screen; idle until the next boundary,
		// never longer than one interval so an abort is seen promptly.
		wait := l.Pacer.UntilNext(l.Clock.Now().Sub(start))
		if wait > l.Pacer.Interval() {
			wait = l.Pacer.Interval()
		}
		if wait > 0 {
			l.Sleep(wait)
		}
	}
}
