// Package pace decides which frame should be on screen at a given elapsed
// time. The due index is floor(elapsed/interval): when a draw overruns its
// interval the pacer skips ahead to whatever is due now instead of
// replaying missed frames, trading smoothness for staying in sync over a
// long playback.
package pace

import (
	"fmt"
	"time"
)

// Clock is the monotonic time capability, injected so pacing is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type Pacer struct {
	interval   time.Duration
	frameCount int
	loop       bool
}

// New builds a pacer for frameCount frames at rate frames per second.
// With loop set, the sequence wraps to frame 0 forever and never reports
// completion. A zero rate has no interval to pace against and is rejected
// here rather than dividing by it later.
func New(frameCount int, rate uint16, loop bool) (*Pacer, error) {
	if rate == 0 {
		return nil, fmt.Errorf("frame rate must be at least 1")
	}
	return &Pacer{
		interval:   time.Second / time.Duration(rate),
		frameCount: frameCount,
		loop:       loop,
	}, nil
}

func (p *Pacer) Interval() time.Duration { return p.interval }

// DueFrameIndex returns the index that should be displayed after elapsed
// time, and whether playback is complete. An elapsed time of exactly k
// intervals is frame k. Without looping the index saturates at the last
// frame, and done is reported once the total duration has passed; it never
// yields an out-of-range index.
func (p *Pacer) DueFrameIndex(elapsed time.Duration) (int, bool) {
	if elapsed < 0 {
		elapsed = 0
	}
	due := int(elapsed / p.interval)
	if p.loop {
		return due % p.frameCount, false
	}
	if due >= p.frameCount {
		return p.frameCount - 1, true
	}
	return due, false
}

// UntilNext is the time remaining before the next frame boundary, used to
// bound the idle wait between draws. It is always in (0, interval].
func (p *Pacer) UntilNext(elapsed time.Duration) time.Duration {
	if elapsed < 0 {
		return -elapsed
	}
	rem := p.interval - elapsed%p.interval
	return rem
}
