package pace

import (
	"testing"
	"time"
)

func newPacer(t *testing.T, frameCount int, rate uint16, loop bool) *Pacer {
	t.Helper()
	p, err := New(frameCount, rate, loop)
	if nil != err {
		t.Fatal("unable to build pacer", err)
	}
	return p
}

func TestNewRejectsZeroRate(t *testing.T) {
	// A zero rate must be an error, not a divide-by-zero panic when the
	// interval is computed.
	if _, err := New(3, 0, false); nil == err {
		t.Log("expected error for zero rate")
		t.Fail()
	}
}

// The scenario from the format documentation: 3 frames at 10 fps.
func TestDueFrameIndex(t *testing.T) {
	p := newPacer(t, 3, 10, false)

	cases := map[time.Duration]int{
		0:                      0,
		50 * time.Millisecond:  0,
		150 * time.Millisecond: 1,
		250 * time.Millisecond: 2,
		350 * time.Millisecond: 2, // saturated past total duration
	}
	for elapsed, expected := range cases {
		index, _ := p.DueFrameIndex(elapsed)
		if index != expected {
			t.Log("elapsed ", elapsed, "index", index)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestBoundaryInclusive(t *testing.T) {
	p := newPacer(t, 100, 10, false)
	interval := 100 * time.Millisecond

	for k := 1; k < 100; k++ {
		elapsed := time.Duration(k) * interval
		if index, _ := p.DueFrameIndex(elapsed); index != k {
			t.Log("boundary", k, "gave index", index)
			t.Fail()
		}
		if index, _ := p.DueFrameIndex(elapsed - time.Nanosecond); index != k-1 {
			t.Log("just before boundary", k, "gave index", index)
			t.Fail()
		}
	}
}

func TestMonotonic(t *testing.T) {
	p := newPacer(t, 24, 30, false)
	last := -1
	for elapsed := time.Duration(0); elapsed < 2*time.Second; elapsed += 7 * time.Millisecond {
		index, _ := p.DueFrameIndex(elapsed)
		if index < last {
			t.Log("index went backward at", elapsed, index, "<", last)
			t.Fail()
		}
		last = index
	}
}

func TestCompletion(t *testing.T) {
	p := newPacer(t, 3, 10, false)

	if _, done := p.DueFrameIndex(299 * time.Millisecond); done {
		t.Log("done before total duration")
		t.Fail()
	}
	index, done := p.DueFrameIndex(300 * time.Millisecond)
	if !done || index != 2 {
		t.Log("at total duration got", index, done)
		t.Fail()
	}
	index, done = p.DueFrameIndex(time.Hour)
	if !done || index != 2 {
		t.Log("long after end got", index, done)
		t.Fail()
	}
}

func TestLoopWraps(t *testing.T) {
	p := newPacer(t, 3, 10, true)

	cases := map[time.Duration]int{
		0:                      0,
		250 * time.Millisecond: 2,
		300 * time.Millisecond: 0, // wrapped
		450 * time.Millisecond: 1,
		1 * time.Hour:          0,
	}
	for elapsed, expected := range cases {
		index, done := p.DueFrameIndex(elapsed)
		if done {
			t.Log("looping pacer reported done at", elapsed)
			t.Fail()
		}
		if index != expected {
			t.Log("elapsed ", elapsed, "index", index)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestNegativeElapsedClamps(t *testing.T) {
	p := newPacer(t, 3, 10, false)
	if index, done := p.DueFrameIndex(-time.Second); index != 0 || done {
		t.Log("negative elapsed gave", index, done)
		t.Fail()
	}
}

func TestUntilNext(t *testing.T) {
	p := newPacer(t, 3, 10, false)
	interval := 100 * time.Millisecond

	cases := map[time.Duration]time.Duration{
		0:                      interval,
		30 * time.Millisecond:  70 * time.Millisecond,
		100 * time.Millisecond: interval,
		199 * time.Millisecond: time.Millisecond,
	}
	for elapsed, expected := range cases {
		if rem := p.UntilNext(elapsed); rem != expected {
			t.Log("elapsed ", elapsed, "remaining", rem)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}
