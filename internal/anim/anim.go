// Package anim holds the encoded animation container: a small header
// followed by fixed-size frame blocks, one byte per character cell. The
// whole stream is read into memory up front so playback never touches
// storage again.
package anim

import (
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"time"
)

var magic = [4]byte{'F', 'B', 'A', '1'}

const (
	version    = 1
	headerSize = 4 + 1 + 2 + 2 + 4 + 2
)

// MaxRate is a generous upper bound on plausible frame rates; real encodes
// are around 30. Callers overriding the encoded rate must respect it too.
const MaxRate = 1000

// An Animation is the loaded, read-only frame sequence plus its header
// metadata. It is created by Load (or an encoder) and never mutated.
type Animation struct {
	Columns    int
	Rows       int
	FrameCount int
	Rate       uint16 // target frames per second

	cells []byte // FrameCount consecutive blocks of Columns*Rows bytes
}

// A Frame is a read-only view of one character grid inside an Animation.
type Frame struct {
	Columns int
	Rows    int
	Cells   []byte // row-major, Columns*Rows bytes
}

// At returns the character at the given cell.
func (f Frame) At(col, row int) byte {
	return f.Cells[row*f.Columns+col]
}

// New builds an Animation from raw frame data, validating the same
// constraints Load enforces on a stream, plus the header field ranges so
// Encode can never truncate a dimension or frame count.
func New(columns, rows int, rate uint16, cells []byte) (*Animation, error) {
	if columns <= 0 || rows <= 0 || columns > math.MaxUint16 || rows > math.MaxUint16 {
		return nil, fmt.Errorf("invalid grid %vx%v", columns, rows)
	}
	if rate == 0 || rate > MaxRate {
		return nil, fmt.Errorf("invalid frame rate %v", rate)
	}
	size := columns * rows
	if len(cells) == 0 || len(cells)%size != 0 {
		return nil, fmt.Errorf("cell data length %v is not a multiple of frame size %v", len(cells), size)
	}
	if uint64(len(cells)/size) > math.MaxUint32 {
		return nil, fmt.Errorf("frame count %v does not fit the container", len(cells)/size)
	}
	return &Animation{
		Columns:    columns,
		Rows:       rows,
		FrameCount: len(cells) / size,
		Rate:       rate,
		cells:      cells,
	}, nil
}

// Load reads an entire encoded animation from r, validating the header and
// every cell against the alphabet predicate. It returns only fully valid
// animations; a malformed stream yields an error and no partial data.
func Load(r io.Reader, valid func(byte) bool) (*Animation, error) {
	data, err := ioutil.ReadAll(r)
	if nil != err {
		return nil, fmt.Errorf("unable to read animation stream: %w", err)
	}
	if len(data) < headerSize {
		return nil, fmt.Errorf("animation header truncated: %v bytes", len(data))
	}
	if data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] || data[3] != magic[3] {
		return nil, fmt.Errorf("not an animation file (bad magic %q)", data[:4])
	}
	if data[4] != version {
		return nil, fmt.Errorf("unsupported animation version %v", data[4])
	}
	columns := int(binary.LittleEndian.Uint16(data[5:7]))
	rows := int(binary.LittleEndian.Uint16(data[7:9]))
	frameCount := int(binary.LittleEndian.Uint32(data[9:13]))
	rate := binary.LittleEndian.Uint16(data[13:15])

	if columns == 0 || rows == 0 {
		return nil, fmt.Errorf("invalid grid %vx%v", columns, rows)
	}
	if rate == 0 || rate > MaxRate {
		return nil, fmt.Errorf("invalid frame rate %v", rate)
	}
	if frameCount == 0 {
		return nil, fmt.Errorf("animation has no frames")
	}

	cells := data[headerSize:]
	expected := frameCount * columns * rows
	if len(cells) != expected {
		return nil, fmt.Errorf("frame data is %v bytes, header implies %v", len(cells), expected)
	}

	for i, c := range cells {
		if !valid(c) {
			return nil, fmt.Errorf("frame %v contains character %q outside the alphabet",
				i/(columns*rows), c)
		}
	}

	return &Animation{
		Columns:    columns,
		Rows:       rows,
		FrameCount: frameCount,
		Rate:       rate,
		cells:      cells,
	}, nil
}

// FrameAt returns a view of frame i in O(1). An out-of-range index is a
// pacing bug in the caller and panics rather than wrapping or clamping,
// which would hide it.
func (a *Animation) FrameAt(i int) Frame {
	if i < 0 || i >= a.FrameCount {
		panic(fmt.Sprintf("frame index %v out of range [0, %v)", i, a.FrameCount))
	}
	size := a.Columns * a.Rows
	return Frame{
		Columns: a.Columns,
		Rows:    a.Rows,
		Cells:   a.cells[i*size : (i+1)*size],
	}
}

// Interval is the target wall-clock duration of one frame.
func (a *Animation) Interval() time.Duration {
	return time.Second / time.Duration(a.Rate)
}

// Duration is the total wall-clock length of the animation.
func (a *Animation) Duration() time.Duration {
	return a.Interval() * time.Duration(a.FrameCount)
}

// Encode writes the animation in the container format Load reads.
func Encode(w io.Writer, a *Animation) error {
	header := make([]byte, headerSize)
	copy(header, magic[:])
	header[4] = version
	binary.LittleEndian.PutUint16(header[5:7], uint16(a.Columns))
	binary.LittleEndian.PutUint16(header[7:9], uint16(a.Rows))
	binary.LittleEndian.PutUint32(header[9:13], uint32(a.FrameCount))
	binary.LittleEndian.PutUint16(header[13:15], a.Rate)
	if _, err := w.Write(header); nil != err {
		return fmt.Errorf("unable to write animation header: %w", err)
	}
	if _, err := w.Write(a.cells); nil != err {
		return fmt.Errorf("unable to write frame data: %w", err)
	}
	return nil
}
