package sequence

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// New returns a sequence positioned on its first frame with an empty
// accumulator. Arguments are stored verbatim; use Layout.Validate to check
// them first.
func New(img image.Image, frames, w, h, offCols, offRows, cols, rows int, tick float64) *Sequence {
	return NewFromLayout(img, Layout{
		Frames:     frames,
		FrameW:     w,
		FrameH:     h,
		OffsetCols: offCols,
		OffsetRows: offRows,
		Cols:       cols,
		Rows:       rows,
		Tick:       tick,
	})
}

// NewFromLayout is New with the structural values taken from l.
func NewFromLayout(img image.Image, l Layout) *Sequence {
	return &Sequence{Image: img, Layout: l}
}

// Validate reports whether l can back a sequence.
func (l Layout) Validate() error {
	var errs []error
	if l.Frames < 1 {
		errs = append(errs, fmt.Errorf("frames must be >= 1, got %d", l.Frames))
	}
	if l.FrameW < 1 || l.FrameH < 1 {
		errs = append(errs, fmt.Errorf("frame size must be >= 1x1, got %dx%d", l.FrameW, l.FrameH))
	}
	if l.OffsetCols < 0 || l.OffsetRows < 0 {
		errs = append(errs, fmt.Errorf("tile offset must not be negative, got %d,%d", l.OffsetCols, l.OffsetRows))
	}
	if l.Cols < 1 || l.Rows < 1 {
		errs = append(errs, fmt.Errorf("tile grid must be >= 1x1, got %dx%d", l.Cols, l.Rows))
	}
	if !(l.Tick > 0) {
		errs = append(errs, fmt.Errorf("tick must be > 0, got %v", l.Tick))
	}
	return errors.Join(errs...)
}

// Frame returns the current frame index.
func (s *Sequence) Frame() int { return s.cur }

// Accum returns the seconds accumulated towards the next frame advance.
func (s *Sequence) Accum() float64 { return s.acc }

// Reset moves back to the first frame and drops accumulated time.
func (s *Sequence) Reset() {
	s.cur = 0
	s.acc = 0
}

// Normalize clamps the current frame into [0, Frames). It is a no-op when
// the frame index is already in range.
func (s *Sequence) Normalize() {
	if s.cur >= s.Frames {
		s.cur = s.Frames - 1
	}
	if s.cur < 0 {
		s.cur = 0
	}
}

// tickEpsilon is the fraction of a tick below which the accumulator counts
// as sitting exactly on a tick boundary.
const tickEpsilon = 1e-9

// Advance accumulates elapsed seconds and steps the frame index once per
// whole tick, wrapping to 0 after the last frame. Any number of ticks may be
// consumed by a single call. Non-positive elapsed times change nothing.
//
// Whole ticks are counted by division, so one call with k ticks of time
// visits the same frame as k calls with one tick each.
func (s *Sequence) Advance(elapsed float64) {
	s.Normalize()
	if !(elapsed > 0) || !(s.Tick > 0) {
		return
	}
	s.acc += elapsed
	n := math.Floor(s.acc/s.Tick + tickEpsilon)
	if n < 1 {
		return
	}
	s.acc -= n * s.Tick
	// Rounding residue of a boundary hit.
	if s.acc < tickEpsilon*s.Tick {
		s.acc = 0
	}
	if s.Frames > 0 {
		s.cur = (s.cur + int(math.Mod(n, float64(s.Frames)))) % s.Frames
	}
}

// SourceRegion returns the sheet region holding the current frame. It is
// derived from the current structural fields on every call.
func (s *Sequence) SourceRegion() Rect {
	return s.RegionOf(s.cur)
}

// RegionOf returns the sheet region of frame i, where i is clamped into
// [0, Frames).
func (s *Sequence) RegionOf(i int) Rect {
	if i >= s.Frames {
		i = s.Frames - 1
	}
	if i < 0 {
		i = 0
	}
	cols := max(s.Cols, 1)
	col, row := i%cols, i/cols
	return Rect{
		X: (s.OffsetCols + col) * s.FrameW,
		Y: (s.OffsetRows + row) * s.FrameH,
		W: s.FrameW,
		H: s.FrameH,
	}
}
