package geom

import (
	"errors"
	"fmt"
)

// ErrNonFinite rejects inputs carrying NaN or infinite coordinates. It is
// the only malformed-input condition the engine surfaces; everything else
// degrades to skipping (see package doc).
var ErrNonFinite = errors.New("geom: non-finite coordinate in input")

// Options is the engine's configuration surface. All distances are pixels in
// the source image's space, all angles degrees.
type Options struct {
	// AxisSnapDeg is the angular tolerance for forcing a segment exactly
	// horizontal or vertical, and for treating two segments as collinear
	// during merging.
	AxisSnapDeg float64

	// MergeDistPx is the maximum endpoint gap for two segments to be merge
	// candidates.
	MergeDistPx float64

	// ExtendPx is the maximum projection distance for snapping an endpoint
	// onto a segment it should touch.
	ExtendPx float64

	// ClosePx is the maximum endpoint gap for synthesizing a room-closure
	// segment.
	ClosePx float64

	// MinLenPx is the minimum accepted segment length after any snap, merge,
	// or closure step.
	MinLenPx float64

	// MinArcDeg is the minimum angular span for an accepted arc fit.
	MinArcDeg float64

	// DupTolPx and DupAngleDeg are the duplicate filter's distance and
	// orientation thresholds.
	DupTolPx    float64
	DupAngleDeg float64
}

// DefaultOptions returns the tuning that works well for scanned floor plans
// around 300 DPI.
func DefaultOptions() Options {
	return Options{
		AxisSnapDeg: 7.5,
		MergeDistPx: 10,
		ExtendPx:    10,
		ClosePx:     12,
		MinLenPx:    1,
		MinArcDeg:   20,
		DupTolPx:    3,
		DupAngleDeg: 2,
	}
}

// Result is one frame's reconstruction. Lines holds the deduplicated,
// snapped, merged, and extended segments; Closures the synthesized closing
// segments (already included in no other field); Arcs the accepted circle
// fits.
type Result struct {
	Lines    []Segment
	Closures []Segment
	Arcs     []Arc
}

// Reconstruct runs the full engine over one frame's detections.
//
// passes are the raw segment groups per detector pass, in pass order; the
// duplicate filter keeps the first-seen copy of each physical edge, so
// earlier passes win. contours are raw boundary traces for arc fitting,
// consumed read-only. doorBoxes mark openings the closure stage must not
// bridge.
//
// Empty inputs produce an empty Result. The only error condition is a
// non-finite coordinate anywhere in the input.
func Reconstruct(passes [][]Segment, contours [][]Point, doorBoxes []Rect, opts Options) (Result, error) {
	if err := checkFinite(passes, contours, doorBoxes); err != nil {
		return Result{}, err
	}

	var pool []Segment
	for _, pass := range passes {
		pool = append(pool, pass...)
	}

	pool = FilterDuplicates(pool, opts.DupTolPx, opts.DupAngleDeg)
	pool = Merge(pool, opts.AxisSnapDeg, opts.MergeDistPx, opts.ExtendPx, opts.MinLenPx)
	closures := CloseRooms(pool, doorBoxes, opts.ClosePx, opts.AxisSnapDeg, opts.MinLenPx)

	var arcs []Arc
	for _, c := range contours {
		arcs = append(arcs, FitArcs(c, opts.MinArcDeg)...)
	}

	return Result{Lines: pool, Closures: closures, Arcs: arcs}, nil
}

func checkFinite(passes [][]Segment, contours [][]Point, doorBoxes []Rect) error {
	for pi, pass := range passes {
		for si, s := range pass {
			if !s.Finite() {
				return fmt.Errorf("pass %d segment %d: %w", pi, si, ErrNonFinite)
			}
		}
	}
	for ci, c := range contours {
		for pi, p := range c {
			if !p.Finite() {
				return fmt.Errorf("contour %d point %d: %w", ci, pi, ErrNonFinite)
			}
		}
	}
	for bi, b := range doorBoxes {
		if !b.Finite() {
			return fmt.Errorf("door box %d: %w", bi, ErrNonFinite)
		}
	}
	return nil
}
